package launcher

import (
	"os"
	"os/exec"

	"github.com/mattn/go-isatty"
)

// Fzf draws its interface on the terminal's stderr, so it is only
// usable when the process is attached to one.
type Fzf struct {
	args []string
}

func NewFzf(args []string) *Fzf {
	return &Fzf{args: args}
}

func (f *Fzf) Show(items []string) (Selection, error) {
	cmd := exec.Command("fzf", f.args...)
	cmd.Stderr = os.Stderr

	return runSelector(cmd, items)
}

func (f *Fzf) Name() string {
	return "fzf"
}

func (f *Fzf) IsAvailable() bool {
	return commandExists("fzf") && isatty.IsTerminal(os.Stderr.Fd())
}
