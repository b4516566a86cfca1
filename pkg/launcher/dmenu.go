package launcher

import "os/exec"

// Dmenu is the default selector. It receives the history file via
// dmenu's -H flag in addition to any configured arguments.
type Dmenu struct {
	args     []string
	histFile string
}

// NewDmenu returns a dmenu backend with the given extra arguments and
// history file path.
func NewDmenu(args []string, histFile string) *Dmenu {
	return &Dmenu{args: args, histFile: histFile}
}

func (d *Dmenu) Show(items []string) (Selection, error) {
	args := append([]string{}, d.args...)
	if d.histFile != "" {
		args = append(args, "-H", d.histFile)
	}

	return runSelector(exec.Command("dmenu", args...), items)
}

func (d *Dmenu) Name() string {
	return "dmenu"
}

func (d *Dmenu) IsAvailable() bool {
	return commandExists("dmenu")
}

// Args returns the arguments dmenu will be invoked with.
func (d *Dmenu) Args() []string {
	args := append([]string{}, d.args...)
	if d.histFile != "" {
		args = append(args, "-H", d.histFile)
	}
	return args
}
