// Package launcher abstracts the external interactive selector the menu
// is delegated to. It supports dmenu, rofi, fzf, bemenu, and fuzzel with
// a unified interface: the sorted display names are written to the
// selector's stdin, the user's choice is read back from its stdout.
package launcher

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/dtomvan/dmenu-drun/pkg/cache"
)

// Launcher is one selector backend.
type Launcher interface {
	Name() string
	IsAvailable() bool
	Show(items []string) (Selection, error)
}

// Selection is what the selector returned: the cleaned choice and the
// selector's own exit status. A cancelled menu surfaces as an empty
// choice with a nonzero status, not as an error; only spawn failures
// are errors.
type Selection struct {
	Choice string
	Status int
}

// CleanChoice normalizes raw selector output: surrounding whitespace is
// trimmed, then a trailing desktop-shortcut suffix is stripped so the
// choice matches the cache key. Desktop keys are built without the
// suffix, so the second trim only matters for typed input.
func CleanChoice(raw string) string {
	return strings.TrimSuffix(strings.TrimSpace(raw), cache.DesktopExt)
}

// runSelector feeds items to the selector command and collects its
// output and exit status.
func runSelector(cmd *exec.Cmd, items []string) (Selection, error) {
	cmd.Stdin = strings.NewReader(strings.Join(items, "\n") + "\n")

	out, err := cmd.Output()
	status := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Selection{}, fmt.Errorf("spawn %s: %w", cmd.Path, err)
		}
		status = exitErr.ExitCode()
	}
	return Selection{Choice: CleanChoice(string(out)), Status: status}, nil
}
