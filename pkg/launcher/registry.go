package launcher

import (
	"os/exec"

	"github.com/dtomvan/dmenu-drun/pkg/config"
)

// Options carries everything a backend needs beyond its configured
// extra arguments.
type Options struct {
	Config   *config.Config
	HistFile string
}

// New returns the named selector backend, or the configured default
// when name is empty, or the first available backend when neither is
// set.
func New(name string, opts Options) (Launcher, error) {
	if name == "" {
		name = opts.Config.DefaultLauncher
	}
	if name == "" {
		if l := DetectAvailable(opts); l != nil {
			return l, nil
		}
		return nil, ErrNoLauncher
	}

	switch name {
	case "dmenu":
		return NewDmenu(opts.Config.LauncherArgs("dmenu"), opts.HistFile), nil
	case "rofi":
		return NewRofi(opts.Config.LauncherArgs("rofi")), nil
	case "fzf":
		return NewFzf(opts.Config.LauncherArgs("fzf")), nil
	case "bemenu":
		return NewBemenu(opts.Config.LauncherArgs("bemenu")), nil
	case "fuzzel":
		return NewFuzzel(opts.Config.LauncherArgs("fuzzel")), nil
	default:
		return nil, ErrUnknownLauncher
	}
}

// DetectAvailable returns the first installed backend, in priority
// order dmenu > rofi > fzf > bemenu > fuzzel, or nil when none is.
func DetectAvailable(opts Options) Launcher {
	priority := []string{"dmenu", "rofi", "fzf", "bemenu", "fuzzel"}

	for _, name := range priority {
		l, err := New(name, opts)
		if err == nil && l.IsAvailable() {
			return l
		}
	}
	return nil
}

// commandExists checks whether a command is installed on $PATH.
func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
