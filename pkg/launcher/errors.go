package launcher

import "errors"

var (
	// ErrNoLauncher is returned when no selector is installed at all.
	ErrNoLauncher = errors.New("no launcher available - please install dmenu, rofi, fzf, bemenu, or fuzzel")

	// ErrUnknownLauncher is returned for a launcher name this package
	// does not implement.
	ErrUnknownLauncher = errors.New("unknown launcher")
)
