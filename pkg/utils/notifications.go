// Desktop notification helpers. Notifications are best effort: when no
// notification daemon client is installed they are silently skipped.
package utils

import (
	"os"
	"os/exec"

	"github.com/dtomvan/dmenu-drun/pkg/config"
)

// NotifyError sends a critical-urgency notification when enabled in the
// configuration. dunstify is preferred, notify-send is the fallback.
func NotifyError(cfg *config.NotificationConfig, title, message string) {
	if cfg == nil || !cfg.Enabled {
		return
	}

	if CommandExists("dunstify") {
		cmd := exec.Command("dunstify", "-u", "critical", "-t", "5000", title, message)
		cmd.Env = os.Environ()
		_ = cmd.Start()
		return
	}

	if CommandExists("notify-send") {
		cmd := exec.Command("notify-send", "-u", "critical", "-t", "5000", title, message)
		cmd.Env = os.Environ()
		_ = cmd.Start()
	}
}
