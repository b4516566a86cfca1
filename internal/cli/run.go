package cli

import (
	"errors"

	"github.com/dtomvan/dmenu-drun/pkg/cache"
	"github.com/dtomvan/dmenu-drun/pkg/config"
	"github.com/dtomvan/dmenu-drun/pkg/dispatch"
	"github.com/dtomvan/dmenu-drun/pkg/launcher"
	"github.com/dtomvan/dmenu-drun/pkg/logging"
	"github.com/dtomvan/dmenu-drun/pkg/paths"
	"github.com/dtomvan/dmenu-drun/pkg/utils"
)

// fallbackStatus is the exit status when neither the launched target
// nor the selector provided one. It matches what a -1 process exit
// wraps to.
const fallbackStatus = 255

// run is the whole pipeline: invalidate, rebuild or load, filter, show
// the menu, dispatch. It returns the process exit status and the fatal
// error, if any; every tolerated failure has already been absorbed and
// logged further down.
func run(opts options) (int, error) {
	logger := logging.GetLogger("cli")

	cfg, err := config.Load()
	if err != nil {
		return 0, err
	}

	p := paths.New()
	store := cache.NewStore(p.CacheFile())

	rebuild := store.Stale(p.WatchedDirs())
	f, err := store.Open(rebuild)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var entries cache.Cache
	if rebuild {
		logger.Info().Str("file", store.Path()).Msg("rebuilding cache")
		entries, err = cache.BuildPathCache(f, p.SearchPath())
		if err != nil {
			return 0, err
		}
		desktop, err := cache.BuildDesktopCache(f, p.DesktopDirs())
		if err != nil {
			return 0, err
		}
		entries.Merge(desktop)
	} else {
		entries, err = cache.Parse(f)
		if err != nil {
			return 0, err
		}
	}
	logger.Debug().Int("entries", len(entries)).Bool("rebuilt", rebuild).Msg("cache ready")

	if opts.hidePath {
		entries.Retain(cache.HidePathEntries)
	}
	if opts.hideDesktop {
		entries.Retain(cache.HideDesktopEntries)
	}

	sel, err := launcher.New(opts.launcherName, launcher.Options{
		Config:   cfg,
		HistFile: p.HistFile(),
	})
	if err != nil {
		return 0, err
	}

	selection, err := sel.Show(entries.Names())
	if err != nil {
		return 0, err
	}

	status, err := dispatch.New(entries).Dispatch(selection.Choice)
	if err != nil {
		if !errors.Is(err, dispatch.ErrEmptyChoice) {
			utils.NotifyError(&cfg.Notifications, "dmenu-drun", err.Error())
		}
		// The selector's status is still the most useful exit code for
		// a run that never launched anything (e.g. a cancelled menu).
		return selection.Status, err
	}

	return finalStatus(status, selection.Status), nil
}

// finalStatus picks the exit code: the launched target's when known,
// else the selector's, else the fixed fallback.
func finalStatus(target, selector int) int {
	if target != dispatch.StatusUnknown {
		return target
	}
	if selector >= 0 {
		return selector
	}
	return fallbackStatus
}
