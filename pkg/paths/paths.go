// Package paths resolves every filesystem location the launcher touches:
// the $PATH search directories, the desktop-entry directories, the cache
// file and the selector history file. Everything is resolved once at
// startup and threaded through as a value; there is no lazy global state.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names.
const (
	// EnvCacheFile overrides the default cache file location.
	EnvCacheFile = "DMENU_DRUN_CACHE_FILE"

	// EnvHistFile overrides the default selector history file location.
	EnvHistFile = "DMENU_DRUN_HISTFILE"
)

const (
	// CacheFileName is the fixed cache filename under the XDG cache dir.
	CacheFileName = ".dmenu_drun_cache"

	// HistFileName is the selector history filename under $HOME.
	HistFileName = ".dmenu_drun_histfile"

	// SystemApplicationsDir holds system-wide desktop entries.
	SystemApplicationsDir = "/usr/share/applications"
)

// Paths holds the resolved locations for one invocation.
type Paths struct {
	searchPath  []string
	desktopDirs []string
	cacheFile   string
	histFile    string
}

// New resolves all paths from the current environment. $PATH and $HOME
// are read exactly once, here.
func New() *Paths {
	home := os.Getenv("HOME")
	if home == "" {
		home = xdg.Home
	}

	cacheFile := os.Getenv(EnvCacheFile)
	if cacheFile == "" {
		cacheFile = filepath.Join(xdg.CacheHome, CacheFileName)
	}

	histFile := os.Getenv(EnvHistFile)
	if histFile == "" {
		histFile = filepath.Join(home, HistFileName)
	}

	return &Paths{
		searchPath: splitSearchPath(os.Getenv("PATH")),
		desktopDirs: []string{
			filepath.Join(home, "Desktop"),
			SystemApplicationsDir,
			filepath.Join(xdg.DataHome, "applications"),
		},
		cacheFile: cacheFile,
		histFile:  histFile,
	}
}

// SearchPath returns the $PATH directories in search order.
func (p *Paths) SearchPath() []string {
	return p.searchPath
}

// DesktopDirs returns the desktop-entry directories in scan priority
// order: user desktop folder, system applications, user-local
// applications. Later directories win key collisions.
func (p *Paths) DesktopDirs() []string {
	return p.desktopDirs
}

// WatchedDirs returns every directory whose modification time
// invalidates the cache: the search path plus the desktop dirs.
func (p *Paths) WatchedDirs() []string {
	watched := make([]string, 0, len(p.searchPath)+len(p.desktopDirs))
	watched = append(watched, p.searchPath...)
	watched = append(watched, p.desktopDirs...)
	return watched
}

// CacheFile returns the on-disk cache file path.
func (p *Paths) CacheFile() string {
	return p.cacheFile
}

// HistFile returns the selector history file path.
func (p *Paths) HistFile() string {
	return p.histFile
}

func splitSearchPath(path string) []string {
	var dirs []string
	for _, dir := range strings.Split(path, string(os.PathListSeparator)) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
