package cache

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtomvan/dmenu-drun/pkg/logging"
)

// desktopNameKey prefixes the line of a desktop shortcut that carries
// its human-readable name.
const desktopNameKey = "Name="

// scanEntries lists the entries of every readable directory in dirs and
// keeps the ones satisfying keep. Directories that do not exist or
// cannot be listed are skipped; that is a tolerated condition, not a
// failure.
func scanEntries(dirs []string, keep func(path string, info fs.FileInfo) bool) []string {
	logger := logging.GetLogger("cache.scan")

	var matched []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			logger.Debug().Str("dir", dir).Err(err).Msg("skipping unreadable directory")
			continue
		}
		for _, entry := range entries {
			info, err := entry.Info()
			if err != nil {
				logger.Debug().Str("entry", entry.Name()).Err(err).Msg("skipping unreadable entry")
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if keep(path, info) {
				matched = append(matched, path)
			}
		}
	}
	return matched
}

// BuildPathCache scans the search-path directories for executables and
// maps each filename to itself. The result is also appended to w, so a
// rebuild repopulates the persisted store as a side effect.
func BuildPathCache(w io.Writer, dirs []string) (Cache, error) {
	c := Cache{}
	for _, path := range scanEntries(dirs, isExecutableFile) {
		name := filepath.Base(path)
		c[name] = name
	}
	return c, c.Serialize(w)
}

// BuildDesktopCache scans the desktop-entry directories for .desktop
// files and maps each shortcut's declared name to its filename. The
// result is also appended to w.
func BuildDesktopCache(w io.Writer, dirs []string) (Cache, error) {
	logger := logging.GetLogger("cache.desktop")

	c := Cache{}
	for _, path := range scanEntries(dirs, isDesktopFile) {
		name, err := desktopName(path)
		if err != nil {
			logger.Debug().Str("file", path).Err(err).Msg("skipping unreadable desktop file")
			continue
		}
		if name == "" {
			// A shortcut without a Name= line keys the entry by the
			// empty string, which shows up as a blank menu line and
			// collides with any other such shortcut.
			logger.Warn().Str("file", path).Msg("desktop file has no Name= line")
		}
		c[name] = filepath.Base(path)
	}
	return c, c.Serialize(w)
}

func isExecutableFile(path string, info fs.FileInfo) bool {
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}

func isDesktopFile(path string, info fs.FileInfo) bool {
	return info.Mode().IsRegular() && filepath.Ext(path) == DesktopExt
}

// desktopName extracts the value of the first Name= line of a desktop
// shortcut. A shortcut without one yields the empty string.
func desktopName(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); strings.HasPrefix(line, desktopNameKey) {
			return strings.TrimPrefix(line, desktopNameKey), nil
		}
	}
	return "", scanner.Err()
}
