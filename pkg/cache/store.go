package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dtomvan/dmenu-drun/pkg/logging"
)

// Store owns the on-disk cache file. It is not protected against
// concurrent invocations of the tool: two runs racing on a rebuild can
// interleave their writes. Single interactive user, single process at a
// time is assumed.
type Store struct {
	path string
}

// NewStore returns a Store for the cache file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the cache file location.
func (s *Store) Path() string {
	return s.path
}

// Stale reports whether the cache must be rebuilt: the cache file does
// not exist, or any watched directory is strictly newer than it. A
// directory whose metadata cannot be read counts as not newer. This is
// a coarse, directory-granularity check; it does not see changes two
// levels deep nor the removal of a watched directory itself.
func (s *Store) Stale(watched []string) bool {
	logger := logging.GetLogger("cache.store")

	fi, err := os.Stat(s.path)
	if err != nil {
		logger.Debug().Str("path", s.path).Msg("cache file missing, rebuild required")
		return true
	}
	mtime := fi.ModTime()

	for _, dir := range watched {
		di, err := os.Stat(dir)
		if err != nil {
			continue
		}
		if di.ModTime().After(mtime) {
			logger.Debug().Str("dir", dir).Msg("directory newer than cache, rebuild required")
			return true
		}
	}
	return false
}

// Open opens the cache file in the mode the run needs: truncating
// read-write for a rebuild, append+read for a reuse. The cache
// directory is created first; failure to create it, or to open the file
// by any fallback, is fatal to the run.
func (s *Store) Open(rebuild bool) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	flags := os.O_RDWR | os.O_APPEND
	if rebuild {
		flags = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(s.path, flags, 0o644)
	if err != nil {
		f, err = os.Create(s.path)
		if err != nil {
			return nil, fmt.Errorf("open cache file %s: %w", s.path, err)
		}
	}
	return f, nil
}
