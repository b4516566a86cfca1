// Package cache implements the launcher's name→target cache: building it
// from the search path and the desktop-entry directories, serializing it
// to a delimited text file, loading it back, and deciding when the
// persisted copy is stale.
package cache

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dtomvan/dmenu-drun/pkg/logging"
)

// DesktopExt is the extension carried by desktop shortcut files.
const DesktopExt = ".desktop"

// fieldSep separates key from value in the on-disk format. Keys and
// values must not contain it, nor a newline; the format has no escaping.
const fieldSep = "\x00"

// Cache maps a display name to its target. A direct entry has key ==
// value (an executable resolvable via $PATH); a desktop entry has
// key != value (value is a .desktop filename, key its declared name).
type Cache map[string]string

// Serialize writes one "key<NUL>value\n" record per entry to w.
func (c Cache) Serialize(w io.Writer) error {
	for k, v := range c {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", k, fieldSep, v); err != nil {
			return fmt.Errorf("write cache entry: %w", err)
		}
	}
	return nil
}

// Parse reads the on-disk format back into a Cache. Lines that do not
// split into exactly two fields are discarded individually; a malformed
// line never fails the whole load.
func Parse(r io.Reader) (Cache, error) {
	logger := logging.GetLogger("cache")
	c := Cache{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.Split(line, fieldSep)
		if len(parts) != 2 {
			logger.Debug().Str("line", line).Msg("discarding malformed cache line")
			continue
		}
		c[parts[0]] = parts[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}
	return c, nil
}

// Merge copies every entry of other into c. Entries from other win on
// key collision.
func (c Cache) Merge(other Cache) {
	for k, v := range other {
		c[k] = v
	}
}

// Retain keeps only the entries for which keep returns true.
func (c Cache) Retain(keep func(key, value string) bool) {
	for k, v := range c {
		if !keep(k, v) {
			delete(c, k)
		}
	}
}

// Names returns the sorted, deduplicated display names.
func (c Cache) Names() []string {
	names := make([]string, 0, len(c))
	for k := range c {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// HidePathEntries is a Retain predicate dropping direct entries, leaving
// only desktop entries in the menu.
func HidePathEntries(key, value string) bool {
	return key != value
}

// HideDesktopEntries is a Retain predicate dropping desktop entries,
// leaving only direct entries in the menu.
func HideDesktopEntries(key, value string) bool {
	return !strings.HasSuffix(value, DesktopExt)
}
