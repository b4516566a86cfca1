package cache_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dtomvan/dmenu-drun/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   cache.Cache
	}{
		{
			name: "empty",
			in:   cache.Cache{},
		},
		{
			name: "direct_entries",
			in:   cache.Cache{"vim": "vim", "ls": "ls"},
		},
		{
			name: "mixed_entries",
			in: cache.Cache{
				"vim":         "vim",
				"Firefox":     "firefox.desktop",
				"Text Editor": "org.gnome.TextEditor.desktop",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.in.Serialize(&buf))

			got, err := cache.Parse(&buf)
			require.NoError(t, err)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestParseDiscardsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"vim\x00vim",
		"no delimiter at all",
		"too\x00many\x00fields",
		"",
	}, "\n") + "\n"

	got, err := cache.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, cache.Cache{"vim": "vim"}, got)
}

func TestRetainFilters(t *testing.T) {
	tests := []struct {
		name string
		keep func(key, value string) bool
		want cache.Cache
	}{
		{
			name: "hide_path_sourced",
			keep: cache.HidePathEntries,
			want: cache.Cache{"Firefox": "firefox.desktop"},
		},
		{
			name: "hide_desktop_sourced",
			keep: cache.HideDesktopEntries,
			want: cache.Cache{"vim": "vim"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cache.Cache{"vim": "vim", "Firefox": "firefox.desktop"}
			c.Retain(tt.keep)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestRetainFiltersCombined(t *testing.T) {
	c := cache.Cache{"vim": "vim", "Firefox": "firefox.desktop"}
	c.Retain(cache.HidePathEntries)
	c.Retain(cache.HideDesktopEntries)
	assert.Empty(t, c)
}

func TestMergeLaterWins(t *testing.T) {
	c := cache.Cache{"Editor": "editor", "vim": "vim"}
	c.Merge(cache.Cache{"Editor": "editor.desktop"})
	assert.Equal(t, cache.Cache{"Editor": "editor.desktop", "vim": "vim"}, c)
}

func TestNamesSorted(t *testing.T) {
	c := cache.Cache{"vim": "vim", "Firefox": "firefox.desktop", "ls": "ls"}
	assert.Equal(t, []string{"Firefox", "ls", "vim"}, c.Names())
}
