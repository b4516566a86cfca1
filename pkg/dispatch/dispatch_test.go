package dispatch

import (
	"testing"

	"github.com/dtomvan/dmenu-drun/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records what the dispatcher asked for instead of spawning
// anything.
type fakeRunner struct {
	ranName    string
	ranArgs    []string
	ranStatus  int
	detached   bool
	detachName string
	detachArgs []string
}

func (f *fakeRunner) Run(name string, args ...string) (int, error) {
	f.ranName = name
	f.ranArgs = args
	return f.ranStatus, nil
}

func (f *fakeRunner) Detach(name string, args ...string) error {
	f.detached = true
	f.detachName = name
	f.detachArgs = args
	return nil
}

func TestDispatchDirect(t *testing.T) {
	runner := &fakeRunner{}
	d := NewWithRunner(cache.Cache{"vim": "vim"}, runner)

	status, err := d.Dispatch("vim")
	require.NoError(t, err)

	assert.Equal(t, "vim", runner.ranName)
	assert.Empty(t, runner.ranArgs)
	assert.False(t, runner.detached, "direct launch must stay in the foreground")
	assert.Equal(t, 0, status)
}

func TestDispatchDesktopDetaches(t *testing.T) {
	runner := &fakeRunner{}
	d := NewWithRunner(cache.Cache{"Firefox": "firefox.desktop"}, runner)

	status, err := d.Dispatch("Firefox")
	require.NoError(t, err)

	assert.True(t, runner.detached)
	assert.Equal(t, HelperCommand, runner.detachName)
	assert.Equal(t, []string{"firefox.desktop"}, runner.detachArgs)
	assert.Empty(t, runner.ranName, "desktop launch must not run in the foreground")
	assert.Equal(t, StatusUnknown, status)
}

func TestDispatchFreeform(t *testing.T) {
	runner := &fakeRunner{}
	d := NewWithRunner(cache.Cache{"vim": "vim"}, runner)

	_, err := d.Dispatch("ls -la /tmp")
	require.NoError(t, err)

	assert.Equal(t, "ls", runner.ranName)
	assert.Equal(t, []string{"-la", "/tmp"}, runner.ranArgs)
	assert.False(t, runner.detached)
}

func TestDispatchEmptyChoice(t *testing.T) {
	tests := []struct {
		name   string
		choice string
	}{
		{name: "empty", choice: ""},
		{name: "whitespace_only", choice: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewWithRunner(cache.Cache{}, &fakeRunner{})
			_, err := d.Dispatch(tt.choice)
			assert.ErrorIs(t, err, ErrEmptyChoice)
		})
	}
}

func TestDispatchPropagatesExitStatus(t *testing.T) {
	runner := &fakeRunner{ranStatus: 3}
	d := NewWithRunner(cache.Cache{"vim": "vim"}, runner)

	status, err := d.Dispatch("vim")
	require.NoError(t, err)
	assert.Equal(t, 3, status)
}
