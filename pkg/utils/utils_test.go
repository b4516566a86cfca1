package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandExists(t *testing.T) {
	assert.True(t, CommandExists("sh"))
	assert.False(t, CommandExists("definitely-not-a-real-command-xyz"))
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/user")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "tilde", in: "~/notes", want: "/home/user/notes"},
		{name: "plain", in: "/etc/hosts", want: "/etc/hosts"},
		{name: "env_var", in: "$HOME/notes", want: "/home/user/notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("DMENU_DRUN_TEST_VAR", "set")

	assert.Equal(t, "set", GetEnvOrDefault("DMENU_DRUN_TEST_VAR", "fallback"))
	assert.Equal(t, "fallback", GetEnvOrDefault("DMENU_DRUN_TEST_UNSET", "fallback"))
}
