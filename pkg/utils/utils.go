// Package utils provides common helpers for command execution, process
// detachment, and environment lookups.
package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
)

// CommandExists checks if a command exists in PATH.
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// StartDetachedProcess starts a process as the leader of a new session,
// with its standard streams detached. The caller does not wait on it,
// and is not tied to the lifetime of any children it forks.
func StartDetachedProcess(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
	return cmd.Start()
}

// ExpandPath expands a leading ~ and environment variables in a path.
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		path = filepath.Join(os.Getenv("HOME"), path[1:])
	}
	return os.ExpandEnv(path)
}

// EnsureDir creates a directory if it does not exist.
func EnsureDir(path string) error {
	path = ExpandPath(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0o755)
	}
	return nil
}

// GetEnvOrDefault returns an environment variable or a default value.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
