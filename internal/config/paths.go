// ABOUTME: Filesystem path helpers for the user config file
// ABOUTME: Resolves ~/.kpconfig and expands leading tildes in user paths

package config

import (
	"os"
	"path/filepath"
	"strings"
)

const configFileName = ".kpconfig"

// ConfigFile returns the path to the user config file (~/.kpconfig).
func ConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(home, configFileName)
}

// ExpandUser replaces a leading ~ with the user's home directory, like a
// shell would. Paths without a leading tilde pass through untouched.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
