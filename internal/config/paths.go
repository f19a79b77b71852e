// ABOUTME: Standard filesystem paths for pi-theme and the tools it keeps in sync
// ABOUTME: ~/.pi-theme for our config, ~/.config/{ghostty,tmux} and ~/.pi/agent for targets

package config

import (
	"os"
	"path/filepath"
	"strings"
)

const globalDirName = ".pi-theme"

func home() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return h
}

// GlobalDir returns the user-global config directory (~/.pi-theme/).
func GlobalDir() string {
	return filepath.Join(home(), globalDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.json")
}

// XDGConfigDir returns $XDG_CONFIG_HOME or ~/.config.
func XDGConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(home(), ".config")
}

// GhosttyDir returns Ghostty's config directory.
func GhosttyDir() string {
	return filepath.Join(XDGConfigDir(), "ghostty")
}

// TmuxDir returns the tmux config directory holding themes/ and theme.conf.
func TmuxDir() string {
	return filepath.Join(XDGConfigDir(), "tmux")
}

// AgentDir returns the coding agent's directory (~/.pi/agent).
func AgentDir() string {
	return filepath.Join(home(), ".pi", "agent")
}

// ExpandHome replaces a leading "~" or "~/" with the home directory.
func ExpandHome(path string) string {
	if path == "~" {
		return home()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home(), path[2:])
	}
	return path
}
