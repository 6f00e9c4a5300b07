package commands

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "mindflow"

// Flags holds the global flag values shared by every command.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
}

// xdgDir returns $env/mindflow, or ~/<fallback...>/mindflow when env is unset.
func xdgDir(env string, fallback ...string) string {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(append(append([]string{home}, fallback...), appName)...)
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/mindflow/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "config.yaml")
}

// DefaultDataDir returns $XDG_DATA_HOME/mindflow, where the SQLite database
// and JSON document live.
func DefaultDataDir() string {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// DefaultLogFile returns the log path under the state directory:
// $XDG_STATE_HOME/mindflow/mindflow.log, ~/Library/Logs/mindflow on macOS,
// or ~/.local/state/mindflow elsewhere.
func DefaultLogFile() string {
	if os.Getenv("XDG_STATE_HOME") == "" && runtime.GOOS == "darwin" {
		return filepath.Join(xdgDir("", "Library", "Logs"), appName+".log")
	}
	return filepath.Join(xdgDir("XDG_STATE_HOME", ".local", "state"), appName+".log")
}
