package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "poewatch"

// location describes where one kind of per-user directory lives.
type location struct {
	winEnv      string   // preferred variable on Windows
	winFallback []string // under %USERPROFILE%
	xdgEnv      string
	unixDefault []string // under $HOME
}

var (
	configLocation = location{
		winEnv:      "APPDATA",
		winFallback: []string{"AppData", "Roaming"},
		xdgEnv:      "XDG_CONFIG_HOME",
		unixDefault: []string{".config"},
	}
	dataLocation = location{
		winEnv:      "LOCALAPPDATA",
		winFallback: []string{"AppData", "Local"},
		xdgEnv:      "XDG_DATA_HOME",
		unixDefault: []string{".local", "share"},
	}
)

func (l location) resolve() (string, error) {
	if runtime.GOOS == "windows" {
		if base := os.Getenv(l.winEnv); base != "" {
			return filepath.Join(base, appName), nil
		}
		parts := append([]string{os.Getenv("USERPROFILE")}, l.winFallback...)
		return filepath.Join(append(parts, appName)...), nil
	}
	if base := os.Getenv(l.xdgEnv); base != "" {
		return filepath.Join(base, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, l.unixDefault...)
	return filepath.Join(append(parts, appName)...), nil
}

// GetConfigDir returns the directory holding config.toml:
// $XDG_CONFIG_HOME/poewatch, ~/.config/poewatch or %APPDATA%\poewatch.
func GetConfigDir() (string, error) {
	return configLocation.resolve()
}

// GetDataDir returns the directory for the log file:
// $XDG_DATA_HOME/poewatch, ~/.local/share/poewatch or %LOCALAPPDATA%\poewatch.
func GetDataDir() (string, error) {
	return dataLocation.resolve()
}

// GetConfigPath returns the path of the main config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// GetLogPath returns the file the TUI writes its log to. Stdout belongs to
// the terminal UI while it runs.
func GetLogPath() (string, error) {
	dir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName+".log"), nil
}

// EnsureDirs creates the config and data directories.
func EnsureDirs() error {
	for _, l := range []location{configLocation, dataLocation} {
		dir, err := l.resolve()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return nil
}
