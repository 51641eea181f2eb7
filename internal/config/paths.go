package config

import (
	"os"
	"path/filepath"
)

const appDirName = ".commentbank"

// DataDir returns the base data directory for commentbank.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// ConfigPath returns the path to the TOML configuration file.
func ConfigPath() (string, error) {
	return dataPath("config.toml")
}

// DefaultBankPath returns the comment bank used when none is configured.
func DefaultBankPath() (string, error) {
	return dataPath("bank.csv")
}

// DefaultLogPath returns the log file written by the terminal UI.
func DefaultLogPath() (string, error) {
	return dataPath("commentbank.log")
}

func dataPath(name string) (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, name), nil
}
