package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultLogLevel = "info"

type Config struct {
	Bank      BankConfig      `toml:"bank"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Logging   LoggingConfig   `toml:"logging"`
	UI        UIConfig        `toml:"ui"`
}

type BankConfig struct {
	Path string `toml:"path"`
}

type ClipboardConfig struct {
	AppendNewline bool `toml:"append_newline"`
	DisableOSC52  bool `toml:"disable_osc52"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type UIConfig struct {
	ConfirmRemoveCategory bool `toml:"confirm_remove_category"`
}

func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level: defaultLogLevel,
		},
		UI: UIConfig{
			ConfirmRemoveCategory: true,
		},
	}
}

// Load reads the config file from the data directory. A missing or empty
// file yields the defaults.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFromPath(path)
}

func LoadFromPath(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// BankPath resolves the configured bank file, defaulting to bank.csv in the
// data directory.
func (c Config) BankPath() (string, error) {
	path := strings.TrimSpace(c.Bank.Path)
	if path == "" {
		return DefaultBankPath()
	}
	return resolveConfigPath(path)
}

func (c Config) LogPath() (string, error) {
	path := strings.TrimSpace(c.Logging.File)
	if path == "" {
		return DefaultLogPath()
	}
	return resolveConfigPath(path)
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func resolveConfigPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is required")
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, path), nil
}
