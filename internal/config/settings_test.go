package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel() != "info" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel())
	}
	if !cfg.UI.ConfirmRemoveCategory {
		t.Fatalf("expected remove confirmation on by default")
	}
	if cfg.Clipboard.AppendNewline || cfg.Clipboard.DisableOSC52 {
		t.Fatalf("unexpected clipboard defaults: %+v", cfg.Clipboard)
	}
	path, err := cfg.BankPath()
	if err != nil {
		t.Fatalf("BankPath: %v", err)
	}
	if want := filepath.Join(home, ".commentbank", "bank.csv"); path != want {
		t.Fatalf("unexpected bank path: got=%q want=%q", path, want)
	}
}

func TestLoadFromTOML(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)

	dataDir := filepath.Join(home, ".commentbank")
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	content := strings.Join([]string{
		"[bank]",
		`path = "banks/marking.csv"`,
		"[clipboard]",
		"append_newline = true",
		"[logging]",
		`level = "debug"`,
		`file = "~/logs/bank.log"`,
	}, "\n")
	if err := os.WriteFile(filepath.Join(dataDir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Clipboard.AppendNewline {
		t.Fatalf("expected append_newline")
	}
	if !cfg.UI.ConfirmRemoveCategory {
		t.Fatalf("expected unset keys to keep defaults")
	}
	if cfg.LogLevel() != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel())
	}
	bankPath, err := cfg.BankPath()
	if err != nil {
		t.Fatalf("BankPath: %v", err)
	}
	if want := filepath.Join(dataDir, "banks", "marking.csv"); bankPath != want {
		t.Fatalf("unexpected bank path: got=%q want=%q", bankPath, want)
	}
	logPath, err := cfg.LogPath()
	if err != nil {
		t.Fatalf("LogPath: %v", err)
	}
	if want := filepath.Join(home, "logs", "bank.log"); logPath != want {
		t.Fatalf("unexpected log path: got=%q want=%q", logPath, want)
	}
}

func TestLoadFromPathRejectsInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[bank\npath = 1"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bank.Path = "/tmp/bank.csv"
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if loaded != cfg {
		t.Fatalf("round trip mismatch: got=%+v want=%+v", loaded, cfg)
	}
}
