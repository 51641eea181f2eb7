package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	toml "github.com/pelletier/go-toml/v2"

	"commentbank/internal/app"
	"commentbank/internal/bank"
	"commentbank/internal/clipboard"
	"commentbank/internal/config"
	"commentbank/internal/logging"
)

type recordingCopier struct {
	copied []string
	err    error
}

func (c *recordingCopier) Copy(_ context.Context, text string) (clipboard.Method, error) {
	if c.err != nil {
		return clipboard.MethodSystem, c.err
	}
	c.copied = append(c.copied, text)
	return clipboard.MethodSystem, nil
}

type countingCloser struct {
	closed int
}

func (c *countingCloser) Close() error {
	c.closed++
	return nil
}

type testEnv struct {
	bankPath string
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	copier   *recordingCopier
	uiStore  *bank.Store
	uiCalls  int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return &testEnv{
		bankPath: filepath.Join(home, "bank.csv"),
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		copier:   &recordingCopier{},
	}
}

func (e *testEnv) wiring() commandWiring {
	return commandWiring{
		stdout: e.stdout,
		stderr: e.stderr,
		newCopier: func(config.Config) clipboard.Copier {
			return e.copier
		},
		openLogger: func(config.Config) (logging.Logger, io.Closer, error) {
			return logging.Nop(), io.NopCloser(nil), nil
		},
		runUI: func(store *bank.Store, opts ...app.ModelOption) error {
			e.uiCalls++
			e.uiStore = store
			return nil
		},
	}
}

func (e *testEnv) run(t *testing.T, args ...string) error {
	t.Helper()
	e.stdout.Reset()
	e.stderr.Reset()
	return execute(e.wiring(), append([]string{"--file", e.bankPath}, args...))
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	if err := e.run(t, args...); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return e.stdout.String()
}

func (e *testEnv) fileContents(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(e.bankPath)
	if err != nil {
		t.Fatalf("read bank: %v", err)
	}
	return string(data)
}

func TestRootWithoutSubcommandStartsUI(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t)
	if env.uiCalls != 1 {
		t.Fatalf("expected ui to start once, got %d", env.uiCalls)
	}
	if env.uiStore.Path() != env.bankPath {
		t.Fatalf("expected store path %q, got %q", env.bankPath, env.uiStore.Path())
	}

	env.mustRun(t, "ui")
	if env.uiCalls != 2 {
		t.Fatalf("expected ui subcommand to start the ui")
	}
}

func TestEditCommandsPersistSortedFile(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add-category", "Structure")
	env.mustRun(t, "add", "Analysis", "Needs evidence")
	env.mustRun(t, "replace", "Structure", bank.PlaceholderFeedback, "Clear sections")
	env.mustRun(t, "rename-category", "Methodology", "Method")
	env.mustRun(t, "remove", "Analysis", "Bad")

	want := "Analysis,Good\nAnalysis,Needs evidence\nMethod,Could be improved\nStructure,Clear sections\n"
	if got := env.fileContents(t); got != want {
		t.Fatalf("unexpected file:\n%s", got)
	}

	env.mustRun(t, "remove-category", "Structure")
	if strings.Contains(env.fileContents(t), "Structure") {
		t.Fatalf("expected category removed")
	}
}

func TestEditCommandsReportRejectedAndUnchanged(t *testing.T) {
	env := newTestEnv(t)

	err := env.run(t, "add-category", "Analysis")
	if err == nil || !strings.Contains(err.Error(), "rejected") {
		t.Fatalf("expected rejected duplicate category, got %v", err)
	}
	err = env.run(t, "add", "Analysis", "Goo")
	if err == nil || !strings.Contains(err.Error(), "rejected") {
		t.Fatalf("expected rejected substring duplicate, got %v", err)
	}
	err = env.run(t, "remove-category", "Missing")
	if err == nil || !strings.Contains(err.Error(), "nothing matched") {
		t.Fatalf("expected unchanged result, got %v", err)
	}
	if err := env.run(t, "add", "Analysis"); err == nil {
		t.Fatalf("expected argument count error")
	}
}

func TestListCommand(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "Analysis", "Clear argument")

	out := env.mustRun(t, "list")
	for _, want := range []string{"CATEGORY", "Analysis", "3", "Methodology", "1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}

	out = env.mustRun(t, "list", "Analysis")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if diff := cmp.Diff([]string{"1  Bad", "2  Clear argument", "3  Good"}, lines); diff != "" {
		t.Fatalf("unexpected feedback listing (-want +got):\n%s", diff)
	}

	if err := env.run(t, "list", "Missing"); err == nil {
		t.Fatalf("expected missing category error")
	}
}

func TestListRenderUsesMarkdown(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun(t, "list", "--render", "--style", "notty")
	for _, want := range []string{"Comment bank", "Analysis", "Could be improved"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in rendered output:\n%s", want, out)
		}
	}
}

func TestCopyCommand(t *testing.T) {
	env := newTestEnv(t)

	env.mustRun(t, "copy", "Analysis", "2")
	env.mustRun(t, "copy", "Methodology", "Could be improved", "--return")
	if diff := cmp.Diff([]string{"Good", "Could be improved\n"}, env.copier.copied); diff != "" {
		t.Fatalf("unexpected copies (-want +got):\n%s", diff)
	}

	if err := env.run(t, "copy", "Analysis", "3"); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected out of range error, got %v", err)
	}
	if err := env.run(t, "copy", "Missing", "1"); err == nil {
		t.Fatalf("expected missing category error")
	}

	env.copier.err = errors.New("no clipboard")
	if err := env.run(t, "copy", "Analysis", "1"); err == nil || !strings.Contains(err.Error(), "no clipboard") {
		t.Fatalf("expected clipboard error, got %v", err)
	}
}

func TestCopyCommandUsesConfiguredReturn(t *testing.T) {
	env := newTestEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[clipboard]\nappend_newline = true\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	env.mustRun(t, "--config", configPath, "copy", "Analysis", "1")
	if diff := cmp.Diff([]string{"Bad\n"}, env.copier.copied); diff != "" {
		t.Fatalf("unexpected copies (-want +got):\n%s", diff)
	}
}

func TestExportCommand(t *testing.T) {
	env := newTestEnv(t)

	var groups []bank.Group
	if err := json.Unmarshal([]byte(env.mustRun(t, "export", "--format", "json")), &groups); err != nil {
		t.Fatalf("decode json export: %v", err)
	}
	want := []bank.Group{
		{Category: "Analysis", Feedback: []string{"Bad", "Good"}},
		{Category: "Methodology", Feedback: []string{"Could be improved"}},
	}
	if diff := cmp.Diff(want, groups); diff != "" {
		t.Fatalf("unexpected export (-want +got):\n%s", diff)
	}

	output := filepath.Join(t.TempDir(), "out", "bank.md")
	env.mustRun(t, "export", "--format", "md", "-o", output)
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "## Methodology") {
		t.Fatalf("unexpected markdown export:\n%s", data)
	}

	if err := env.run(t, "export", "--format", "xml"); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestConfigCommand(t *testing.T) {
	env := newTestEnv(t)

	var cfg config.Config
	if err := toml.Unmarshal([]byte(env.mustRun(t, "config")), &cfg); err != nil {
		t.Fatalf("decode config output: %v", err)
	}
	if cfg.Bank.Path != env.bankPath {
		t.Fatalf("expected effective bank path %q, got %q", env.bankPath, cfg.Bank.Path)
	}

	if err := toml.Unmarshal([]byte(env.mustRun(t, "config", "--defaults")), &cfg); err != nil {
		t.Fatalf("decode defaults: %v", err)
	}
	if cfg != config.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLogLevelFlagOverridesConfig(t *testing.T) {
	env := newTestEnv(t)
	var level string
	wiring := env.wiring()
	wiring.openLogger = func(cfg config.Config) (logging.Logger, io.Closer, error) {
		level = cfg.LogLevel()
		return logging.Nop(), io.NopCloser(nil), nil
	}
	if err := execute(wiring, []string{"--file", env.bankPath, "--log-level", "debug", "list"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if level != "debug" {
		t.Fatalf("expected debug level, got %q", level)
	}
}

func TestLogFileClosedWhenCommandFails(t *testing.T) {
	env := newTestEnv(t)
	var buf bytes.Buffer
	closer := &countingCloser{}
	wiring := env.wiring()
	wiring.openLogger = func(config.Config) (logging.Logger, io.Closer, error) {
		return logging.New(&buf, logging.Info), closer, nil
	}

	err := execute(wiring, []string{"--file", env.bankPath, "remove-category", "Missing"})
	if err == nil {
		t.Fatalf("expected unchanged result to fail the command")
	}
	if closer.closed != 1 {
		t.Fatalf("expected log file closed once, got %d", closer.closed)
	}

	if err := execute(wiring, []string{"--file", env.bankPath, "list"}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if closer.closed != 2 {
		t.Fatalf("expected log file closed after success, got %d", closer.closed)
	}
}

func TestDebugLoggingRecordsEffectiveConfig(t *testing.T) {
	env := newTestEnv(t)
	var buf bytes.Buffer
	wiring := env.wiring()
	wiring.openLogger = func(cfg config.Config) (logging.Logger, io.Closer, error) {
		return logging.New(&buf, logging.ParseLevel(cfg.LogLevel())), io.NopCloser(nil), nil
	}

	if err := execute(wiring, []string{"--file", env.bankPath, "list"}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.Contains(buf.String(), "effective config") {
		t.Fatalf("expected no debug output at info level, got %q", buf.String())
	}

	if err := execute(wiring, []string{"--file", env.bankPath, "--log-level", "debug", "list"}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(buf.String(), "effective config") || !strings.Contains(buf.String(), env.bankPath) {
		t.Fatalf("expected debug config line, got %q", buf.String())
	}
}
