package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"commentbank/internal/app"
	"commentbank/internal/bank"
	"commentbank/internal/clipboard"
	"commentbank/internal/config"
	"commentbank/internal/logging"
)

type commandWiring struct {
	stdout     io.Writer
	stderr     io.Writer
	newCopier  func(cfg config.Config) clipboard.Copier
	openLogger func(cfg config.Config) (logging.Logger, io.Closer, error)
	runUI      func(store *bank.Store, opts ...app.ModelOption) error
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout: stdout,
		stderr: stderr,
		newCopier: func(cfg config.Config) clipboard.Copier {
			return clipboard.Service{DisableOSC52: cfg.Clipboard.DisableOSC52}
		},
		openLogger: openFileLogger,
		runUI:      app.Run,
	}
}

type rootOptions struct {
	file       string
	configPath string
	logLevel   string
}

// session is the state shared by every subcommand once flags and config have
// been resolved.
type session struct {
	wiring   commandWiring
	opts     *rootOptions
	cfg      config.Config
	logger   logging.Logger
	closer   io.Closer
	bankPath string
	messages []string
}

// execute runs the command line and closes the log file whether or not the
// command succeeded.
func execute(wiring commandWiring, args []string) error {
	root, s := newRootCommand(wiring)
	if args != nil {
		root.SetArgs(args)
	}
	err := root.Execute()
	if closeErr := s.close(); err == nil {
		err = closeErr
	}
	return err
}

func newRootCommand(wiring commandWiring) (*cobra.Command, *session) {
	opts := &rootOptions{}
	s := &session{wiring: wiring, opts: opts, logger: logging.Nop()}

	root := &cobra.Command{
		Use:           "commentbank",
		Short:         "Manage a bank of reusable assessment feedback",
		Long:          "commentbank keeps categorised feedback comments in a two-column CSV file and copies them to the clipboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runUI()
		},
	}
	root.SetOut(wiring.stdout)
	root.SetErr(wiring.stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "", "comment bank CSV file (default from config, then ~/.commentbank/bank.csv)")
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.commentbank/config.toml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newUICommand(s),
		newListCommand(s),
		newCopyCommand(s),
		newExportCommand(s),
		newConfigCommand(s),
	)
	root.AddCommand(newEditCommands(s)...)
	return root, s
}

func (s *session) setup() error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}
	if level := strings.TrimSpace(s.opts.logLevel); level != "" {
		cfg.Logging.Level = level
	}
	s.cfg = cfg

	if file := strings.TrimSpace(s.opts.file); file != "" {
		s.bankPath, err = filepath.Abs(file)
	} else {
		s.bankPath, err = cfg.BankPath()
	}
	if err != nil {
		return fmt.Errorf("resolve bank path: %w", err)
	}

	if s.wiring.openLogger != nil {
		logger, closer, err := s.wiring.openLogger(cfg)
		if err != nil {
			fmt.Fprintf(s.wiring.stderr, "warning: logging disabled: %v\n", err)
		} else {
			s.logger = logger
			s.closer = closer
		}
	}
	if s.logger.Enabled(logging.Debug) {
		s.logger.Debug("effective config",
			logging.F("bank", s.bankPath),
			logging.F("append_newline", cfg.Clipboard.AppendNewline),
			logging.F("disable_osc52", cfg.Clipboard.DisableOSC52),
			logging.F("confirm_remove_category", cfg.UI.ConfirmRemoveCategory),
		)
	}
	return nil
}

func (s *session) loadConfig() (config.Config, error) {
	path := strings.TrimSpace(s.opts.configPath)
	if path == "" {
		return config.Load()
	}
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (s *session) close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

// openStore loads the bank, recording the store's status lines so the UI can
// show them and the log file keeps them.
func (s *session) openStore() *bank.Store {
	logf := logging.MessageFunc(s.logger, logging.F("component", "bank"))
	s.messages = nil
	return bank.Load(s.bankPath, bank.WithLogger(func(message string) {
		s.messages = append(s.messages, message)
		logf(message)
	}))
}

func (s *session) copier() clipboard.Copier {
	if s.wiring.newCopier == nil {
		return clipboard.Service{}
	}
	return s.wiring.newCopier(s.cfg)
}

func (s *session) runUI() error {
	store := s.openStore()
	s.logger.Info("starting ui", logging.F("bank", store.Path()))
	if s.wiring.runUI == nil {
		return errors.New("ui is not available")
	}
	return s.wiring.runUI(store,
		app.WithClipboard(s.copier()),
		app.WithLogger(s.logger.With(logging.F("component", "ui"))),
		app.WithReturn(s.cfg.Clipboard.AppendNewline),
		app.WithConfirmRemoveCategory(s.cfg.UI.ConfirmRemoveCategory),
		app.WithStartupMessages(s.messages...),
	)
}

func openFileLogger(cfg config.Config) (logging.Logger, io.Closer, error) {
	path, err := cfg.LogPath()
	if err != nil {
		return nil, nil, err
	}
	return logging.Open(path, logging.ParseLevel(cfg.LogLevel()))
}

func newUICommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Browse the bank in the terminal and copy feedback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runUI()
		},
	}
}
