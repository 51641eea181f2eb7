package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"commentbank/internal/bank"
)

func newExportCommand(s *session) *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the bank as csv, json, yaml or markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := bank.ParseFormat(format)
			if err != nil {
				return err
			}
			store := s.openStore()
			output = strings.TrimSpace(output)
			if output == "" || output == "-" {
				return bank.Export(s.wiring.stdout, store, parsed)
			}
			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			if err := bank.Export(f, store, parsed); err != nil {
				_ = f.Close()
				return fmt.Errorf("export: %w", err)
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVar(&format, "format", string(bank.FormatCSV), "output format: "+formatList())
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func formatList() string {
	names := make([]string, 0, len(bank.Formats()))
	for _, format := range bank.Formats() {
		names = append(names, string(format))
	}
	return strings.Join(names, ", ")
}
