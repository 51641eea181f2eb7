package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"commentbank/internal/config"
)

func newConfigCommand(s *session) *cobra.Command {
	var defaults bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := s.cfg
			if defaults {
				cfg = config.DefaultConfig()
			} else {
				cfg.Bank.Path = s.bankPath
			}
			data, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = s.wiring.stdout.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, "print the built-in defaults instead")
	return cmd
}
