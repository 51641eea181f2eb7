package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"commentbank/internal/bank"
	"commentbank/internal/clipboard"
	"commentbank/internal/logging"
)

const copyTimeout = 5 * time.Second

func newCopyCommand(s *session) *cobra.Command {
	var withReturn bool
	cmd := &cobra.Command{
		Use:   "copy CATEGORY INDEX|TEXT",
		Short: "Copy one feedback to the clipboard",
		Long:  "Copy one feedback to the clipboard. The feedback is chosen by its 1-based position in `list CATEGORY` or by its exact text.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := resolveFeedback(s.openStore(), args[0], args[1])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("return") {
				withReturn = s.cfg.Clipboard.AppendNewline
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), copyTimeout)
			defer cancel()
			method, err := s.copier().Copy(ctx, clipboard.WithReturn(text, withReturn))
			if err != nil {
				return fmt.Errorf("copy: %w", err)
			}
			s.logger.Info("copied feedback", logging.F("category", args[0]), logging.F("method", method.String()))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&withReturn, "return", "r", false, "append a newline to the copied text")
	return cmd
}

func resolveFeedback(store *bank.Store, category, selector string) (string, error) {
	feedback := store.FeedbackFor(category)
	if len(feedback) == 0 {
		return "", fmt.Errorf("category %q not found", category)
	}
	if index, err := strconv.Atoi(selector); err == nil {
		if index < 1 || index > len(feedback) {
			return "", fmt.Errorf("index %d out of range (1-%d)", index, len(feedback))
		}
		return feedback[index-1], nil
	}
	for _, text := range feedback {
		if text == selector {
			return text, nil
		}
	}
	return "", fmt.Errorf("feedback %q not found in %q", selector, category)
}
