package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"commentbank/internal/bank"
)

func newEditCommands(s *session) []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "add-category NAME",
			Short: "Add a category with a placeholder feedback row",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return resultError("add category", s.openStore().AddCategory(args[0]))
			},
		},
		{
			Use:   "add CATEGORY TEXT",
			Short: "Add feedback to a category",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return resultError("add feedback", s.openStore().AddFeedback(args[0], args[1]))
			},
		},
		{
			Use:   "remove-category NAME",
			Short: "Remove a category and all of its feedback",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return resultError("remove category", s.openStore().RemoveCategory(args[0]))
			},
		},
		{
			Use:   "rename-category OLD NEW",
			Short: "Rename a category",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return resultError("rename category", s.openStore().RenameCategory(args[0], args[1]))
			},
		},
		{
			Use:   "remove CATEGORY TEXT",
			Short: "Remove one feedback from a category",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return resultError("remove feedback", s.openStore().RemoveFeedback(args[0], args[1]))
			},
		},
		{
			Use:   "replace CATEGORY OLD NEW",
			Short: "Replace the text of one feedback",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return resultError("replace feedback", s.openStore().ReplaceFeedback(args[0], args[1], args[2]))
			},
		},
	}
}

func resultError(action string, result bank.Result) error {
	switch result {
	case bank.Applied:
		return nil
	case bank.Unchanged:
		return fmt.Errorf("%s: nothing matched", action)
	case bank.Rejected:
		return fmt.Errorf("%s: rejected (empty value or duplicate)", action)
	case bank.PersistFailed:
		return fmt.Errorf("%s: changes could not be saved", action)
	default:
		return fmt.Errorf("%s: %s", action, result)
	}
}
