package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"commentbank/internal/bank"
)

type listOptions struct {
	render bool
	style  string
	width  int
}

func newListCommand(s *session) *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list [CATEGORY]",
		Short: "List categories, or the feedback of one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := s.openStore()
			if opts.render {
				return renderMarkdown(s, store, opts)
			}
			if len(args) == 1 {
				return listFeedback(s, store, args[0])
			}
			return listCategories(s, store)
		},
	}
	cmd.Flags().BoolVar(&opts.render, "render", false, "render the whole bank as markdown")
	cmd.Flags().StringVar(&opts.style, "style", "auto", "glamour style for --render (auto, dark, light, notty)")
	cmd.Flags().IntVar(&opts.width, "width", 80, "word wrap width for --render")
	return cmd
}

func listCategories(s *session, store *bank.Store) error {
	w := tabwriter.NewWriter(s.wiring.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tFEEDBACK")
	for _, group := range store.Groups() {
		fmt.Fprintf(w, "%s\t%d\n", group.Category, len(group.Feedback))
	}
	return w.Flush()
}

func listFeedback(s *session, store *bank.Store, category string) error {
	if !store.HasCategory(category) {
		return fmt.Errorf("category %q not found", category)
	}
	w := tabwriter.NewWriter(s.wiring.stdout, 0, 4, 2, ' ', 0)
	for i, feedback := range store.FeedbackFor(category) {
		fmt.Fprintf(w, "%d\t%s\n", i+1, strings.ReplaceAll(feedback, "\n", " "))
	}
	return w.Flush()
}

func renderMarkdown(s *session, store *bank.Store, opts listOptions) error {
	style := strings.TrimSpace(opts.style)
	if style == "" || style == "auto" {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(opts.width),
	)
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := renderer.Render(bank.Markdown(store))
	if err != nil {
		return fmt.Errorf("render bank: %w", err)
	}
	_, err = fmt.Fprint(s.wiring.stdout, out)
	return err
}
