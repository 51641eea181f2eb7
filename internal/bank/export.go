package bank

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

var formats = []Format{FormatCSV, FormatJSON, FormatYAML, FormatMarkdown}

func Formats() []Format {
	return append([]Format(nil), formats...)
}

func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported format %q", raw)
	}
}

// Export writes the bank in the given format. CSV output is sorted the same
// way Save writes it; the other formats group feedback by category.
func Export(w io.Writer, s *Store, format Format) error {
	if s == nil {
		return fmt.Errorf("store is required")
	}
	switch format {
	case FormatCSV:
		entries := s.Entries()
		sortEntries(entries)
		return writeEntries(w, entries)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(s.Groups())
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(s.Groups()); err != nil {
			return err
		}
		return encoder.Close()
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(s))
		return err
	default:
		return fmt.Errorf("unsupported format %q", string(format))
	}
}

func Markdown(s *Store) string {
	var b strings.Builder
	b.WriteString("# Comment bank\n")
	for _, group := range s.Groups() {
		b.WriteString("\n## ")
		b.WriteString(group.Category)
		b.WriteString("\n\n")
		for _, feedback := range group.Feedback {
			b.WriteString("- ")
			b.WriteString(strings.ReplaceAll(feedback, "\n", " "))
			b.WriteString("\n")
		}
	}
	return b.String()
}
