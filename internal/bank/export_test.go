package bank

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":         FormatCSV,
		"CSV":      FormatCSV,
		"json":     FormatJSON,
		"yml":      FormatYAML,
		" yaml ":   FormatYAML,
		"md":       FormatMarkdown,
		"markdown": FormatMarkdown,
	}
	for raw, want := range cases {
		got, err := ParseFormat(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %q, got %q", raw, want, got)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestExportCSVIsSorted(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, New(DefaultEntries()), FormatCSV); err != nil {
		t.Fatalf("export: %v", err)
	}
	want := "Analysis,Bad\nAnalysis,Good\nMethodology,Could be improved\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestExportStructuredFormats(t *testing.T) {
	store := New(DefaultEntries())
	want := []Group{
		{Category: "Analysis", Feedback: []string{"Bad", "Good"}},
		{Category: "Methodology", Feedback: []string{"Could be improved"}},
	}

	var jsonBuf bytes.Buffer
	if err := Export(&jsonBuf, store, FormatJSON); err != nil {
		t.Fatalf("export json: %v", err)
	}
	var fromJSON []Group
	if err := json.Unmarshal(jsonBuf.Bytes(), &fromJSON); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if diff := cmp.Diff(want, fromJSON); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}

	var yamlBuf bytes.Buffer
	if err := Export(&yamlBuf, store, FormatYAML); err != nil {
		t.Fatalf("export yaml: %v", err)
	}
	var fromYAML []Group
	if err := yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if diff := cmp.Diff(want, fromYAML); diff != "" {
		t.Fatalf("yaml mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkdownGroupsByCategory(t *testing.T) {
	out := Markdown(New([]Entry{{"Style", "Clear"}, {"Analysis", "Two\nlines"}}))
	for _, want := range []string{"## Style\n\n- Clear\n", "## Analysis\n\n- Two lines\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in markdown:\n%s", want, out)
		}
	}
	if strings.Index(out, "## Style") > strings.Index(out, "## Analysis") {
		t.Fatalf("expected table order to be kept:\n%s", out)
	}
}
