package bank

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

type Result int

const (
	Applied Result = iota
	Unchanged
	Rejected
	PersistFailed
)

func (r Result) String() string {
	switch r {
	case Applied:
		return "applied"
	case Unchanged:
		return "unchanged"
	case Rejected:
		return "rejected"
	case PersistFailed:
		return "persist failed"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}

// Changed reports whether the in-memory table was modified, even if the
// subsequent write failed.
func (r Result) Changed() bool {
	return r == Applied || r == PersistFailed
}

// LogFunc receives human-readable status lines such as "Loaded: bank.csv".
type LogFunc func(message string)

type Option func(*Store)

func WithLogger(fn LogFunc) Option {
	return func(s *Store) {
		s.logf = fn
	}
}

// Store is an in-memory comment bank backed by an optional CSV file. Every
// successful mutation rewrites the whole file. Store is not safe for
// concurrent use.
type Store struct {
	path    string
	entries []Entry
	logf    LogFunc
	// unreadable is set when path exists but could not be parsed; no-op
	// mutations then leave the file alone.
	unreadable bool
}

// New returns a store without a backing file.
func New(entries []Entry, opts ...Option) *Store {
	s := &Store{entries: cloneEntries(entries)}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.entries == nil {
		s.entries = []Entry{}
	}
	return s
}

// Load reads path into a new store. It never fails: a missing or malformed
// file leaves the default table in place and the failure is only logged. The
// path is retained either way so later mutations are written back to it.
func Load(path string, opts ...Option) *Store {
	s := New(DefaultEntries(), opts...)
	path = strings.TrimSpace(path)
	if path == "" {
		return s
	}
	s.path = path
	entries, err := readEntriesFile(path)
	if err != nil {
		s.unreadable = !errors.Is(err, os.ErrNotExist)
		s.log("Error loading file: " + path)
		return s
	}
	s.entries = entries
	s.log("Loaded: " + path)
	s.log(fmt.Sprintf("%d items added", len(entries)))
	return s
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the table in its current order.
func (s *Store) Entries() []Entry {
	return cloneEntries(s.entries)
}

// Categories returns the distinct categories in first-seen table order.
func (s *Store) Categories() []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, entry := range s.entries {
		if _, ok := seen[entry.Category]; ok {
			continue
		}
		seen[entry.Category] = struct{}{}
		out = append(out, entry.Category)
	}
	return out
}

func (s *Store) HasCategory(category string) bool {
	for _, entry := range s.entries {
		if entry.Category == category {
			return true
		}
	}
	return false
}

func (s *Store) FeedbackFor(category string) []string {
	out := []string{}
	for _, entry := range s.entries {
		if entry.Category == category {
			out = append(out, entry.Feedback)
		}
	}
	sort.Strings(out)
	return out
}

func (s *Store) Groups() []Group {
	categories := s.Categories()
	groups := make([]Group, 0, len(categories))
	for _, category := range categories {
		groups = append(groups, Group{Category: category, Feedback: s.FeedbackFor(category)})
	}
	return groups
}

// AddCategory inserts name with a placeholder feedback row. Any existing
// category containing name as a substring blocks the insert.
func (s *Store) AddCategory(name string) Result {
	name = normalizeNewlines(name)
	if strings.TrimSpace(name) == "" {
		return Rejected
	}
	for _, entry := range s.entries {
		if strings.Contains(entry.Category, name) {
			return Rejected
		}
	}
	s.entries = append(s.entries, Entry{Category: name, Feedback: PlaceholderFeedback})
	sortEntries(s.entries)
	return s.persist()
}

// AddFeedback appends text to category. Text already contained in any
// feedback of the category is rejected.
func (s *Store) AddFeedback(category, text string) Result {
	category, text = normalizeNewlines(category), normalizeNewlines(text)
	if strings.TrimSpace(category) == "" || text == "" {
		return Rejected
	}
	for _, entry := range s.entries {
		if entry.Category == category && strings.Contains(entry.Feedback, text) {
			return Rejected
		}
	}
	s.entries = append(s.entries, Entry{Category: category, Feedback: text})
	return s.persist()
}

// RemoveCategory deletes every row of category. The file is rewritten even
// when nothing matched, unless it could not be read at load time.
func (s *Store) RemoveCategory(category string) Result {
	category = normalizeNewlines(category)
	if strings.TrimSpace(category) == "" {
		return Rejected
	}
	removed := s.removeWhere(func(entry Entry) bool {
		return entry.Category == category
	})
	return s.persistAfter(removed > 0)
}

// RenameCategory moves every row of oldName to newName. Renaming onto an
// existing category merges the two unless that would duplicate a row.
func (s *Store) RenameCategory(oldName, newName string) Result {
	oldName, newName = normalizeNewlines(oldName), normalizeNewlines(newName)
	if strings.TrimSpace(oldName) == "" || strings.TrimSpace(newName) == "" {
		return Rejected
	}
	if !s.HasCategory(oldName) {
		return Unchanged
	}
	if oldName == newName {
		return Unchanged
	}
	existing := map[string]struct{}{}
	for _, feedback := range s.FeedbackFor(newName) {
		existing[feedback] = struct{}{}
	}
	for _, entry := range s.entries {
		if entry.Category != oldName {
			continue
		}
		if _, ok := existing[entry.Feedback]; ok {
			return Rejected
		}
	}
	for i := range s.entries {
		if s.entries[i].Category == oldName {
			s.entries[i].Category = newName
		}
	}
	return s.persist()
}

// RemoveFeedback deletes the row matching both fields exactly. The file is
// rewritten even when nothing matched, unless it could not be read at load
// time.
func (s *Store) RemoveFeedback(category, text string) Result {
	category, text = normalizeNewlines(category), normalizeNewlines(text)
	if strings.TrimSpace(category) == "" {
		return Rejected
	}
	removed := s.removeWhere(func(entry Entry) bool {
		return entry.Category == category && entry.Feedback == text
	})
	return s.persistAfter(removed > 0)
}

func (s *Store) ReplaceFeedback(category, oldText, newText string) Result {
	category = normalizeNewlines(category)
	oldText, newText = normalizeNewlines(oldText), normalizeNewlines(newText)
	if strings.TrimSpace(category) == "" || newText == "" {
		return Rejected
	}
	index := -1
	for i, entry := range s.entries {
		if entry.Category == category && entry.Feedback == oldText {
			index = i
			break
		}
	}
	if index < 0 {
		return Unchanged
	}
	if oldText == newText {
		return Unchanged
	}
	for _, entry := range s.entries {
		if entry.Category == category && entry.Feedback == newText {
			return Rejected
		}
	}
	s.entries[index].Feedback = newText
	return s.persist()
}

// Save sorts the table and rewrites the backing file. Without a path it
// only sorts.
func (s *Store) Save() error {
	sortEntries(s.entries)
	if s.path == "" {
		return nil
	}
	if err := writeEntriesAtomic(s.path, s.entries); err != nil {
		s.log("Error saving file: " + s.path)
		return err
	}
	s.unreadable = false
	return nil
}

func (s *Store) removeWhere(match func(Entry) bool) int {
	kept := s.entries[:0]
	removed := 0
	for _, entry := range s.entries {
		if match(entry) {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	s.entries = kept
	return removed
}

func (s *Store) persist() Result {
	return s.persistAfter(true)
}

func (s *Store) persistAfter(changed bool) Result {
	if !changed && s.unreadable {
		return Unchanged
	}
	err := s.Save()
	switch {
	case !changed:
		return Unchanged
	case err != nil:
		return PersistFailed
	default:
		return Applied
	}
}

func (s *Store) log(message string) {
	if s == nil || s.logf == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	s.logf(message)
}

// normalizeNewlines folds CRLF to LF, which is what a reload of the CSV file
// yields, so stored text compares equal before and after a save.
func normalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}
