package bank

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const fieldsPerRecord = 2

func readEntries(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = fieldsPerRecord
	// Hand-edited banks often carry bare quotes inside a field.
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("empty file")
	}
	entries := make([]Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, Entry{Category: record[0], Feedback: record[1]})
	}
	return entries, nil
}

func readEntriesFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readEntries(file)
}

func writeEntries(w io.Writer, entries []Entry) error {
	writer := csv.NewWriter(w)
	for _, entry := range entries {
		if err := writer.Write([]string{entry.Category, entry.Feedback}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// writeEntriesAtomic replaces path through a temp file in the same directory.
// A symlinked bank is written through to its target and an existing file keeps
// its permissions.
func writeEntriesAtomic(path string, entries []Entry) error {
	path, mode, err := resolveWriteTarget(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	file, err := os.CreateTemp(dir, ".tmp-*.csv")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(file.Name())
	}()

	if err := writeEntries(file, entries); err != nil {
		_ = file.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := file.Chmod(mode); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	return os.Rename(file.Name(), path)
}

func resolveWriteTarget(path string) (string, os.FileMode, error) {
	const defaultMode os.FileMode = 0o600
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return path, defaultMode, nil
		}
		return "", 0, err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", 0, err
	}
	if !info.Mode().IsRegular() {
		return "", 0, fmt.Errorf("%s is not a regular file", path)
	}
	return resolved, info.Mode().Perm(), nil
}
