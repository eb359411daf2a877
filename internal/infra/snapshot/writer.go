// Package snapshot writes the parsed issue records to disk for auditing.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/backlog/internal/domain"
)

// Ensure Writer implements domain.SnapshotWriter.
var _ domain.SnapshotWriter = (*Writer)(nil)

// Writer writes records as a JSON array, or as YAML when the path ends in
// .yaml or .yml.
type Writer struct{}

// New creates a new Writer.
func New() *Writer {
	return &Writer{}
}

// Write replaces the file at path with the encoded records.
func (w *Writer) Write(path string, records []domain.IssueRecord) error {
	data, err := Encode(path, records)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create snapshot directory: %w", err)
		}
	}
	// Write to a temp file and rename so a failed run never leaves half a snapshot.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatForPath returns FormatYAML for .yaml and .yml paths, FormatJSON otherwise.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode renders records in the format implied by path.
func Encode(path string, records []domain.IssueRecord) ([]byte, error) {
	return EncodeFormat(FormatForPath(path), records)
}

// EncodeFormat renders records as JSON or YAML. Labels are always a list.
func EncodeFormat(format string, records []domain.IssueRecord) ([]byte, error) {
	normalized := make([]domain.IssueRecord, len(records))
	for i, r := range records {
		if r.Labels == nil {
			r.Labels = []string{}
		}
		normalized[i] = r
	}

	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(normalized)
		if err != nil {
			return nil, fmt.Errorf("encode snapshot: %w", err)
		}
		return data, nil
	case FormatJSON:
		return EncodeJSON(normalized)
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", format)
	}
}

// EncodeJSON renders records as an indented JSON array. Non-ASCII text and
// HTML characters are kept verbatim.
func EncodeJSON(records []domain.IssueRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}
