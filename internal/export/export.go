// Package export renders generated records as json, csv, tsv or aligned
// text, to a writer or to a file.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zecid/internal/identity"
)

// Format names an output encoding.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	TSV  Format = "tsv"
	Text Format = "text"
)

// ErrUnknownFormat is returned for a format name not in Formats.
var ErrUnknownFormat = errors.New("unknown format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{Text, JSON, CSV, TSV}
}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Write encodes records to w.
func Write(w io.Writer, f Format, records []identity.Record) error {
	switch f {
	case JSON:
		return writeJSON(w, records)
	case CSV:
		return writeDelimited(w, ',', records)
	case TSV:
		return writeDelimited(w, '\t', records)
	case Text:
		return writeText(w, records)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// SaveFile encodes records to name on fsys, creating parent directories.
func SaveFile(fsys zfilesystem.ReadWriteFileFS, name string, f Format, records []identity.Record) error {
	var buf bytes.Buffer
	if err := Write(&buf, f, records); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}

	if dir := path.Dir(name); dir != "." && dir != "/" {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}

	if err := fsys.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// FieldsTSV renders one record as "label<TAB>value" lines.
func FieldsTSV(r identity.Record) string {
	var b strings.Builder
	for _, f := range r.Fields() {
		b.WriteString(f.Name)
		b.WriteByte('\t')
		b.WriteString(f.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

func writeJSON(w io.Writer, records []identity.Record) error {
	if records == nil {
		records = []identity.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeDelimited(w io.Writer, comma rune, records []identity.Record) error {
	cols := columns(records)
	if len(cols) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	cw.Comma = comma

	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(cols))
	for _, r := range records {
		values := make(map[string]string)
		for _, f := range r.Fields() {
			values[f.Name] = f.Value
		}
		for i, c := range cols {
			row[i] = values[c]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// columns is the union of field names across records in first-seen order,
// so optional fields get a column when any record carries them.
func columns(records []identity.Record) []string {
	var cols []string
	seen := make(map[string]bool)
	for _, r := range records {
		for _, f := range r.Fields() {
			if !seen[f.Name] {
				seen[f.Name] = true
				cols = append(cols, f.Name)
			}
		}
	}
	return cols
}

func writeText(w io.Writer, records []identity.Record) error {
	for i, r := range records {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		fields := r.Fields()
		width := 0
		for _, f := range fields {
			width = max(width, len(f.Name))
		}
		for _, f := range fields {
			if _, err := fmt.Fprintf(w, "  %-*s  %s\n", width+1, f.Name+":", f.Value); err != nil {
				return err
			}
		}
	}
	return nil
}
