// Package export writes batch results for spreadsheet consumers and
// renders terminal previews.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"relabel/internal/models"
)

// Supported output formats.
const (
	FormatTSV  = "tsv"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned for formats other than tsv, csv or json.
var ErrUnknownFormat = errors.New("unknown output format")

// Header columns for the delimited formats.
var header = []string{"Original Label", "Corrected Label"}

// Writer exports original/corrected pairs.
type Writer struct {
	format        string
	includeHeader bool
}

// NewWriter creates a writer for the given format.
func NewWriter(format string, includeHeader bool) (*Writer, error) {
	switch format {
	case FormatTSV, FormatCSV, FormatJSON:
		return &Writer{format: format, includeHeader: includeHeader}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile exports records to path, creating parent directories as needed.
func (w *Writer) WriteFile(path string, records []models.LabelRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := w.Write(f, records); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Write exports records to out in the writer's format.
func (w *Writer) Write(out io.Writer, records []models.LabelRecord) error {
	if w.format == FormatJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal records: %w", err)
		}

		if _, err := out.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write records: %w", err)
		}

		return nil
	}

	cw := csv.NewWriter(out)
	if w.format == FormatTSV {
		cw.Comma = '\t'
	}

	if w.includeHeader {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for _, rec := range records {
		if err := cw.Write([]string{rec.Original, rec.Corrected}); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
