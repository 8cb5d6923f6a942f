// Package export writes expense records to flat files.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/exptrack/internal/model"
)

// ErrIO marks a destination that could not be created or written.
var ErrIO = errors.New("export failed")

// Format selects the output encoding.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// Header is the CSV header row.
var Header = []string{"ID", "Amount", "Category", "Date"}

// FormatFromPath picks PDF for a .pdf extension and CSV otherwise.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return FormatPDF
	}
	return FormatCSV
}

// ParseFormat maps a user-supplied name to a Format. An empty name means
// "decide from the file extension" and returns "".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return "", nil
	case "csv":
		return FormatCSV, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: unknown export format %q", model.ErrInput, name)
	}
}

// ToFile writes records to path, replacing any existing file. An empty
// format is inferred from the path. On failure the file may be absent or
// truncated.
func ToFile(path string, records []model.Expense, format Format) error {
	if format == "" {
		format = FormatFromPath(path)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // export path is chosen by the local user
	if err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrIO, path, err)
	}

	var writeErr error
	switch format {
	case FormatPDF:
		writeErr = WritePDF(f, records, "Expense Report")
	default:
		writeErr = WriteCSV(f, records)
	}
	closeErr := f.Close()

	if writeErr != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrIO, path, closeErr)
	}
	return nil
}

func writeAll(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}
