package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/go-logfmt/logfmt"
	"github.com/tidwall/pretty"
)

// OutputFormat represents the format of command output
type OutputFormat string

const (
	// TextFormat is a plain table (default)
	TextFormat OutputFormat = "text"

	// JSONFormat is the API response, indented
	JSONFormat OutputFormat = "json"

	// LogfmtFormat is one logfmt record per row
	LogfmtFormat OutputFormat = "logfmt"
)

// IsValid checks if the output format is valid
func (f OutputFormat) IsValid() bool {
	return f == TextFormat || f == JSONFormat || f == LogfmtFormat
}

// String returns the string representation of the output format
func (f OutputFormat) String() string {
	return string(f)
}

// FormatOutput formats a single message according to the specified format
func FormatOutput(content string, format OutputFormat) (string, error) {
	switch format {
	case TextFormat:
		return content, nil
	case JSONFormat:
		jsonData := map[string]string{
			"response": content,
		}
		jsonBytes, err := json.MarshalIndent(jsonData, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(jsonBytes), nil
	case LogfmtFormat:
		var buf bytes.Buffer
		enc := logfmt.NewEncoder(&buf)
		if err := enc.EncodeKeyval("response", content); err != nil {
			return "", fmt.Errorf("failed to encode logfmt: %w", err)
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// Table is the tabular view of a response. Rows must have as many cells as
// there are columns.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Append adds a row.
func (t *Table) Append(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Write renders a response. JSON output is the raw response body,
// indented; text and logfmt output are built from tbl.
func Write(w io.Writer, format OutputFormat, raw string, tbl Table) error {
	switch format {
	case TextFormat:
		return writeText(w, tbl)
	case JSONFormat:
		if raw == "" {
			raw = "null"
		}
		_, err := w.Write(pretty.Pretty([]byte(raw)))
		return err
	case LogfmtFormat:
		return writeLogfmt(w, tbl)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

var headerStyle = lipgloss.NewStyle().Bold(true).PaddingRight(2)
var cellStyle = lipgloss.NewStyle().PaddingRight(2)

func writeText(w io.Writer, tbl Table) error {
	if len(tbl.Rows) == 0 {
		return nil
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Rows(tbl.Rows...)
	if len(tbl.Columns) > 0 {
		t = t.Headers(tbl.Columns...)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func writeLogfmt(w io.Writer, tbl Table) error {
	enc := logfmt.NewEncoder(w)
	for _, row := range tbl.Rows {
		for i, cell := range row {
			key := fmt.Sprintf("col%d", i)
			if i < len(tbl.Columns) {
				key = tbl.Columns[i]
			}
			if err := enc.EncodeKeyval(key, cell); err != nil {
				return err
			}
		}
		if err := enc.EndRecord(); err != nil {
			return err
		}
	}
	return nil
}
