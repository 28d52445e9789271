package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mohammedkshemsu/firewall-log-analyzer/internal/model"
)

// Renderer writes a record collection to an output stream.
type Renderer interface {
	Render(records model.Collection) error
}

// ---------------------------------------------------------------------------
// Table Renderer (colorized terminal output)
// ---------------------------------------------------------------------------

var (
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))  // cyan bold
	styleBlocked = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // red bold
	styleAllowed = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))             // green
	styleCell    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))            // light gray
)

// TableRenderer prints records as an aligned table, one row per record,
// with a header row of field names.
type TableRenderer struct {
	w io.Writer
}

// NewTableRenderer returns a Renderer that writes a colorized table to stdout.
func NewTableRenderer() *TableRenderer {
	return &TableRenderer{w: os.Stdout}
}

func (r *TableRenderer) Render(records model.Collection) error {
	widths := columnWidths(records)

	// Header row.
	var header []string
	for i, name := range model.FieldNames {
		header = append(header, styleHeader.Render(pad(name, widths[i])))
	}
	if _, err := fmt.Fprintln(r.w, strings.Join(header, "  ")); err != nil {
		return err
	}

	// Record rows.
	for _, rec := range records {
		var row []string
		for i, name := range model.FieldNames {
			v, _ := rec.Field(name)
			row = append(row, styleValue(name, v).Render(pad(v, widths[i])))
		}
		if _, err := fmt.Fprintln(r.w, strings.Join(row, "  ")); err != nil {
			return err
		}
	}

	return nil
}

// columnWidths sizes each column to its widest value, at minimum the header.
func columnWidths(records model.Collection) []int {
	widths := make([]int, len(model.FieldNames))
	for i, name := range model.FieldNames {
		widths[i] = len(name)
	}
	for _, rec := range records {
		for i, name := range model.FieldNames {
			v, _ := rec.Field(name)
			if len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}
	return widths
}

// styleValue picks the cell style; actions get severity colors.
func styleValue(field, value string) lipgloss.Style {
	if field == "action" {
		switch value {
		case "BLOCKED":
			return styleBlocked
		case "ALLOWED":
			return styleAllowed
		}
	}
	return styleCell
}

// pad left-aligns v in a cell of the given width. Padding happens before
// styling so ANSI escapes don't skew the alignment.
func pad(v string, width int) string {
	return fmt.Sprintf("%-*s", width, v)
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints each record as a single JSON object per line.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes JSON lines to stdout.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(os.Stdout)}
}

func (r *JSONRenderer) Render(records model.Collection) error {
	for _, rec := range records {
		if err := r.enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
