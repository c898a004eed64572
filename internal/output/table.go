// =============================================================================
// internal/output/table.go - Column-aligned table rendering
// =============================================================================
package output

import (
	"fmt"
	"io"
	"strings"
)

// Table accumulates rows and renders them with aligned columns.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
	}
	return &Table{headers: headers, widths: widths}
}

// AddRow appends one row; missing cells render empty.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	for i, cell := range row {
		if len(cell) > t.widths[i] {
			t.widths[i] = len(cell)
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the table with a header separator line.
func (t *Table) Render(writer io.Writer) error {
	if len(t.headers) == 0 {
		return nil
	}
	if err := t.renderRow(writer, t.headers); err != nil {
		return err
	}

	separators := make([]string, len(t.headers))
	for i, width := range t.widths {
		separators[i] = strings.Repeat("-", width)
	}
	if err := t.renderRow(writer, separators); err != nil {
		return err
	}

	for _, row := range t.rows {
		if err := t.renderRow(writer, row); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) renderRow(writer io.Writer, cells []string) error {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = fmt.Sprintf("%-*s", t.widths[i], cell)
	}
	_, err := fmt.Fprintln(writer, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}
