package engine

import (
	"fmt"
	"strings"

	"github.com/cabewaldrop/tinytable/internal/row"
)

// Result represents the outcome of executing a statement.
type Result struct {
	Columns []string
	Rows    [][]string
	Message string
}

// selectColumns is the fixed schema's column set.
var selectColumns = []string{"id", "username", "email"}

// newSelectResult builds a Result grid from a full scan.
func newSelectResult(rows []row.Row) *Result {
	grid := make([][]string, len(rows))
	for i, r := range rows {
		grid[i] = []string{fmt.Sprintf("%d", r.ID), r.Username, r.Email}
	}
	return &Result{
		Columns: selectColumns,
		Rows:    grid,
	}
}

// String formats the result for display in the REPL.
func (r *Result) String() string {
	if r.Message != "" {
		return r.Message
	}

	if len(r.Rows) == 0 {
		return "(no rows)"
	}

	var sb strings.Builder

	// Calculate column widths
	widths := make([]int, len(r.Columns))
	for i, col := range r.Columns {
		widths[i] = len(col)
	}
	for _, rw := range r.Rows {
		for i, val := range rw {
			if len(val) > widths[i] {
				widths[i] = len(val)
			}
		}
	}

	separator := func() {
		sb.WriteString("+")
		for _, w := range widths {
			sb.WriteString(strings.Repeat("-", w+2))
			sb.WriteString("+")
		}
		sb.WriteString("\n")
	}

	// Header
	separator()
	sb.WriteString("|")
	for i, col := range r.Columns {
		sb.WriteString(fmt.Sprintf(" %-*s |", widths[i], col))
	}
	sb.WriteString("\n")
	separator()

	// Rows
	for _, rw := range r.Rows {
		sb.WriteString("|")
		for i, val := range rw {
			sb.WriteString(fmt.Sprintf(" %-*s |", widths[i], val))
		}
		sb.WriteString("\n")
	}

	// Footer
	separator()
	sb.WriteString(fmt.Sprintf("(%d rows)\n", len(r.Rows)))

	return sb.String()
}
