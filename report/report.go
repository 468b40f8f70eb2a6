// Package report holds the per-row error list shown above the grid.
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
)

// Separator joins the messages of one row.
const Separator = " | "

// RowError is the combined message of one invalid row. Row is 1-based.
type RowError struct {
	Row     int    `yaml:"row" json:"row"`
	Message string `yaml:"message" json:"message"`
}

// Report lists invalid rows in ascending row order, one entry per row.
// It is replaced wholesale on every validation pass.
type Report []RowError

// Join combines the messages of one row in order.
func Join(msgs []string) string {
	return strings.Join(msgs, Separator)
}

// Len returns the number of invalid rows.
func (r Report) Len() int {
	return len(r)
}

// Equal reports whether both reports list the same entries.
func (r Report) Equal(other Report) bool {
	return slices.Equal(r, other)
}

// ForRow returns the entry of the 1-based row n.
func (r Report) ForRow(n int) (RowError, bool) {
	i, ok := slices.BinarySearchFunc(r, n, func(e RowError, row int) int {
		return e.Row - row
	})
	if !ok {
		return RowError{}, false
	}

	return r[i], true
}

// Clone returns a copy that shares no storage with r.
func (r Report) Clone() Report {
	if r == nil {
		return nil
	}

	return slices.Clone(r)
}

// WriteTable prints the report as a two-column table.
func (r Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "ROW\tMESSAGE"); err != nil {
		return err
	}

	for _, e := range r {
		if _, err := fmt.Fprintf(tw, "%d\t%s\n", e.Row, e.Message); err != nil {
			return err
		}
	}

	return tw.Flush()
}
