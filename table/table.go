// Package table holds analysis results as ordered float64 columns.
//
// It is intentionally tiny: the data tables and simulation results produced
// by this library are rectangular, all-numeric and append-only, so a full
// dataframe abstraction is not needed. A Table preserves column order,
// supports by-name column extraction and writes itself out as CSV.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrNoColumns indicates New was called with an empty column list.
	ErrNoColumns = errors.New("table: at least one column required")
	// ErrDuplicateColumn indicates two columns share a name.
	ErrDuplicateColumn = errors.New("table: duplicate column name")
	// ErrWidthMismatch indicates an appended row does not match the column count.
	ErrWidthMismatch = errors.New("table: row width does not match column count")
	// ErrUnknownColumn indicates a column name the table does not contain.
	ErrUnknownColumn = errors.New("table: unknown column")
	// ErrRowRange indicates a row index outside [0, Len).
	ErrRowRange = errors.New("table: row index out of range")
)

// Table is a rectangular, append-only collection of named float64 columns.
// The zero value is not usable; construct with New.
type Table struct {
	cols  []string
	index map[string]int
	rows  [][]float64
}

// New creates an empty table with the given column names, preserving order.
//
// Errors:
//   - ErrNoColumns       — cols is empty.
//   - ErrDuplicateColumn — a name repeats.
func New(cols []string) (*Table, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	t := &Table{
		cols:  make([]string, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	copy(t.cols, cols)
	for i, name := range cols {
		if _, dup := t.index[name]; dup {
			return nil, ErrDuplicateColumn
		}
		t.index[name] = i
	}

	return t, nil
}

// AppendRow appends one row of values, one per column, in column order.
// The slice is copied; the caller may reuse it.
func (t *Table) AppendRow(vals []float64) error {
	if len(vals) != len(t.cols) {
		return ErrWidthMismatch
	}
	row := make([]float64, len(vals))
	copy(row, vals)
	t.rows = append(t.rows, row)

	return nil
}

// Len reports the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.cols))
	copy(cols, t.cols)

	return cols
}

// Column returns a copy of the named column's values.
func (t *Table) Column(name string) ([]float64, error) {
	idx, ok := t.index[name]
	if !ok {
		return nil, ErrUnknownColumn
	}
	vals := make([]float64, len(t.rows))
	for i, row := range t.rows {
		vals[i] = row[idx]
	}

	return vals, nil
}

// At returns the value at the given row in the named column.
func (t *Table) At(row int, name string) (float64, error) {
	if row < 0 || row >= len(t.rows) {
		return 0, ErrRowRange
	}
	idx, ok := t.index[name]
	if !ok {
		return 0, ErrUnknownColumn
	}

	return t.rows[row][idx], nil
}

// WriteCSV writes the table as CSV: a header row of column names followed
// by one record per row. Floats are rendered with strconv 'g' formatting,
// so integral values stay clean and round trips stay lossless.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.cols); err != nil {
		return fmt.Errorf("table: write header: %w", err)
	}
	record := make([]string, len(t.cols))
	for _, row := range t.rows {
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("table: write row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// previewRows caps the number of rows rendered by String.
const previewRows = 10

// String renders a short aligned preview: the header and up to ten rows.
func (t *Table) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.cols, "\t"))
	b.WriteByte('\n')

	n := len(t.rows)
	if n > previewRows {
		n = previewRows
	}
	for _, row := range t.rows[:n] {
		for i, v := range row {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteByte('\n')
	}
	if len(t.rows) > previewRows {
		fmt.Fprintf(&b, "... %d more rows\n", len(t.rows)-previewRows)
	}

	return b.String()
}
