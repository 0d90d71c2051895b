// =============================================================================
// VR/VA Benefit Purchase Automation - Dataset Module
// =============================================================================
//
// This module defines the rectangular dataset that every source spreadsheet
// is loaded into before any business meaning is attached. A Dataset is a
// header row plus string cells; all typing happens later through the
// parse-or-absent helpers in parse.go.
//
// COLUMN RESOLUTION:
//   Reference tables in this domain are produced by humans and carry
//   unstable column names. FindColumn implements a best-effort resolver:
//   it takes candidate name fragments and returns the first column whose
//   (accent- and case-folded) header contains any of them. Consumers that
//   need a positional fallback use FindColumnOr.
//
// =============================================================================

package dataset

import (
	"strings"

	"github.com/hrops/vrcalc/pkg/textutil"
)

// Dataset is a rectangular table of string cells with named columns.
// Column order is preserved from the source file; rows may be ragged and
// Cell access is bounds-safe.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether the dataset carries no usable data.
// A header-only dataset still counts as empty.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Columns) == 0 || len(d.Rows) == 0
}

// RowCount returns the number of data rows.
func (d *Dataset) RowCount() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// ColumnIndex returns the position of the named column, or -1 when absent.
// Matching is exact; use FindColumn for lenient resolution.
func (d *Dataset) ColumnIndex(name string) int {
	if d == nil {
		return -1
	}
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	return d.ColumnIndex(name) >= 0
}

// Cell returns the trimmed value at (row, column name). Out-of-range rows,
// ragged short rows and unknown columns all yield the empty string.
func (d *Dataset) Cell(row int, name string) string {
	return d.CellAt(row, d.ColumnIndex(name))
}

// CellAt returns the trimmed value at (row, column index), bounds-safe.
func (d *Dataset) CellAt(row, col int) string {
	if d == nil || col < 0 || row < 0 || row >= len(d.Rows) {
		return ""
	}
	r := d.Rows[row]
	if col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// SetCell overwrites the value at (row, column name). Rows shorter than the
// column position are padded first. Unknown columns are a no-op.
func (d *Dataset) SetCell(row int, name, value string) {
	col := d.ColumnIndex(name)
	if d == nil || col < 0 || row < 0 || row >= len(d.Rows) {
		return
	}
	for len(d.Rows[row]) <= col {
		d.Rows[row] = append(d.Rows[row], "")
	}
	d.Rows[row][col] = value
}

// RenameColumn renames the first column with the old name. Renaming is
// irreversible for the dataset instance; callers must not expect the
// original name afterward.
func (d *Dataset) RenameColumn(oldName, newName string) {
	if i := d.ColumnIndex(oldName); i >= 0 {
		d.Columns[i] = newName
	}
}

// FindColumn returns the name of the first column whose folded header
// contains any of the candidate fragments, in column order.
func (d *Dataset) FindColumn(fragments ...string) (string, bool) {
	if d == nil {
		return "", false
	}
	for _, c := range d.Columns {
		for _, frag := range fragments {
			if textutil.ContainsFold(c, frag) {
				return c, true
			}
		}
	}
	return "", false
}

// FindColumnOr resolves a column like FindColumn, falling back to the column
// at the given position when no fragment matches. An out-of-range fallback
// yields the empty string.
func (d *Dataset) FindColumnOr(fallback int, fragments ...string) string {
	if name, ok := d.FindColumn(fragments...); ok {
		return name
	}
	if d == nil || fallback < 0 || fallback >= len(d.Columns) {
		return ""
	}
	return d.Columns[fallback]
}
