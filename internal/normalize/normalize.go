// =============================================================================
// VR/VA Benefit Purchase Automation - Field Normalizer
// =============================================================================
//
// Each source spreadsheet labels the employee identifier and the union
// column differently ("MATRICULA", "Matrícula", "Cadastro", "Sindicato do
// Colaborador", ...). The normalizer canonicalizes those columns in place so
// every later stage can join and look up by a single name. It never fails:
// when no column matches, the dataset is left untouched.
//
// =============================================================================

package normalize

import (
	"strconv"

	"github.com/hrops/vrcalc/internal/dataset"
)

// Canonical column names every downstream stage relies on.
const (
	IDColumn       = "MATRICULA"
	CategoryColumn = "Sindicato"
)

// identifierFragments are the header fragments recognized as identifier
// columns across the sources. "cadastro" covers the overseas base, which
// labels the identifier that way.
var identifierFragments = []string{"matric", "cadastro"}

// Identifier renames the first identifier-like column to the canonical name
// and coerces its cells to integer form. Cells that cannot be coerced are
// blanked, making the identifier absent for that row; absent identifiers
// are dropped from every downstream join.
func Identifier(ds *dataset.Dataset) {
	if ds.Empty() {
		return
	}
	if !ds.HasColumn(IDColumn) {
		name, ok := ds.FindColumn(identifierFragments...)
		if !ok {
			return
		}
		ds.RenameColumn(name, IDColumn)
	}
	for row := 0; row < ds.RowCount(); row++ {
		raw := ds.Cell(row, IDColumn)
		if raw == "" {
			continue
		}
		if id, ok := dataset.ParseID(raw); ok {
			ds.SetCell(row, IDColumn, strconv.Itoa(id))
		} else {
			ds.SetCell(row, IDColumn, "")
		}
	}
}

// Category renames the first union-like column to the canonical name.
func Category(ds *dataset.Dataset) {
	if ds.Empty() || ds.HasColumn(CategoryColumn) {
		return
	}
	if name, ok := ds.FindColumn("sind"); ok {
		ds.RenameColumn(name, CategoryColumn)
	}
}
