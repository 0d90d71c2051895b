// =============================================================================
// VR/VA Benefit Purchase Automation - Ledger Writer
// =============================================================================
//
// Writes the final purchase ledger as a single-sheet xlsx artifact. The
// column names and order are a compatibility contract with the benefits
// vendor; do not reorder or rename them.
//
// =============================================================================

package xlsxio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hrops/vrcalc/internal/engine"
)

// SheetName is the single sheet of the output artifact.
const SheetName = "VR Mensal"

// Headers is the exact output layout, in order.
var Headers = []string{
	"Matricula",
	"Admissão",
	"Sindicato do Colaborador",
	"Competência",
	"Dias",
	"VALOR DIÁRIO VR",
	"TOTAL",
	"Custo empresa",
	"Desconto profissional",
	"OBS GERAL",
}

// dateLayout is the cell format for the admission and period dates.
const dateLayout = "02/01/2006"

// WriteLedger persists the output rows to path.
func WriteLedger(path string, rows []engine.OutputRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, header := range Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, row := range rows {
		admission := ""
		if row.Admission != nil {
			admission = row.Admission.Format(dateLayout)
		}
		values := []interface{}{
			row.ID,
			admission,
			row.Union,
			row.Period.Format(dateLayout),
			row.Days,
			row.DailyValue.InexactFloat64(),
			row.Total.InexactFloat64(),
			row.EmployerCost.InexactFloat64(),
			row.EmployeeDisc.InexactFloat64(),
			row.Notes,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
