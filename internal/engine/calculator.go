// =============================================================================
// VR/VA Benefit Purchase Automation - Entitlement Calculator
// =============================================================================
//
// The rule engine. For each consolidated record it resolves the base
// eligible days for the union, applies the layered life-cycle adjustments,
// and prices the result:
//
//   1. base days from the working-days table (substring lookup, default 22)
//   2. vacation deduction
//   3. termination rule, only for terminations inside the target period:
//        day <= 15 and affirmative notice  -> zero days
//        day >  15                         -> min(days, floor(base*day/30))
//      A termination on or before the 15th with a non-affirmative notice
//      applies no adjustment at all. That gap is a faithful carry-over of
//      the business rule as practiced; do not close it here without a
//      product-owner decision.
//   4. admission proration, only for admissions inside the target period:
//        min(days, max(0, floor(base*(30-(day-1))/30)))
//      Both prorations divide by 30 regardless of the month's real length,
//      and both use the pre-vacation base as numerator. Output parity with
//      the historical process depends on keeping these formulas exactly.
//   5. clamp to a non-negative day count
//   6. daily value by region, total and the 80/20 employer/employee split
//
// Every adjustment leaves a human-readable observation; the observations
// are joined with "; " into the ledger's OBS GERAL field.
//
// A malformed field never fails a record here. Consolidation already
// reduced unparsable cells to absent values, so each rule simply does not
// apply.
//
// =============================================================================

package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hrops/vrcalc/internal/config"
	"github.com/hrops/vrcalc/pkg/textutil"
)

// prorationBase is the fixed divisor of both proration formulas.
const prorationBase = 30

// Calculator computes one employee's entitlement per call. It is read-only
// after construction and safe to share across records.
type Calculator struct {
	days     *DaysTable
	values   *ValueTable
	period   Period
	split    config.Split
	defaults config.Defaults
}

// NewCalculator wires the lookup tables and configured constants for a run.
func NewCalculator(days *DaysTable, values *ValueTable, period Period, cfg *config.Config) *Calculator {
	return &Calculator{
		days:     days,
		values:   values,
		period:   period,
		split:    cfg.Split,
		defaults: cfg.Defaults,
	}
}

// Compute applies the full rule chain to one record.
func (c *Calculator) Compute(rec Record) Entitlement {
	baseDays := c.days.Lookup(rec.Union)
	days := baseDays
	var obs []string

	// Vacation deduction.
	if rec.VacationDays != nil {
		days -= *rec.VacationDays
		obs = append(obs, fmt.Sprintf("Férias: -%d", *rec.VacationDays))
	}

	// Termination rule, restricted to the target period.
	if rec.TerminationDate != nil && c.period.Contains(*rec.TerminationDate) {
		day := rec.TerminationDate.Day()
		notice := textutil.EqualFold(rec.TerminationNotice, c.defaults.NoticeMarker)
		switch {
		case day <= 15 && notice:
			days = 0
			obs = append(obs, "Desligado até dia 15 - sem benefício")
		case day > 15:
			prorated := baseDays * day / prorationBase
			if prorated < days {
				days = prorated
			}
			obs = append(obs, fmt.Sprintf("Desligado dia %d - proporcional", day))
		}
	}

	// Admission proration, restricted to the target period. The numerator
	// is the pre-vacation base, not the running value.
	if rec.AdmissionDate != nil && c.period.Contains(*rec.AdmissionDate) {
		day := rec.AdmissionDate.Day()
		prorated := baseDays * (prorationBase - (day - 1)) / prorationBase
		if prorated < 0 {
			prorated = 0
		}
		if prorated < days {
			days = prorated
		}
		obs = append(obs, fmt.Sprintf("Admissão dia %d - proporcional", day))
	}

	if days < 0 {
		days = 0
	}

	dailyValue := c.values.Lookup(rec.Union)
	total := dailyValue.Mul(decimal.NewFromInt(int64(days))).Round(2)
	employer := total.Mul(decimal.NewFromFloat(c.split.Employer)).Round(2)
	employee := total.Mul(decimal.NewFromFloat(c.split.Employee)).Round(2)

	return Entitlement{
		Days:         days,
		DailyValue:   dailyValue,
		Total:        total,
		EmployerCost: employer,
		EmployeeDisc: employee,
		Notes:        strings.Join(obs, "; "),
	}
}
