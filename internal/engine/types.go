// =============================================================================
// VR/VA Benefit Purchase Automation - Engine Types
// =============================================================================
//
// Shared types for the entitlement pipeline: the target period, the enriched
// per-employee record produced by consolidation, the computed entitlement,
// and the final output row. Output rows are immutable once produced.
//
// =============================================================================

package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrops/vrcalc/internal/dataset"
)

// Period is the single calendar month entitlement is computed for.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses a YYYY-MM period string.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q (want YYYY-MM): %w", s, err)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// Contains reports whether a date falls inside the period's month.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// FirstDay returns the first day of the period as a date.
func (p Period) FirstDay() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// String formats the period as YYYY-MM.
func (p Period) String() string {
	return p.FirstDay().Format("2006-01")
}

// Record is one eligible employee enriched with the life-cycle fields the
// calculator needs. Optional fields are nil when the event is out of scope
// or its cell failed to parse; presence does not guarantee the event falls
// inside the target period - the calculator re-checks.
type Record struct {
	ID    int
	Union string

	// VacationDays is the vacation-days-taken value, when present and parsable.
	VacationDays *int

	// TerminationDate and TerminationNotice come from the terminations source.
	TerminationDate   *time.Time
	TerminationNotice string

	// AdmissionDate comes from the admissions source.
	AdmissionDate *time.Time
}

// Entitlement is the computed benefit for one employee.
type Entitlement struct {
	Days         int
	DailyValue   decimal.Decimal
	Total        decimal.Decimal
	EmployerCost decimal.Decimal
	EmployeeDisc decimal.Decimal
	Notes        string
}

// OutputRow is one row of the final purchase ledger, joined back to the
// employee's identifier, union and admission fields plus the target period.
type OutputRow struct {
	ID           int
	Admission    *time.Time
	Union        string
	Period       time.Time
	Days         int
	DailyValue   decimal.Decimal
	Total        decimal.Decimal
	EmployerCost decimal.Decimal
	EmployeeDisc decimal.Decimal
	Notes        string
}

// SourceLoader is the contract the engine expects from the spreadsheet
// loader: given a source name, a dataset, or an empty one when unavailable.
type SourceLoader interface {
	Load(name string) dataset.Dataset
}

// Stats summarizes one pipeline run for reporting.
type Stats struct {
	RosterRows   int
	Excluded     int
	Records      int
	DaysEntries  int
	ValueEntries int
}
