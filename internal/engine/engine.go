// =============================================================================
// VR/VA Benefit Purchase Automation - Pipeline
// =============================================================================
//
// Run executes one full purchase computation: load the named sources,
// canonicalize their identifier and union columns, build the exclusion set
// and the lookup tables, consolidate the life-cycle records and price every
// retained employee.
//
// The run is single-threaded and batch-oriented: every dataset is fully
// materialized before computation starts, each record is computed
// independently, and output rows follow the filtered roster order for
// determinism. The only fatal condition is a missing or identifier-less
// roster; every other degradation is local and logged.
//
// =============================================================================

package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hrops/vrcalc/internal/config"
	"github.com/hrops/vrcalc/internal/dataset"
	"github.com/hrops/vrcalc/internal/normalize"
)

// Run computes the output rows for one target period. The returned error is
// non-nil only for the fatal roster precondition.
func Run(cfg *config.Config, period Period, loader SourceLoader) ([]OutputRow, Stats, error) {
	logrus.WithField("period", period.String()).Info("starting purchase run")

	roster := loader.Load(cfg.Sources.Active)
	vacation := loader.Load(cfg.Sources.Vacation)
	terminated := loader.Load(cfg.Sources.Terminated)
	admissions := loader.Load(cfg.Sources.Admissions)
	unionValues := loader.Load(cfg.Sources.UnionValues)
	unionDays := loader.Load(cfg.Sources.UnionDays)
	leave := loader.Load(cfg.Sources.Leave)
	interns := loader.Load(cfg.Sources.Interns)
	apprentices := loader.Load(cfg.Sources.Apprentices)
	overseas := loader.Load(cfg.Sources.Overseas)

	// Canonicalize identifiers everywhere an identifier can appear, and the
	// union column on the roster.
	for _, ds := range []*dataset.Dataset{&roster, &vacation, &terminated, &admissions, &leave, &interns, &apprentices, &overseas} {
		normalize.Identifier(ds)
	}
	normalize.Category(&roster)

	// The roster is the one hard precondition of the run.
	if roster.Empty() || !roster.HasColumn(normalize.IDColumn) {
		return nil, Stats{}, fmt.Errorf("roster %s is empty or lacks an identifier column", cfg.Sources.Active)
	}

	excluded := BuildExclusionSet(roster, cfg.Defaults.DirectorTerm, interns, apprentices, leave, overseas)

	daysTable := BuildDaysTable(unionDays, cfg.Defaults)
	valueTable := BuildValueTable(unionValues, cfg.Defaults)

	records := Consolidate(roster, excluded, vacation, terminated, admissions)
	logrus.WithField("records", len(records)).Info("roster consolidated after exclusions")

	calc := NewCalculator(daysTable, valueTable, period, cfg)

	rows := make([]OutputRow, 0, len(records))
	for _, rec := range records {
		ent := calc.Compute(rec)
		rows = append(rows, OutputRow{
			ID:           rec.ID,
			Admission:    rec.AdmissionDate,
			Union:        rec.Union,
			Period:       period.FirstDay(),
			Days:         ent.Days,
			DailyValue:   ent.DailyValue,
			Total:        ent.Total,
			EmployerCost: ent.EmployerCost,
			EmployeeDisc: ent.EmployeeDisc,
			Notes:        ent.Notes,
		})
	}

	stats := Stats{
		RosterRows:   roster.RowCount(),
		Excluded:     len(excluded),
		Records:      len(rows),
		DaysEntries:  daysTable.Len(),
		ValueEntries: valueTable.Len(),
	}
	return rows, stats, nil
}
