package engine_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hrops/vrcalc/internal/config"
	"github.com/hrops/vrcalc/internal/dataset"
	"github.com/hrops/vrcalc/internal/engine"
)

// may2025 is the target period used throughout the calculator tests.
var may2025 = engine.Period{Year: 2025, Month: time.May}

func newCalculator(t *testing.T) *engine.Calculator {
	t.Helper()
	cfg := config.Default()
	days := engine.BuildDaysTable(dataset.Dataset{}, cfg.Defaults)
	values := engine.BuildValueTable(dataset.Dataset{}, cfg.Defaults)
	return engine.NewCalculator(days, values, may2025, cfg)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func intPtr(n int) *int { return &n }

func TestComputeSaoPauloBaseline(t *testing.T) {
	// GIVEN: base days 22 (default), São Paulo union, admission in a prior month
	// WHEN: no vacation or termination applies
	// THEN: 22 days at 37.50 -> total 825.00, split 660.00 / 165.00
	calc := newCalculator(t)

	ent := calc.Compute(engine.Record{
		ID:            1,
		Union:         "SINDICATO SÃO PAULO",
		AdmissionDate: datePtr(2025, time.April, 10),
	})

	assert.Equal(t, 22, ent.Days)
	assert.Equal(t, "37.5", ent.DailyValue.String())
	assert.Equal(t, "825", ent.Total.String())
	assert.Equal(t, "660", ent.EmployerCost.String())
	assert.Equal(t, "165", ent.EmployeeDisc.String())
	assert.Empty(t, ent.Notes, "out-of-period admission leaves no observation")
}

func TestComputeVacationDeduction(t *testing.T) {
	calc := newCalculator(t)

	ent := calc.Compute(engine.Record{
		ID:           1,
		Union:        "SINDICATO RJ",
		VacationDays: intPtr(10),
	})

	assert.Equal(t, 12, ent.Days)
	assert.Equal(t, "Férias: -10", ent.Notes)
}

func TestComputeTerminationBeforeMidMonthWithNotice(t *testing.T) {
	// Termination day <= 15 with affirmative notice zeroes the benefit,
	// regardless of base days.
	calc := newCalculator(t)

	ent := calc.Compute(engine.Record{
		ID:                1,
		Union:             "SINDICATO SP",
		TerminationDate:   datePtr(2025, time.May, 10),
		TerminationNotice: " ok ",
	})

	assert.Equal(t, 0, ent.Days)
	assert.Equal(t, "0", ent.Total.String())
	assert.Equal(t, "Desligado até dia 15 - sem benefício", ent.Notes)
}

func TestComputeTerminationAfterMidMonthProrates(t *testing.T) {
	// Termination on the 20th, notice not affirmative:
	// proration = floor(22 * 20/30) = 14, days = min(22, 14) = 14.
	calc := newCalculator(t)

	ent := calc.Compute(engine.Record{
		ID:                1,
		Union:             "SINDICATO RJ",
		TerminationDate:   datePtr(2025, time.May, 20),
		TerminationNotice: "PENDENTE",
	})

	assert.Equal(t, 14, ent.Days)
	assert.Equal(t, "Desligado dia 20 - proporcional", ent.Notes)
}

func TestComputeTerminationBeforeMidMonthWithoutNotice(t *testing.T) {
	// A termination on or before the 15th with a non-affirmative notice
	// falls through with no adjustment. This mirrors the business rule as
	// practiced; see the calculator's header note before changing it.
	calc := newCalculator(t)

	ent := calc.Compute(engine.Record{
		ID:                1,
		Union:             "SINDICATO RJ",
		TerminationDate:   datePtr(2025, time.May, 10),
		TerminationNotice: "PENDENTE",
	})

	assert.Equal(t, 22, ent.Days)
	assert.Empty(t, ent.Notes)
}

func TestComputeTerminationOutsidePeriodIgnored(t *testing.T) {
	calc := newCalculator(t)

	ent := calc.Compute(engine.Record{
		ID:                1,
		Union:             "SINDICATO RJ",
		TerminationDate:   datePtr(2025, time.April, 10),
		TerminationNotice: "OK",
	})

	assert.Equal(t, 22, ent.Days)
	assert.Empty(t, ent.Notes)
}

func TestComputeAdmissionDayOneNoReduction(t *testing.T) {
	// Admission on day 1 -> proration factor (30-0)/30 = 1.0.
	calc := newCalculator(t)

	ent := calc.Compute(engine.Record{
		ID:            1,
		Union:         "SINDICATO RJ",
		AdmissionDate: datePtr(2025, time.May, 1),
	})

	assert.Equal(t, 22, ent.Days)
	assert.Equal(t, "Admissão dia 1 - proporcional", ent.Notes)
}

func TestComputeAdmissionMidMonthProrates(t *testing.T) {
	// Admission on the 16th: floor(22 * (30-15)/30) = 11.
	calc := newCalculator(t)

	ent := calc.Compute(engine.Record{
		ID:            1,
		Union:         "SINDICATO RJ",
		AdmissionDate: datePtr(2025, time.May, 16),
	})

	assert.Equal(t, 11, ent.Days)
	assert.Equal(t, "Admissão dia 16 - proporcional", ent.Notes)
}

func TestComputeAdmissionUsesPreVacationBase(t *testing.T) {
	// The admission proration numerator is the pre-vacation base (22), not
	// the post-vacation running value: floor(22*(30-15)/30) = 11, then
	// min(22-5, 11) = 11.
	calc := newCalculator(t)

	ent := calc.Compute(engine.Record{
		ID:            1,
		Union:         "SINDICATO RJ",
		VacationDays:  intPtr(5),
		AdmissionDate: datePtr(2025, time.May, 16),
	})

	assert.Equal(t, 11, ent.Days)
	assert.Equal(t, "Férias: -5; Admissão dia 16 - proporcional", ent.Notes)
}

func TestComputeClampsNegativeDays(t *testing.T) {
	calc := newCalculator(t)

	ent := calc.Compute(engine.Record{
		ID:           1,
		Union:        "SINDICATO RJ",
		VacationDays: intPtr(30),
	})

	assert.Equal(t, 0, ent.Days)
	assert.Equal(t, "0", ent.Total.String())
}

func TestComputeLayeredAdjustmentsTakeMinimum(t *testing.T) {
	// Vacation first (22-4=18), then termination day 20 prorates to 14,
	// min(18, 14) = 14.
	calc := newCalculator(t)

	ent := calc.Compute(engine.Record{
		ID:                1,
		Union:             "SINDICATO RJ",
		VacationDays:      intPtr(4),
		TerminationDate:   datePtr(2025, time.May, 20),
		TerminationNotice: "",
	})

	assert.Equal(t, 14, ent.Days)
	assert.Equal(t, "Férias: -4; Desligado dia 20 - proporcional", ent.Notes)
}

func TestComputeMonotonicReductionAndSplit(t *testing.T) {
	// Adjustments never lift days above the base, and the employer and
	// employee shares always recompose the total within a cent.
	calc := newCalculator(t)

	records := []engine.Record{
		{ID: 1, Union: "SINDICATO SP"},
		{ID: 2, Union: "SINDICATO RJ", VacationDays: intPtr(7)},
		{ID: 3, Union: "SINDICATO RS", TerminationDate: datePtr(2025, time.May, 28), TerminationNotice: "OK"},
		{ID: 4, Union: "SITEPD CURITIBA", AdmissionDate: datePtr(2025, time.May, 11)},
		{ID: 5, Union: ""},
	}

	for _, rec := range records {
		ent := calc.Compute(rec)

		assert.GreaterOrEqual(t, ent.Days, 0)
		assert.LessOrEqual(t, ent.Days, 22)

		recomposed := ent.EmployerCost.Add(ent.EmployeeDisc)
		diff := recomposed.Sub(ent.Total).Abs()
		assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)),
			"id %d: split %s vs total %s", rec.ID, recomposed, ent.Total)
	}
}
