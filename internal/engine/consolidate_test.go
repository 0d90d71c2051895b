package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrops/vrcalc/internal/dataset"
	"github.com/hrops/vrcalc/internal/engine"
)

func testRoster() dataset.Dataset {
	return dataset.Dataset{
		Columns: []string{"MATRICULA", "Sindicato"},
		Rows: [][]string{
			{"1", "SINDICATO SP"},
			{"2", "SINDICATO RJ"},
			{"3", "SINDICATO RS"},
			{"", "SINDICATO PR"}, // absent identifier is dropped
		},
	}
}

func TestConsolidateLeftJoin(t *testing.T) {
	vacation := dataset.Dataset{
		Columns: []string{"MATRICULA", "DIAS DE FÉRIAS"},
		Rows: [][]string{
			{"1", "10"},
			{"2", "muitos"}, // unparsable days leave the field absent
			{"99", "5"},     // not in the roster, ignored by the left join
		},
	}
	terminated := dataset.Dataset{
		Columns: []string{"MATRICULA", "DATA DEMISSÃO", "COMUNICADO DE DESLIGAMENTO"},
		Rows:    [][]string{{"2", "2025-05-20", "OK"}},
	}
	admissions := dataset.Dataset{
		Columns: []string{"MATRICULA", "Admissão"},
		Rows:    [][]string{{"3", "2025-05-05"}},
	}

	records := engine.Consolidate(testRoster(), engine.ExclusionSet{}, vacation, terminated, admissions)

	require.Len(t, records, 3, "every base record survives exactly once, absent ids dropped")
	assert.Equal(t, []int{1, 2, 3}, []int{records[0].ID, records[1].ID, records[2].ID}, "roster order preserved")

	require.NotNil(t, records[0].VacationDays)
	assert.Equal(t, 10, *records[0].VacationDays)
	assert.Nil(t, records[1].VacationDays)

	require.NotNil(t, records[1].TerminationDate)
	assert.Equal(t, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), *records[1].TerminationDate)
	assert.Equal(t, "OK", records[1].TerminationNotice)
	assert.Nil(t, records[0].TerminationDate)

	require.NotNil(t, records[2].AdmissionDate)
	assert.Equal(t, time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC), *records[2].AdmissionDate)
}

func TestConsolidateFiltersExclusions(t *testing.T) {
	excluded := engine.ExclusionSet{2: {}}

	records := engine.Consolidate(testRoster(), excluded,
		dataset.Dataset{}, dataset.Dataset{}, dataset.Dataset{})

	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, 3, records[1].ID)
}

func TestConsolidateSkipsJoinWithoutRequiredColumn(t *testing.T) {
	// The vacation source exists but lacks the vacation-days column, so the
	// whole join is skipped rather than raising.
	vacation := dataset.Dataset{
		Columns: []string{"MATRICULA", "PERIODO"},
		Rows:    [][]string{{"1", "maio"}},
	}

	records := engine.Consolidate(testRoster(), engine.ExclusionSet{},
		vacation, dataset.Dataset{}, dataset.Dataset{})

	require.Len(t, records, 3)
	for _, rec := range records {
		assert.Nil(t, rec.VacationDays)
	}
}

func TestConsolidateFirstAuxiliaryMatchWins(t *testing.T) {
	vacation := dataset.Dataset{
		Columns: []string{"MATRICULA", "DIAS DE FÉRIAS"},
		Rows: [][]string{
			{"1", "10"},
			{"1", "20"},
		},
	}

	records := engine.Consolidate(testRoster(), engine.ExclusionSet{},
		vacation, dataset.Dataset{}, dataset.Dataset{})

	require.NotNil(t, records[0].VacationDays)
	assert.Equal(t, 10, *records[0].VacationDays)
}
