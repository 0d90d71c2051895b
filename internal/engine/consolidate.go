// =============================================================================
// VR/VA Benefit Purchase Automation - Record Consolidator
// =============================================================================
//
// Produces one enriched record per retained employee. The exclusion-filtered
// roster is the spine; vacation, termination and admission datasets are
// left-joined onto it by identifier. Every base record survives exactly
// once, in roster order. A join whose required column is absent from its
// source is skipped entirely - the record is simply not enriched for that
// category.
//
// Life-cycle cells are parsed here, at the point of extraction, so the
// calculator operates only on already-validated optional values. A cell
// that fails to parse leaves the field nil, which downstream means "event
// did not occur in scope".
//
// =============================================================================

package engine

import (
	"time"

	"github.com/hrops/vrcalc/internal/dataset"
	"github.com/hrops/vrcalc/internal/normalize"
)

// vacationJoin, terminationJoin and admissionJoin describe the auxiliary
// column fragments resolved against each source.
const (
	vacationDaysFragment    = "dias de f" // "DIAS DE FÉRIAS"
	terminationDateFragment = "demiss"    // "DATA DEMISSÃO"
	terminationNoteFragment = "comunicado"
	admissionFragment       = "admiss"
)

// Consolidate filters the roster by the exclusion set and enriches each
// retained employee with the life-cycle fields found in the auxiliary
// sources. Rows with an absent identifier are dropped.
func Consolidate(roster dataset.Dataset, excluded ExclusionSet, vacation, terminated, admissions dataset.Dataset) []Record {
	vacationByID := indexVacation(&vacation)
	terminationByID := indexTermination(&terminated)
	admissionByID := indexAdmission(&admissions)

	var records []Record
	for row := 0; row < roster.RowCount(); row++ {
		id, ok := dataset.ParseID(roster.Cell(row, normalize.IDColumn))
		if !ok || excluded.Contains(id) {
			continue
		}

		rec := Record{
			ID:    id,
			Union: roster.Cell(row, normalize.CategoryColumn),
		}
		if days, ok := vacationByID[id]; ok {
			d := days
			rec.VacationDays = &d
		}
		if term, ok := terminationByID[id]; ok {
			rec.TerminationDate = term.date
			rec.TerminationNotice = term.notice
		}
		if adm, ok := admissionByID[id]; ok {
			a := adm
			rec.AdmissionDate = &a
		}
		records = append(records, rec)
	}
	return records
}

// termination carries the joined termination pair. The notice may be
// present even when the date failed to parse.
type termination struct {
	date   *time.Time
	notice string
}

// indexVacation maps identifier to parsed vacation days. The join requires
// the vacation-days column; without it the whole join is skipped.
func indexVacation(ds *dataset.Dataset) map[int]int {
	out := make(map[int]int)
	if ds.Empty() || !ds.HasColumn(normalize.IDColumn) {
		return out
	}
	daysCol, ok := ds.FindColumn(vacationDaysFragment)
	if !ok {
		return out
	}
	for row := 0; row < ds.RowCount(); row++ {
		id, ok := dataset.ParseID(ds.Cell(row, normalize.IDColumn))
		if !ok {
			continue
		}
		days, ok := dataset.ParseInt(ds.Cell(row, daysCol))
		if !ok {
			continue
		}
		if _, seen := out[id]; !seen {
			out[id] = days
		}
	}
	return out
}

// indexTermination maps identifier to the termination date/notice pair.
// The date column is required for the join; the notice column is optional.
func indexTermination(ds *dataset.Dataset) map[int]termination {
	out := make(map[int]termination)
	if ds.Empty() || !ds.HasColumn(normalize.IDColumn) {
		return out
	}
	dateCol, ok := ds.FindColumn(terminationDateFragment)
	if !ok {
		return out
	}
	noticeCol, _ := ds.FindColumn(terminationNoteFragment)

	for row := 0; row < ds.RowCount(); row++ {
		id, ok := dataset.ParseID(ds.Cell(row, normalize.IDColumn))
		if !ok {
			continue
		}
		if _, seen := out[id]; seen {
			continue
		}
		t := termination{}
		if date, ok := dataset.ParseDate(ds.Cell(row, dateCol)); ok {
			t.date = &date
		}
		if noticeCol != "" {
			t.notice = ds.Cell(row, noticeCol)
		}
		out[id] = t
	}
	return out
}

// indexAdmission maps identifier to the parsed admission date.
func indexAdmission(ds *dataset.Dataset) map[int]time.Time {
	out := make(map[int]time.Time)
	if ds.Empty() || !ds.HasColumn(normalize.IDColumn) {
		return out
	}
	dateCol, ok := ds.FindColumn(admissionFragment)
	if !ok {
		return out
	}
	for row := 0; row < ds.RowCount(); row++ {
		id, ok := dataset.ParseID(ds.Cell(row, normalize.IDColumn))
		if !ok {
			continue
		}
		date, ok := dataset.ParseDate(ds.Cell(row, dateCol))
		if !ok {
			continue
		}
		if _, seen := out[id]; !seen {
			out[id] = date
		}
	}
	return out
}
