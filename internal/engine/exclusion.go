// =============================================================================
// VR/VA Benefit Purchase Automation - Exclusion Resolver
// =============================================================================
//
// Builds the set of identifiers disqualified from the benefit. Four category
// sources contribute directly (interns, apprentices, leave of absence,
// overseas assignment) and one category is derived from the roster itself:
// director-level job titles. Membership is by identifier equality only; an
// identifier named by any source is excluded regardless of how many sources
// name it. Missing sources contribute nothing.
//
// =============================================================================

package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/hrops/vrcalc/internal/dataset"
	"github.com/hrops/vrcalc/internal/normalize"
	"github.com/hrops/vrcalc/pkg/textutil"
)

// ExclusionSet is a set of excluded employee identifiers.
type ExclusionSet map[int]struct{}

// Contains reports whether the identifier is excluded.
func (e ExclusionSet) Contains(id int) bool {
	_, ok := e[id]
	return ok
}

// BuildExclusionSet unions the identifiers of the four category sources and
// the roster's director-level rows. The final set size is logged for audit.
func BuildExclusionSet(roster dataset.Dataset, directorTerm string, categories ...dataset.Dataset) ExclusionSet {
	excluded := make(ExclusionSet)

	for _, ds := range categories {
		for _, id := range collectIDs(&ds) {
			excluded[id] = struct{}{}
		}
	}

	// Directors, detected on the roster's job-title column.
	if title, ok := roster.FindColumn("cargo"); ok && directorTerm != "" {
		for row := 0; row < roster.RowCount(); row++ {
			if !textutil.ContainsFold(roster.Cell(row, title), directorTerm) {
				continue
			}
			if id, ok := dataset.ParseID(roster.Cell(row, normalize.IDColumn)); ok {
				excluded[id] = struct{}{}
			}
		}
	}

	logrus.WithField("excluded", len(excluded)).Info("exclusion set built")
	return excluded
}

// collectIDs returns every non-absent identifier of a category source. The
// canonical column is expected after normalization; a source without one
// contributes nothing.
func collectIDs(ds *dataset.Dataset) []int {
	if ds.Empty() || !ds.HasColumn(normalize.IDColumn) {
		return nil
	}
	var ids []int
	for row := 0; row < ds.RowCount(); row++ {
		if id, ok := dataset.ParseID(ds.Cell(row, normalize.IDColumn)); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
