// =============================================================================
// VR/VA Benefit Purchase Automation - Lookup Resolver
// =============================================================================
//
// Builds the two parameter tables of a run from the human-maintained
// reference spreadsheets:
//
//   - working days by union ("Basediasuteis"): first column is the union
//     label, second the day count. The sheet usually opens with a textual
//     header-like row, so rows whose label looks like a header are skipped,
//     as are rows with non-integer day counts.
//
//   - daily value by region ("Basesindicatoxvalor"): the region and value
//     columns are located by name fragment with a positional fallback, and
//     rows with unparsable amounts are skipped.
//
// Both tables may come out empty; every consumer falls back to the
// configured constants. Lenient beats strict here - a malformed reference
// row must never abort the purchase run.
//
// =============================================================================

package engine

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/hrops/vrcalc/internal/config"
	"github.com/hrops/vrcalc/internal/dataset"
	"github.com/hrops/vrcalc/pkg/textutil"
)

// =============================================================================
// WORKING DAYS BY UNION
// =============================================================================

// DaysEntry is one union-label-to-days mapping. Entries keep the order they
// were read in; substring lookup honors that order.
type DaysEntry struct {
	Label string
	Days  int
}

// DaysTable maps free-text union labels to eligible working days.
type DaysTable struct {
	entries     []DaysEntry
	defaultDays int
}

// BuildDaysTable reads the working-days reference leniently. Header-like
// rows (label containing the word for union, or a day cell containing the
// word for days) and non-integer day counts are skipped.
func BuildDaysTable(ds dataset.Dataset, defaults config.Defaults) *DaysTable {
	table := &DaysTable{defaultDays: defaults.WorkingDays}
	if ds.Empty() {
		logrus.WithField("entries", 0).Info("working-days table built")
		return table
	}

	labelCol := 0
	daysCol := 0
	if len(ds.Columns) > 1 {
		daysCol = 1
	}

	for row := 0; row < ds.RowCount(); row++ {
		label := ds.CellAt(row, labelCol)
		rawDays := ds.CellAt(row, daysCol)
		if label == "" || textutil.ContainsFold(label, "SINDIC") || textutil.ContainsFold(rawDays, "DIAS") {
			continue
		}
		days, ok := dataset.ParseInt(rawDays)
		if !ok {
			continue
		}
		table.entries = append(table.entries, DaysEntry{Label: label, Days: days})
	}

	logrus.WithField("entries", len(table.entries)).Info("working-days table built")
	return table
}

// Len returns the number of mapped unions.
func (t *DaysTable) Len() int {
	return len(t.entries)
}

// Lookup returns the working days for the first table key that is a
// substring of the union label, in construction order, or the configured
// default when none matches.
func (t *DaysTable) Lookup(union string) int {
	for _, e := range t.entries {
		if textutil.ContainsFold(union, e.Label) {
			return e.Days
		}
	}
	return t.defaultDays
}

// =============================================================================
// DAILY VALUE BY REGION
// =============================================================================

// region is one of the known benefit regions, matched against the union
// label via a list of folded tokens.
type region struct {
	name   string
	tokens []string
}

// knownRegions are checked in order; the first token hit wins. Everything
// else falls to the default daily value.
var knownRegions = []region{
	{name: "São Paulo", tokens: []string{"SAO PAULO", "SP"}},
	{name: "Rio de Janeiro", tokens: []string{"RIO DE JANEIRO", "RJ"}},
	{name: "Rio Grande do Sul", tokens: []string{"RIO GRANDE DO SUL", "RS"}},
	{name: "Paraná", tokens: []string{"PARANA", "PR", "CURITIBA"}},
}

// ValueTable maps regions to the daily benefit value. Amounts read from the
// reference sheet win; the configured per-region fallbacks cover the rest.
type ValueTable struct {
	amounts  map[string]decimal.Decimal // keyed by folded region label
	defaults config.Defaults
}

// BuildValueTable reads the region/value reference leniently. The region
// column is the one whose name contains "ESTADO" and the value column the
// one containing "VALOR", falling back to the first and second columns.
// Rows with an empty region or unparsable amount are skipped.
func BuildValueTable(ds dataset.Dataset, defaults config.Defaults) *ValueTable {
	table := &ValueTable{
		amounts:  make(map[string]decimal.Decimal),
		defaults: defaults,
	}
	if ds.Empty() {
		logrus.WithField("entries", 0).Info("region-value table built")
		return table
	}

	regionCol := ds.ColumnIndex(ds.FindColumnOr(0, "ESTADO"))
	valueFallback := 0
	if len(ds.Columns) > 1 {
		valueFallback = 1
	}
	valueCol := ds.ColumnIndex(ds.FindColumnOr(valueFallback, "VALOR"))

	for row := 0; row < ds.RowCount(); row++ {
		regionLabel := ds.CellAt(row, regionCol)
		if regionLabel == "" {
			continue
		}
		amount, ok := dataset.ParseMoney(ds.CellAt(row, valueCol))
		if !ok {
			continue
		}
		table.amounts[textutil.Fold(regionLabel)] = amount
	}

	logrus.WithField("entries", len(table.amounts)).Info("region-value table built")
	return table
}

// Len returns the number of mapped regions.
func (t *ValueTable) Len() int {
	return len(t.amounts)
}

// Lookup classifies the union label into one of the known regions and
// returns that region's daily value, falling back to the configured
// per-region constant when the reference sheet lacks it. Labels matching no
// region get the default daily value.
func (t *ValueTable) Lookup(union string) decimal.Decimal {
	folded := textutil.Fold(union)
	for _, r := range knownRegions {
		for _, token := range r.tokens {
			if !strings.Contains(folded, token) {
				continue
			}
			if amount, ok := t.amounts[textutil.Fold(r.name)]; ok {
				return amount
			}
			return t.regionFallback(r.name)
		}
	}
	if amount, ok := t.amounts["DEFAULT"]; ok {
		return amount
	}
	return decimal.NewFromFloat(t.defaults.DailyValue)
}

// regionFallback resolves the configured fallback for a region, matching
// the configured key accent-insensitively.
func (t *ValueTable) regionFallback(name string) decimal.Decimal {
	for key, v := range t.defaults.RegionValues {
		if textutil.EqualFold(key, name) {
			return decimal.NewFromFloat(v)
		}
	}
	return decimal.NewFromFloat(t.defaults.DailyValue)
}
