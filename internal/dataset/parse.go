// =============================================================================
// VR/VA Benefit Purchase Automation - Cell Parsing
// =============================================================================
//
// Parse-or-absent helpers for typed access to dataset cells. Source
// spreadsheets mix textual and numeric representations freely (identifiers
// exported as "1234.0", amounts with comma decimals, dates as dd/mm/yyyy or
// raw Excel serials), so every helper returns (value, ok) and never an
// error: an unparsable cell simply means the value is absent.
//
// =============================================================================

package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order by ParseDate. Brazilian day-first forms
// come before the ISO ones only where unambiguous.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02/01/2006",
	"02/01/2006 15:04:05",
	"02-01-2006",
}

// excelEpoch is the zero day of the 1900 date system used by xlsx files.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseID coerces a cell to an employee identifier. Plain integers and
// integral floats ("1234", "1234.0") are accepted; anything else is absent.
func ParseID(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f == math.Trunc(f) && !math.IsInf(f, 0) {
			return int(f), true
		}
	}
	return 0, false
}

// ParseInt coerces a cell to an integer, accepting integral float forms.
func ParseInt(s string) (int, bool) {
	return ParseID(s)
}

// ParseMoney coerces a cell to a currency amount. Both "37.5" and the
// Brazilian "1.234,56" form are accepted; an optional R$ prefix is dropped.
func ParseMoney(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	if strings.Contains(s, ",") {
		// Comma decimal: thousands dots first, then the decimal comma.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseDate coerces a cell to a calendar date. Known textual layouts are
// tried first; a bare number is treated as an Excel serial day.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	// Excel serial date (days since the 1900 epoch).
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 && f < 200000 {
		days := int(f)
		return excelEpoch.AddDate(0, 0, days), true
	}
	return time.Time{}, false
}
