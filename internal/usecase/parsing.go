package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Layouts observed in BP exports. Tried in order after the Excel-serial
// path; first hit wins.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"2/1/06 15:04",
	"01-02-06",
	time.RFC3339,
}

// parseDate turns a cell into a timestamp, or nil when it does not
// parse. Numeric cells are treated as Excel date serials.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return &t
		}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// parseAmount reads a monetary cell with thousands-comma and currency
// tolerance. Unparseable cells yield zero, matching the permissive
// upstream behavior.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseNumericKey coerces a cell to an integer key, nil when it fails.
// Fractional representations like "1001.0" resolve to 1001.
func parseNumericKey(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	k := int64(v)
	return &k
}

// daysBetween computes the whole-day difference between two lifecycle
// timestamps. Either side missing yields nil, never zero.
func daysBetween(from, to *time.Time) *int {
	if from == nil || to == nil {
		return nil
	}
	d := int(to.Sub(*from).Hours() / 24)
	return &d
}
