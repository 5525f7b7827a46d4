package usecase

import (
	"fmt"
	"strings"

	"bp_analytics/internal/domain/entities"
)

// Supervisory reference (sheet 1) column names, matched exactly after
// trimming.
const (
	colReferenceKey   = "CR"
	colBranch         = "SUCURSAL"
	colBankType       = "TIPO DE BANCA"
	colSegmentedBank  = "BCA SEGMENTADA"
	colZone           = "DZ"
	colSupervisorName = "SUPERVISOR"
)

// cleanReference normalizes the supervisory reference sheet: trimmed
// headers, numeric key coercion with silent drop of unparseable rows,
// first-occurrence-wins dedup by key.
func cleanReference(sheet entities.RawSheet) ([]entities.SupervisionRecord, error) {
	idx, err := indexColumns(sheet.Headers,
		colReferenceKey, colBranch, colBankType, colSegmentedBank, colZone, colSupervisorName)
	if err != nil {
		return nil, err
	}

	records := make([]entities.SupervisionRecord, 0, len(sheet.Rows))
	seen := make(map[int64]struct{}, len(sheet.Rows))
	for _, row := range sheet.Rows {
		key := parseNumericKey(cell(row, idx[colReferenceKey]))
		if key == nil {
			continue
		}
		if _, dup := seen[*key]; dup {
			continue
		}
		seen[*key] = struct{}{}
		records = append(records, entities.SupervisionRecord{
			Key:           *key,
			Branch:        cell(row, idx[colBranch]),
			BankType:      cell(row, idx[colBankType]),
			SegmentedBank: cell(row, idx[colSegmentedBank]),
			Zone:          cell(row, idx[colZone]),
			Supervisor:    cell(row, idx[colSupervisorName]),
		})
	}
	return records, nil
}

// indexColumns resolves trimmed header names to column indexes; any
// name absent from the sheet aborts the ingest.
func indexColumns(headers []string, names ...string) (map[string]int, error) {
	byName := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if _, ok := byName[h]; !ok {
			byName[h] = i
		}
	}
	idx := make(map[string]int, len(names))
	for _, name := range names {
		i, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		idx[name] = i
	}
	return idx, nil
}

// cell reads a trimmed value with tolerance for ragged rows.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
