package usecase

import (
	"fmt"
	"strings"

	"bp_analytics/internal/domain/entities"
)

// Work-order (sheet 0) column names, matched exactly after trimming.
// The provider column is the exception: its header varies between
// exports and is matched by substring.
const (
	colOrderID      = "Orden"
	colDeclaredType = "Tipo de orden"
	colCostCenter   = "Centro de coste"
	colUserStatus   = "Estatus de Usuario"
	colAmount       = "Importe"
	colAmountTax    = "Importe IVA"
	colShortText    = "Texto breve de la orden"
	colBranchName   = "Denominación"
	colLocationDesc = "Denominación de la ubicación técnica"
	colFaultText    = "Texto de avería"
	colCodeGroup    = "Grupo códigos"
	colCreatedAt    = "Fecha de creación"
	colAttendedAt   = "Fecha de atención"
	colCompletedAt  = "Fecha de realización"

	providerHeaderToken = "Proveedor"
)

// Cost-center prefixes stripped to expose the numeric key. The longer
// token must go first: stripping "MX" first would corrupt "MX11" codes.
var costCenterPrefixes = []string{"MX11", "MX"}

// cleanOrders normalizes the orders sheet: trimmed headers, provider
// column resolution, and a derived numeric join key per row. Rows with
// an underivable key are retained and simply never match in the join.
func cleanOrders(sheet entities.RawSheet) ([]entities.WorkOrder, error) {
	idx, err := indexColumns(sheet.Headers, colOrderID, colCostCenter, colUserStatus)
	if err != nil {
		return nil, err
	}

	providerIdx, err := providerColumn(sheet.Headers)
	if err != nil {
		return nil, err
	}

	opt := optionalColumns(sheet.Headers,
		colDeclaredType, colAmount, colAmountTax, colShortText, colBranchName,
		colLocationDesc, colFaultText, colCodeGroup, colCreatedAt, colAttendedAt, colCompletedAt)

	orders := make([]entities.WorkOrder, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		if emptyRow(row) {
			continue
		}
		orders = append(orders, entities.WorkOrder{
			OrderID:       cell(row, idx[colOrderID]),
			DeclaredType:  cell(row, opt[colDeclaredType]),
			Provider:      cell(row, providerIdx),
			CostCenter:    cell(row, idx[colCostCenter]),
			CostCenterKey: costCenterKey(cell(row, idx[colCostCenter])),
			UserStatus:    cell(row, idx[colUserStatus]),
			Amount:        parseAmount(cell(row, opt[colAmount])),
			AmountTax:     parseAmount(cell(row, opt[colAmountTax])),
			ShortText:     cell(row, opt[colShortText]),
			BranchName:    cell(row, opt[colBranchName]),
			LocationDesc:  cell(row, opt[colLocationDesc]),
			FaultText:     cell(row, opt[colFaultText]),
			CodeGroup:     cell(row, opt[colCodeGroup]),
			CreatedAt:     parseDate(cell(row, opt[colCreatedAt])),
			AttendedAt:    parseDate(cell(row, opt[colAttendedAt])),
			CompletedAt:   parseDate(cell(row, opt[colCompletedAt])),
		})
	}
	return orders, nil
}

// providerColumn resolves the varying provider header. More than one
// distinct matching header is an error rather than a silent pick; the
// same trimmed header appearing twice keeps the first column.
func providerColumn(headers []string) (int, error) {
	matchedIdx := -1
	matchedName := ""
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if !strings.Contains(h, providerHeaderToken) {
			continue
		}
		if matchedIdx >= 0 && h != matchedName {
			return -1, fmt.Errorf("%w: %q and %q", ErrAmbiguousProviderColumn, matchedName, h)
		}
		if matchedIdx < 0 {
			matchedIdx = i
			matchedName = h
		}
	}
	return matchedIdx, nil
}

// costCenterKey strips the fixed prefixes from a cost-center code and
// parses the remainder as a number; nil when it does not parse.
func costCenterKey(code string) *int64 {
	for _, prefix := range costCenterPrefixes {
		code = strings.ReplaceAll(code, prefix, "")
	}
	return parseNumericKey(code)
}

// optionalColumns maps names to indexes, -1 for columns the export does
// not carry. cell() treats -1 as an empty value.
func optionalColumns(headers []string, names ...string) map[string]int {
	byName := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if _, ok := byName[h]; !ok {
			byName[h] = i
		}
	}
	opt := make(map[string]int, len(names))
	for _, name := range names {
		if i, ok := byName[name]; ok {
			opt[name] = i
		} else {
			opt[name] = -1
		}
	}
	return opt
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
