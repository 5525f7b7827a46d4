package entities

import (
	"strings"
	"time"
)

// OrderType classifies a maintenance order. Values are the literal
// business labels consumed by the reporting layer.
type OrderType string

const (
	OrderTypeCorrective OrderType = "Correctivo"
	OrderTypePreventive OrderType = "Preventivo"
	OrderTypeOther      OrderType = "Otro"
)

// OrderTypeFromID derives the order type from the ERP order-number range.
// This is a business convention of the SAP installation (4xxxxxxx orders
// are corrective, 5xxxxxxx preventive), not a general rule.
func OrderTypeFromID(orderID string) OrderType {
	switch {
	case strings.HasPrefix(orderID, "4"):
		return OrderTypeCorrective
	case strings.HasPrefix(orderID, "5"):
		return OrderTypePreventive
	default:
		return OrderTypeOther
	}
}

// Sentinel labels substituted when enrichment finds no reference match.
const (
	SentinelUnassigned   = "Sin asignar"
	SentinelNoZone       = "Sin zona"
	SentinelUnclassified = "Sin clasificar"
)

// statusLabels maps the 4-character SAP user-status codes to their
// display labels. Codes outside the table pass through unchanged.
var statusLabels = map[string]string{
	"VISA": "Visado",
	"AUTO": "Autorizado",
	"ATEN": "En Atención",
	"REAL": "Realizado",
	"PRES": "Presupuestado",
	"ENVI": "Enviado",
	"NAUT": "No Autorizado",
}

// StatusLabelFor resolves a user-status code to its display label,
// falling back to the code itself for unknown values.
func StatusLabelFor(code string) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return code
}

// WorkOrder is one row of the BP export (sheet 0) after cleaning.
//
// Optional timestamps are nil when the lifecycle step has not been
// reached or the cell did not parse as a date.
type WorkOrder struct {
	OrderID       string
	DeclaredType  string
	Provider      string
	CostCenter    string
	CostCenterKey *int64
	UserStatus    string
	Amount        float64
	AmountTax     float64
	ShortText     string
	BranchName    string
	LocationDesc  string
	FaultText     string
	CodeGroup     string
	CreatedAt     *time.Time
	AttendedAt    *time.Time
	CompletedAt   *time.Time
}
