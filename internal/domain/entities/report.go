package entities

import "time"

// Summary is the KPI block computed over a filtered set of orders.
type Summary struct {
	TotalOrders     int
	LoadedOrders    int
	AmountTotal     float64
	AmountTaxTotal  float64
	AverageAmount   float64
	Corrective      int
	Preventive      int
	CorrectiveShare float64
	PreventiveShare float64
	Providers       int
	Branches        int
	AvgDaysToAttend *float64
}

// BreakdownRow is one bucket of a single-dimension group-by:
// order count plus amount sum per bucket value.
type BreakdownRow struct {
	Value  string
	Orders int
	Amount float64
}

// MonthlyCount is one month bucket of the creation-date trend, split by
// order type. Month sorts lexicographically (YYYY-MM).
type MonthlyCount struct {
	Month      string
	MonthLabel string
	Corrective int
	Preventive int
	Other      int
	Total      int
	Amount     float64
}

// ProviderStats is one row of the provider comparison table.
type ProviderStats struct {
	Provider        string
	Orders          int
	AmountTotal     float64
	AmountTaxTotal  float64
	AverageAmount   float64
	Corrective      int
	Preventive      int
	CorrectivePct   float64
	PreventivePct   float64
	Branches        int
	Zones           int
	AvgDaysToAttend *float64
}

// SupervisorStats is one row of the supervisor comparison table.
type SupervisorStats struct {
	Supervisor      string
	Orders          int
	AmountTotal     float64
	AmountTaxTotal  float64
	AverageAmount   float64
	Corrective      int
	Preventive      int
	CorrectivePct   float64
	PreventivePct   float64
	Providers       int
	Branches        int
	Zones           int
	AvgDaysToAttend *float64
}

// Heatmap is the supervisor x zone order-count cross-tab. Counts is
// indexed [supervisor][zone] following the two label slices.
type Heatmap struct {
	Supervisors []string
	Zones       []string
	Counts      [][]int
}

// FilterOptions lists the distinct values available per filterable
// dimension, for dropdown population.
type FilterOptions struct {
	OrderTypes  []string
	Statuses    []string
	Supervisors []string
	Zones       []string
	Providers   []string
	BankTypes   []string
	MinCreated  *time.Time
	MaxCreated  *time.Time
}

// CSVExport is a rendered comma-separated download: UTF-8 with BOM,
// filename stamped with the generation time.
type CSVExport struct {
	FileName string
	Content  []byte
}
