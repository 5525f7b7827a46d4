package response

import (
	"time"

	"bp_analytics/internal/domain/entities"
)

type SummaryResponse struct {
	TotalOrders     int      `json:"total_orders"`
	LoadedOrders    int      `json:"loaded_orders"`
	AmountTotal     float64  `json:"amount_total"`
	AmountTaxTotal  float64  `json:"amount_tax_total"`
	AverageAmount   float64  `json:"average_amount"`
	Corrective      int      `json:"corrective"`
	Preventive      int      `json:"preventive"`
	CorrectiveShare float64  `json:"corrective_share"`
	PreventiveShare float64  `json:"preventive_share"`
	Providers       int      `json:"providers"`
	Branches        int      `json:"branches"`
	AvgDaysToAttend *float64 `json:"avg_days_to_attend,omitempty"`
}

func FromSummary(s entities.Summary) SummaryResponse {
	return SummaryResponse{
		TotalOrders:     s.TotalOrders,
		LoadedOrders:    s.LoadedOrders,
		AmountTotal:     s.AmountTotal,
		AmountTaxTotal:  s.AmountTaxTotal,
		AverageAmount:   s.AverageAmount,
		Corrective:      s.Corrective,
		Preventive:      s.Preventive,
		CorrectiveShare: s.CorrectiveShare,
		PreventiveShare: s.PreventiveShare,
		Providers:       s.Providers,
		Branches:        s.Branches,
		AvgDaysToAttend: s.AvgDaysToAttend,
	}
}

type BreakdownRowResponse struct {
	Value  string  `json:"value"`
	Orders int     `json:"orders"`
	Amount float64 `json:"amount"`
}

type BreakdownResponse struct {
	Dimension string                 `json:"dimension"`
	Rows      []BreakdownRowResponse `json:"rows"`
}

func FromBreakdown(dimension string, rows []entities.BreakdownRow) BreakdownResponse {
	out := BreakdownResponse{Dimension: dimension, Rows: make([]BreakdownRowResponse, 0, len(rows))}
	for _, r := range rows {
		out.Rows = append(out.Rows, BreakdownRowResponse{Value: r.Value, Orders: r.Orders, Amount: r.Amount})
	}
	return out
}

type MonthlyCountResponse struct {
	Month      string  `json:"month"`
	MonthLabel string  `json:"month_label"`
	Corrective int     `json:"corrective"`
	Preventive int     `json:"preventive"`
	Other      int     `json:"other"`
	Total      int     `json:"total"`
	Amount     float64 `json:"amount"`
}

type MonthlyTrendResponse struct {
	Months []MonthlyCountResponse `json:"months"`
}

func FromMonthlyTrend(rows []entities.MonthlyCount) MonthlyTrendResponse {
	out := MonthlyTrendResponse{Months: make([]MonthlyCountResponse, 0, len(rows))}
	for _, r := range rows {
		out.Months = append(out.Months, MonthlyCountResponse{
			Month:      r.Month,
			MonthLabel: r.MonthLabel,
			Corrective: r.Corrective,
			Preventive: r.Preventive,
			Other:      r.Other,
			Total:      r.Total,
			Amount:     r.Amount,
		})
	}
	return out
}

type ProviderStatsResponse struct {
	Provider        string   `json:"provider"`
	Orders          int      `json:"orders"`
	AmountTotal     float64  `json:"amount_total"`
	AmountTaxTotal  float64  `json:"amount_tax_total"`
	AverageAmount   float64  `json:"average_amount"`
	Corrective      int      `json:"corrective"`
	Preventive      int      `json:"preventive"`
	CorrectivePct   float64  `json:"corrective_pct"`
	PreventivePct   float64  `json:"preventive_pct"`
	Branches        int      `json:"branches"`
	Zones           int      `json:"zones"`
	AvgDaysToAttend *float64 `json:"avg_days_to_attend,omitempty"`
}

func FromProviderStats(rows []entities.ProviderStats) []ProviderStatsResponse {
	out := make([]ProviderStatsResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProviderStatsResponse{
			Provider:        r.Provider,
			Orders:          r.Orders,
			AmountTotal:     r.AmountTotal,
			AmountTaxTotal:  r.AmountTaxTotal,
			AverageAmount:   r.AverageAmount,
			Corrective:      r.Corrective,
			Preventive:      r.Preventive,
			CorrectivePct:   r.CorrectivePct,
			PreventivePct:   r.PreventivePct,
			Branches:        r.Branches,
			Zones:           r.Zones,
			AvgDaysToAttend: r.AvgDaysToAttend,
		})
	}
	return out
}

type SupervisorStatsResponse struct {
	Supervisor      string   `json:"supervisor"`
	Orders          int      `json:"orders"`
	AmountTotal     float64  `json:"amount_total"`
	AmountTaxTotal  float64  `json:"amount_tax_total"`
	AverageAmount   float64  `json:"average_amount"`
	Corrective      int      `json:"corrective"`
	Preventive      int      `json:"preventive"`
	CorrectivePct   float64  `json:"corrective_pct"`
	PreventivePct   float64  `json:"preventive_pct"`
	Providers       int      `json:"providers"`
	Branches        int      `json:"branches"`
	Zones           int      `json:"zones"`
	AvgDaysToAttend *float64 `json:"avg_days_to_attend,omitempty"`
}

func FromSupervisorStats(rows []entities.SupervisorStats) []SupervisorStatsResponse {
	out := make([]SupervisorStatsResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, SupervisorStatsResponse{
			Supervisor:      r.Supervisor,
			Orders:          r.Orders,
			AmountTotal:     r.AmountTotal,
			AmountTaxTotal:  r.AmountTaxTotal,
			AverageAmount:   r.AverageAmount,
			Corrective:      r.Corrective,
			Preventive:      r.Preventive,
			CorrectivePct:   r.CorrectivePct,
			PreventivePct:   r.PreventivePct,
			Providers:       r.Providers,
			Branches:        r.Branches,
			Zones:           r.Zones,
			AvgDaysToAttend: r.AvgDaysToAttend,
		})
	}
	return out
}

type HeatmapResponse struct {
	Supervisors []string `json:"supervisors"`
	Zones       []string `json:"zones"`
	Counts      [][]int  `json:"counts"`
}

func FromHeatmap(h entities.Heatmap) HeatmapResponse {
	return HeatmapResponse{Supervisors: h.Supervisors, Zones: h.Zones, Counts: h.Counts}
}

type FilterOptionsResponse struct {
	OrderTypes  []string   `json:"order_types"`
	Statuses    []string   `json:"statuses"`
	Supervisors []string   `json:"supervisors"`
	Zones       []string   `json:"zones"`
	Providers   []string   `json:"providers"`
	BankTypes   []string   `json:"bank_types"`
	MinCreated  *time.Time `json:"min_created,omitempty"`
	MaxCreated  *time.Time `json:"max_created,omitempty"`
}

func FromFilterOptions(o entities.FilterOptions) FilterOptionsResponse {
	return FilterOptionsResponse{
		OrderTypes:  o.OrderTypes,
		Statuses:    o.Statuses,
		Supervisors: o.Supervisors,
		Zones:       o.Zones,
		Providers:   o.Providers,
		BankTypes:   o.BankTypes,
		MinCreated:  o.MinCreated,
		MaxCreated:  o.MaxCreated,
	}
}

// DetailResponse is the scoped drill-down for one provider or
// supervisor: their KPI block plus the breakdowns the detail tabs show.
type DetailResponse struct {
	Name      string               `json:"name"`
	Summary   SummaryResponse      `json:"summary"`
	Statuses  BreakdownResponse    `json:"statuses"`
	Zones     BreakdownResponse    `json:"zones,omitempty"`
	Providers BreakdownResponse    `json:"providers,omitempty"`
	Specialty BreakdownResponse    `json:"specialties"`
	Monthly   MonthlyTrendResponse `json:"monthly"`
}
