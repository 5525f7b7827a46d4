package response

import (
	"time"

	"bp_analytics/internal/domain/entities"
)

// OrderResponse is one enriched order in its displayed column set.
type OrderResponse struct {
	OrderID          string     `json:"order_id"`
	OrderType        string     `json:"order_type"`
	Provider         string     `json:"provider"`
	Supervisor       string     `json:"supervisor"`
	CostCenter       string     `json:"cost_center"`
	Branch           string     `json:"branch"`
	Zone             string     `json:"zone"`
	BankType         string     `json:"bank_type"`
	ShortText        string     `json:"short_text"`
	Status           string     `json:"status"`
	Amount           float64    `json:"amount"`
	AmountTax        float64    `json:"amount_tax"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	AttendedAt       *time.Time `json:"attended_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	Specialty        string     `json:"specialty"`
	FaultText        string     `json:"fault_text,omitempty"`
	CodeGroup        string     `json:"code_group,omitempty"`
	DaysToAttention  *int       `json:"days_to_attention,omitempty"`
	DaysToCompletion *int       `json:"days_to_completion,omitempty"`
}

func FromEnrichedOrder(r entities.EnrichedOrder) OrderResponse {
	return OrderResponse{
		OrderID:          r.OrderID,
		OrderType:        string(r.OrderType),
		Provider:         r.Provider,
		Supervisor:       r.Supervisor,
		CostCenter:       r.CostCenter,
		Branch:           r.BranchName,
		Zone:             r.Zone,
		BankType:         r.BankType,
		ShortText:        r.ShortText,
		Status:           r.StatusLabel,
		Amount:           r.Amount,
		AmountTax:        r.AmountTax,
		CreatedAt:        r.CreatedAt,
		AttendedAt:       r.AttendedAt,
		CompletedAt:      r.CompletedAt,
		Specialty:        r.Specialty,
		FaultText:        r.FaultText,
		CodeGroup:        r.CodeGroup,
		DaysToAttention:  r.DaysToAttention,
		DaysToCompletion: r.DaysToCompletion,
	}
}

type OrderListResponse struct {
	Total  int             `json:"total"`
	Orders []OrderResponse `json:"orders"`
}

func FromEnrichedOrders(rows []entities.EnrichedOrder) OrderListResponse {
	out := OrderListResponse{Total: len(rows), Orders: make([]OrderResponse, 0, len(rows))}
	for _, r := range rows {
		out.Orders = append(out.Orders, FromEnrichedOrder(r))
	}
	return out
}
