package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bp_analytics/internal/usecase"
)

var ErrInvalidDateFilter = errors.New("invalid date filter")

const filterDateLayout = "2006-01-02"

// FilterRequest binds the report query string. Empty fields mean "no
// constraint"; from/to are inclusive YYYY-MM-DD bounds on the creation
// date.
type FilterRequest struct {
	OrderType  string `form:"order_type"`
	Status     string `form:"status"`
	Supervisor string `form:"supervisor"`
	Zone       string `form:"zone"`
	Provider   string `form:"provider"`
	BankType   string `form:"bank_type"`
	From       string `form:"from"`
	To         string `form:"to"`
	Search     string `form:"search"`
}

func (r FilterRequest) ToFilter() (usecase.Filter, error) {
	f := usecase.Filter{
		OrderType:  strings.TrimSpace(r.OrderType),
		Status:     strings.TrimSpace(r.Status),
		Supervisor: strings.TrimSpace(r.Supervisor),
		Zone:       strings.TrimSpace(r.Zone),
		Provider:   strings.TrimSpace(r.Provider),
		BankType:   strings.TrimSpace(r.BankType),
		Search:     strings.TrimSpace(r.Search),
	}

	var err error
	if f.From, err = parseFilterDate(r.From); err != nil {
		return usecase.Filter{}, err
	}
	if f.To, err = parseFilterDate(r.To); err != nil {
		return usecase.Filter{}, err
	}
	return f, nil
}

func parseFilterDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(filterDateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDateFilter, s)
	}
	return &t, nil
}
