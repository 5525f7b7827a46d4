package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"bp_analytics/internal/domain/entities"
)

var ErrUnknownDimension = errors.New("unknown breakdown dimension")

// Breakdown dimensions accepted by Breakdown.
const (
	DimensionZone       = "zone"
	DimensionProvider   = "provider"
	DimensionSupervisor = "supervisor"
	DimensionStatus     = "status"
	DimensionSpecialty  = "specialty"
)

// Filter narrows a dataset before aggregation: exact-match categorical
// fields, an inclusive creation-date range, and a case-insensitive
// substring search across the displayed columns. Zero values mean "no
// constraint".
type Filter struct {
	OrderType  string
	Status     string
	Supervisor string
	Zone       string
	Provider   string
	BankType   string
	From       *time.Time
	To         *time.Time
	Search     string
}

// IReportUseCase serves the read-only reporting surface over a cached
// dataset. Every operation is a pure function of the dataset and the
// filter.
type IReportUseCase interface {
	Summary(ctx context.Context, datasetID string, f Filter) (entities.Summary, error)
	Orders(ctx context.Context, datasetID string, f Filter) ([]entities.EnrichedOrder, error)
	Export(ctx context.Context, datasetID string, f Filter) (entities.CSVExport, error)
	Breakdown(ctx context.Context, datasetID string, f Filter, dimension string) ([]entities.BreakdownRow, error)
	MonthlyTrend(ctx context.Context, datasetID string, f Filter) ([]entities.MonthlyCount, error)
	ProviderComparison(ctx context.Context, datasetID string, f Filter) ([]entities.ProviderStats, error)
	SupervisorComparison(ctx context.Context, datasetID string, f Filter) ([]entities.SupervisorStats, error)
	Heatmap(ctx context.Context, datasetID string, f Filter) (entities.Heatmap, error)
	FilterOptions(ctx context.Context, datasetID string) (entities.FilterOptions, error)
}

type ReportUseCase struct {
	datasets IDatasetUseCase
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(datasets IDatasetUseCase) *ReportUseCase {
	return &ReportUseCase{datasets: datasets}
}

func (u *ReportUseCase) Summary(ctx context.Context, datasetID string, f Filter) (entities.Summary, error) {
	ds, err := u.datasets.Get(ctx, datasetID)
	if err != nil {
		return entities.Summary{}, err
	}
	rows := filterOrders(ds.Orders, f)
	return summarize(rows, len(ds.Orders)), nil
}

func (u *ReportUseCase) Orders(ctx context.Context, datasetID string, f Filter) ([]entities.EnrichedOrder, error) {
	ds, err := u.datasets.Get(ctx, datasetID)
	if err != nil {
		return nil, err
	}
	return filterOrders(ds.Orders, f), nil
}

func (u *ReportUseCase) Export(ctx context.Context, datasetID string, f Filter) (entities.CSVExport, error) {
	rows, err := u.Orders(ctx, datasetID, f)
	if err != nil {
		return entities.CSVExport{}, err
	}
	return renderCSV(rows, time.Now())
}

func (u *ReportUseCase) Breakdown(ctx context.Context, datasetID string, f Filter, dimension string) ([]entities.BreakdownRow, error) {
	key, err := dimensionKey(dimension)
	if err != nil {
		return nil, err
	}
	rows, err := u.Orders(ctx, datasetID, f)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		orders int
		amount float64
	}
	buckets := map[string]*bucket{}
	for i := range rows {
		v := key(&rows[i])
		b, ok := buckets[v]
		if !ok {
			b = &bucket{}
			buckets[v] = b
		}
		b.orders++
		b.amount += rows[i].Amount
	}

	out := make([]entities.BreakdownRow, 0, len(buckets))
	for v, b := range buckets {
		out = append(out, entities.BreakdownRow{Value: v, Orders: b.orders, Amount: b.amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Orders != out[j].Orders {
			return out[i].Orders > out[j].Orders
		}
		return out[i].Value < out[j].Value
	})
	return out, nil
}

func (u *ReportUseCase) MonthlyTrend(ctx context.Context, datasetID string, f Filter) ([]entities.MonthlyCount, error) {
	rows, err := u.Orders(ctx, datasetID, f)
	if err != nil {
		return nil, err
	}

	byMonth := map[string]*entities.MonthlyCount{}
	for i := range rows {
		r := &rows[i]
		if r.MonthKey == "" {
			continue
		}
		m, ok := byMonth[r.MonthKey]
		if !ok {
			m = &entities.MonthlyCount{Month: r.MonthKey, MonthLabel: r.MonthLabel}
			byMonth[r.MonthKey] = m
		}
		m.Total++
		m.Amount += r.Amount
		switch r.OrderType {
		case entities.OrderTypeCorrective:
			m.Corrective++
		case entities.OrderTypePreventive:
			m.Preventive++
		default:
			m.Other++
		}
	}

	out := make([]entities.MonthlyCount, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (u *ReportUseCase) ProviderComparison(ctx context.Context, datasetID string, f Filter) ([]entities.ProviderStats, error) {
	rows, err := u.Orders(ctx, datasetID, f)
	if err != nil {
		return nil, err
	}

	groups := groupBy(rows, func(r *entities.EnrichedOrder) string { return r.Provider })
	out := make([]entities.ProviderStats, 0, len(groups))
	for provider, g := range groups {
		s := summarize(g, len(rows))
		out = append(out, entities.ProviderStats{
			Provider:        provider,
			Orders:          s.TotalOrders,
			AmountTotal:     s.AmountTotal,
			AmountTaxTotal:  s.AmountTaxTotal,
			AverageAmount:   s.AverageAmount,
			Corrective:      s.Corrective,
			Preventive:      s.Preventive,
			CorrectivePct:   s.CorrectiveShare,
			PreventivePct:   s.PreventiveShare,
			Branches:        distinct(g, func(r *entities.EnrichedOrder) string { return r.BranchName }),
			Zones:           distinct(g, func(r *entities.EnrichedOrder) string { return r.Zone }),
			AvgDaysToAttend: s.AvgDaysToAttend,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Orders != out[j].Orders {
			return out[i].Orders > out[j].Orders
		}
		return out[i].Provider < out[j].Provider
	})
	return out, nil
}

func (u *ReportUseCase) SupervisorComparison(ctx context.Context, datasetID string, f Filter) ([]entities.SupervisorStats, error) {
	rows, err := u.Orders(ctx, datasetID, f)
	if err != nil {
		return nil, err
	}

	groups := groupBy(rows, func(r *entities.EnrichedOrder) string { return r.Supervisor })
	out := make([]entities.SupervisorStats, 0, len(groups))
	for supervisor, g := range groups {
		s := summarize(g, len(rows))
		out = append(out, entities.SupervisorStats{
			Supervisor:      supervisor,
			Orders:          s.TotalOrders,
			AmountTotal:     s.AmountTotal,
			AmountTaxTotal:  s.AmountTaxTotal,
			AverageAmount:   s.AverageAmount,
			Corrective:      s.Corrective,
			Preventive:      s.Preventive,
			CorrectivePct:   s.CorrectiveShare,
			PreventivePct:   s.PreventiveShare,
			Providers:       distinct(g, func(r *entities.EnrichedOrder) string { return r.Provider }),
			Branches:        distinct(g, func(r *entities.EnrichedOrder) string { return r.BranchName }),
			Zones:           distinct(g, func(r *entities.EnrichedOrder) string { return r.Zone }),
			AvgDaysToAttend: s.AvgDaysToAttend,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Orders != out[j].Orders {
			return out[i].Orders > out[j].Orders
		}
		return out[i].Supervisor < out[j].Supervisor
	})
	return out, nil
}

func (u *ReportUseCase) Heatmap(ctx context.Context, datasetID string, f Filter) (entities.Heatmap, error) {
	rows, err := u.Orders(ctx, datasetID, f)
	if err != nil {
		return entities.Heatmap{}, err
	}

	counts := map[string]map[string]int{}
	zoneSet := map[string]struct{}{}
	for i := range rows {
		r := &rows[i]
		if counts[r.Supervisor] == nil {
			counts[r.Supervisor] = map[string]int{}
		}
		counts[r.Supervisor][r.Zone]++
		zoneSet[r.Zone] = struct{}{}
	}

	hm := entities.Heatmap{
		Supervisors: sortedKeys(counts),
		Zones:       make([]string, 0, len(zoneSet)),
	}
	for z := range zoneSet {
		hm.Zones = append(hm.Zones, z)
	}
	sort.Strings(hm.Zones)

	hm.Counts = make([][]int, len(hm.Supervisors))
	for i, sup := range hm.Supervisors {
		hm.Counts[i] = make([]int, len(hm.Zones))
		for j, z := range hm.Zones {
			hm.Counts[i][j] = counts[sup][z]
		}
	}
	return hm, nil
}

func (u *ReportUseCase) FilterOptions(ctx context.Context, datasetID string) (entities.FilterOptions, error) {
	ds, err := u.datasets.Get(ctx, datasetID)
	if err != nil {
		return entities.FilterOptions{}, err
	}

	opts := entities.FilterOptions{
		OrderTypes:  distinctSorted(ds.Orders, func(r *entities.EnrichedOrder) string { return string(r.OrderType) }),
		Statuses:    distinctSorted(ds.Orders, func(r *entities.EnrichedOrder) string { return r.StatusLabel }),
		Supervisors: distinctSorted(ds.Orders, func(r *entities.EnrichedOrder) string { return r.Supervisor }),
		Zones:       distinctSorted(ds.Orders, func(r *entities.EnrichedOrder) string { return r.Zone }),
		Providers:   distinctSorted(ds.Orders, func(r *entities.EnrichedOrder) string { return r.Provider }),
		BankTypes:   distinctSorted(ds.Orders, func(r *entities.EnrichedOrder) string { return r.BankType }),
	}
	for i := range ds.Orders {
		c := ds.Orders[i].CreatedAt
		if c == nil {
			continue
		}
		if opts.MinCreated == nil || c.Before(*opts.MinCreated) {
			opts.MinCreated = c
		}
		if opts.MaxCreated == nil || c.After(*opts.MaxCreated) {
			opts.MaxCreated = c
		}
	}
	return opts, nil
}

// --- filtering ---

func filterOrders(orders []entities.EnrichedOrder, f Filter) []entities.EnrichedOrder {
	out := make([]entities.EnrichedOrder, 0, len(orders))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	for i := range orders {
		r := &orders[i]
		if f.OrderType != "" && string(r.OrderType) != f.OrderType {
			continue
		}
		if f.Status != "" && r.StatusLabel != f.Status {
			continue
		}
		if f.Supervisor != "" && r.Supervisor != f.Supervisor {
			continue
		}
		if f.Zone != "" && r.Zone != f.Zone {
			continue
		}
		if f.Provider != "" && r.Provider != f.Provider {
			continue
		}
		if f.BankType != "" && r.BankType != f.BankType {
			continue
		}
		if !inDateRange(r.CreatedAt, f.From, f.To) {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		out = append(out, *r)
	}
	return out
}

// inDateRange compares at day granularity, both endpoints inclusive.
// A date filter excludes rows with no creation timestamp.
func inDateRange(created, from, to *time.Time) bool {
	if from == nil && to == nil {
		return true
	}
	if created == nil {
		return false
	}
	day := created.Truncate(24 * time.Hour)
	if from != nil && day.Before(from.Truncate(24*time.Hour)) {
		return false
	}
	if to != nil && day.After(to.Truncate(24*time.Hour)) {
		return false
	}
	return true
}

func matchesSearch(r *entities.EnrichedOrder, search string) bool {
	for _, v := range displayValues(r) {
		if strings.Contains(strings.ToLower(v), search) {
			return true
		}
	}
	return false
}

// --- aggregation helpers ---

func summarize(rows []entities.EnrichedOrder, loaded int) entities.Summary {
	s := entities.Summary{TotalOrders: len(rows), LoadedOrders: loaded}
	daysSum, daysN := 0, 0
	for i := range rows {
		r := &rows[i]
		s.AmountTotal += r.Amount
		s.AmountTaxTotal += r.AmountTax
		switch r.OrderType {
		case entities.OrderTypeCorrective:
			s.Corrective++
		case entities.OrderTypePreventive:
			s.Preventive++
		}
		if r.DaysToAttention != nil {
			daysSum += *r.DaysToAttention
			daysN++
		}
	}
	s.Providers = distinct(rows, func(r *entities.EnrichedOrder) string { return r.Provider })
	s.Branches = distinct(rows, func(r *entities.EnrichedOrder) string { return r.BranchName })
	if len(rows) > 0 {
		s.AverageAmount = s.AmountTotal / float64(len(rows))
		s.CorrectiveShare = float64(s.Corrective) / float64(len(rows)) * 100
		s.PreventiveShare = float64(s.Preventive) / float64(len(rows)) * 100
	}
	if daysN > 0 {
		avg := float64(daysSum) / float64(daysN)
		s.AvgDaysToAttend = &avg
	}
	return s
}

func dimensionKey(dimension string) (func(*entities.EnrichedOrder) string, error) {
	switch dimension {
	case DimensionZone:
		return func(r *entities.EnrichedOrder) string { return r.Zone }, nil
	case DimensionProvider:
		return func(r *entities.EnrichedOrder) string { return r.Provider }, nil
	case DimensionSupervisor:
		return func(r *entities.EnrichedOrder) string { return r.Supervisor }, nil
	case DimensionStatus:
		return func(r *entities.EnrichedOrder) string { return r.StatusLabel }, nil
	case DimensionSpecialty:
		return func(r *entities.EnrichedOrder) string { return r.Specialty }, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDimension, dimension)
	}
}

func groupBy(rows []entities.EnrichedOrder, key func(*entities.EnrichedOrder) string) map[string][]entities.EnrichedOrder {
	groups := map[string][]entities.EnrichedOrder{}
	for i := range rows {
		k := key(&rows[i])
		groups[k] = append(groups[k], rows[i])
	}
	return groups
}

func distinct(rows []entities.EnrichedOrder, key func(*entities.EnrichedOrder) string) int {
	set := map[string]struct{}{}
	for i := range rows {
		if v := key(&rows[i]); v != "" {
			set[v] = struct{}{}
		}
	}
	return len(set)
}

func distinctSorted(rows []entities.EnrichedOrder, key func(*entities.EnrichedOrder) string) []string {
	set := map[string]struct{}{}
	for i := range rows {
		if v := key(&rows[i]); v != "" {
			set[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func sortedKeys(m map[string]map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
