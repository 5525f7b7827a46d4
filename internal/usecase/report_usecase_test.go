package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"bp_analytics/internal/domain/entities"
	mock_interfaces "bp_analytics/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func intPtr(v int) *int { return &v }

// reportFixture wires a ReportUseCase over a repository mock that always
// resolves "ds" to the given orders.
func reportFixture(t *testing.T, orders []entities.EnrichedOrder) *ReportUseCase {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_interfaces.NewMockIDatasetRepository(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), "ds").Return(&entities.Dataset{ID: "ds", Orders: orders}, nil).AnyTimes()
	return NewReportUseCase(NewDatasetUseCase(repo, nil))
}

func sampleOrders() []entities.EnrichedOrder {
	return []entities.EnrichedOrder{
		{
			WorkOrder: entities.WorkOrder{
				OrderID: "40001", Provider: "ACME", Amount: 100, AmountTax: 16,
				BranchName: "SUC CENTRO", CreatedAt: date(2024, 3, 5),
			},
			OrderType: entities.OrderTypeCorrective, StatusLabel: "Realizado",
			Supervisor: "PEREZ", Zone: "NE-1", BankType: "COMERCIAL",
			Specialty: "CLIMA", MonthKey: "2024-03", MonthLabel: "Mar 2024",
			DaysToAttention: intPtr(2),
		},
		{
			WorkOrder: entities.WorkOrder{
				OrderID: "50002", Provider: "ACME", Amount: 50, AmountTax: 8,
				BranchName: "SUC NORTE", CreatedAt: date(2024, 4, 10),
			},
			OrderType: entities.OrderTypePreventive, StatusLabel: "Visado",
			Supervisor: "PEREZ", Zone: "NE-2", BankType: "COMERCIAL",
			Specialty: "ELECTRICA", MonthKey: "2024-04", MonthLabel: "Apr 2024",
			DaysToAttention: intPtr(4),
		},
		{
			WorkOrder: entities.WorkOrder{
				OrderID: "40003", Provider: "BETA", Amount: 200, AmountTax: 32,
				BranchName: "SUC CENTRO",
			},
			OrderType: entities.OrderTypeCorrective, StatusLabel: "Visado",
			Supervisor: "GOMEZ", Zone: "NE-1", BankType: "EMPRESARIAL",
			Specialty: "CLIMA",
		},
	}
}

func TestReportUseCase_Summary(t *testing.T) {
	uc := reportFixture(t, sampleOrders())

	t.Run("unfiltered", func(t *testing.T) {
		s, err := uc.Summary(context.Background(), "ds", Filter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalOrders != 3 || s.LoadedOrders != 3 {
			t.Fatalf("unexpected counts: %+v", s)
		}
		if s.AmountTotal != 350 || s.AmountTaxTotal != 56 {
			t.Fatalf("unexpected totals: %+v", s)
		}
		if s.Corrective != 2 || s.Preventive != 1 {
			t.Fatalf("unexpected type split: %+v", s)
		}
		if s.Providers != 2 || s.Branches != 2 {
			t.Fatalf("unexpected distinct counts: %+v", s)
		}
		if s.AvgDaysToAttend == nil || *s.AvgDaysToAttend != 3 {
			t.Fatalf("expected avg attention 3, got %v", s.AvgDaysToAttend)
		}
	})

	t.Run("filtered keeps loaded total", func(t *testing.T) {
		s, err := uc.Summary(context.Background(), "ds", Filter{Provider: "BETA"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalOrders != 1 || s.LoadedOrders != 3 {
			t.Fatalf("expected 1 of 3, got %+v", s)
		}
	})

	t.Run("unknown dataset", func(t *testing.T) {
		_, err := uc.Summary(context.Background(), "", Filter{})
		if !errors.Is(err, ErrInvalidDatasetID) {
			t.Fatalf("expected ErrInvalidDatasetID, got %v", err)
		}
	})
}

func TestReportUseCase_Orders_Filtering(t *testing.T) {
	uc := reportFixture(t, sampleOrders())
	ctx := context.Background()

	cases := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "no filter", filter: Filter{}, want: []string{"40001", "50002", "40003"}},
		{name: "order type", filter: Filter{OrderType: "Correctivo"}, want: []string{"40001", "40003"}},
		{name: "status", filter: Filter{Status: "Visado"}, want: []string{"50002", "40003"}},
		{name: "zone and supervisor", filter: Filter{Zone: "NE-1", Supervisor: "PEREZ"}, want: []string{"40001"}},
		{name: "bank type", filter: Filter{BankType: "EMPRESARIAL"}, want: []string{"40003"}},
		{name: "date range excludes undated", filter: Filter{From: date(2024, 3, 1), To: date(2024, 3, 31)}, want: []string{"40001"}},
		{name: "inclusive bounds", filter: Filter{From: date(2024, 3, 5), To: date(2024, 4, 10)}, want: []string{"40001", "50002"}},
		{name: "search is case-insensitive", filter: Filter{Search: "electrica"}, want: []string{"50002"}},
		{name: "search misses", filter: Filter{Search: "plomeria"}, want: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := uc.Orders(ctx, "ds", tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(rows) != len(tc.want) {
				t.Fatalf("expected %d rows, got %d", len(tc.want), len(rows))
			}
			for i, id := range tc.want {
				if rows[i].OrderID != id {
					t.Fatalf("row %d: expected %s, got %s", i, id, rows[i].OrderID)
				}
			}
		})
	}
}

func TestReportUseCase_Breakdown(t *testing.T) {
	uc := reportFixture(t, sampleOrders())
	ctx := context.Background()

	t.Run("unknown dimension", func(t *testing.T) {
		_, err := uc.Breakdown(ctx, "ds", Filter{}, "branch")
		if !errors.Is(err, ErrUnknownDimension) {
			t.Fatalf("expected ErrUnknownDimension, got %v", err)
		}
	})

	t.Run("zone ordered by volume then name", func(t *testing.T) {
		rows, err := uc.Breakdown(ctx, "ds", Filter{}, DimensionZone)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(rows))
		}
		if rows[0].Value != "NE-1" || rows[0].Orders != 2 || rows[0].Amount != 300 {
			t.Fatalf("unexpected first bucket: %+v", rows[0])
		}
		if rows[1].Value != "NE-2" || rows[1].Orders != 1 {
			t.Fatalf("unexpected second bucket: %+v", rows[1])
		}
	})

	t.Run("status ties break alphabetically", func(t *testing.T) {
		rows, err := uc.Breakdown(ctx, "ds", Filter{OrderType: "Correctivo"}, DimensionStatus)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 2 || rows[0].Value != "Realizado" || rows[1].Value != "Visado" {
			t.Fatalf("unexpected ordering: %+v", rows)
		}
	})
}

func TestReportUseCase_MonthlyTrend(t *testing.T) {
	uc := reportFixture(t, sampleOrders())

	months, err := uc.MonthlyTrend(context.Background(), "ds", Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The undated order contributes to no month.
	if len(months) != 2 {
		t.Fatalf("expected 2 months, got %d", len(months))
	}
	if months[0].Month != "2024-03" || months[1].Month != "2024-04" {
		t.Fatalf("expected ascending months, got %+v", months)
	}
	if months[0].Corrective != 1 || months[0].Total != 1 || months[0].Amount != 100 {
		t.Fatalf("unexpected March bucket: %+v", months[0])
	}
	if months[1].Preventive != 1 {
		t.Fatalf("unexpected April bucket: %+v", months[1])
	}
}

func TestReportUseCase_Comparisons(t *testing.T) {
	uc := reportFixture(t, sampleOrders())
	ctx := context.Background()

	t.Run("providers", func(t *testing.T) {
		rows, err := uc.ProviderComparison(ctx, "ds", Filter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 2 || rows[0].Provider != "ACME" || rows[1].Provider != "BETA" {
			t.Fatalf("unexpected providers: %+v", rows)
		}
		acme := rows[0]
		if acme.Orders != 2 || acme.AmountTotal != 150 || acme.Corrective != 1 || acme.Preventive != 1 {
			t.Fatalf("unexpected ACME stats: %+v", acme)
		}
		if acme.CorrectivePct != 50 || acme.PreventivePct != 50 {
			t.Fatalf("unexpected ACME shares: %+v", acme)
		}
		if acme.Branches != 2 || acme.Zones != 2 {
			t.Fatalf("unexpected ACME distinct counts: %+v", acme)
		}
	})

	t.Run("supervisors", func(t *testing.T) {
		rows, err := uc.SupervisorComparison(ctx, "ds", Filter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 2 || rows[0].Supervisor != "PEREZ" || rows[1].Supervisor != "GOMEZ" {
			t.Fatalf("unexpected supervisors: %+v", rows)
		}
		if rows[0].Providers != 1 || rows[1].Providers != 1 {
			t.Fatalf("unexpected provider counts: %+v", rows)
		}
	})
}

func TestReportUseCase_Heatmap(t *testing.T) {
	uc := reportFixture(t, sampleOrders())

	hm, err := uc.Heatmap(context.Background(), "ds", Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hm.Supervisors) != 2 || hm.Supervisors[0] != "GOMEZ" || hm.Supervisors[1] != "PEREZ" {
		t.Fatalf("unexpected supervisors: %v", hm.Supervisors)
	}
	if len(hm.Zones) != 2 || hm.Zones[0] != "NE-1" || hm.Zones[1] != "NE-2" {
		t.Fatalf("unexpected zones: %v", hm.Zones)
	}
	want := [][]int{{1, 0}, {1, 1}}
	for i := range want {
		for j := range want[i] {
			if hm.Counts[i][j] != want[i][j] {
				t.Fatalf("counts[%d][%d] = %d, want %d", i, j, hm.Counts[i][j], want[i][j])
			}
		}
	}
}

func TestReportUseCase_FilterOptions(t *testing.T) {
	uc := reportFixture(t, sampleOrders())

	opts, err := uc.FilterOptions(context.Background(), "ds")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts.OrderTypes) != 2 || opts.OrderTypes[0] != "Correctivo" {
		t.Fatalf("unexpected order types: %v", opts.OrderTypes)
	}
	if len(opts.Providers) != 2 || len(opts.Zones) != 2 || len(opts.Supervisors) != 2 {
		t.Fatalf("unexpected option sets: %+v", opts)
	}
	if opts.MinCreated == nil || !opts.MinCreated.Equal(*date(2024, 3, 5)) {
		t.Fatalf("unexpected min created: %v", opts.MinCreated)
	}
	if opts.MaxCreated == nil || !opts.MaxCreated.Equal(*date(2024, 4, 10)) {
		t.Fatalf("unexpected max created: %v", opts.MaxCreated)
	}
}
