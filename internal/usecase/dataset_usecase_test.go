package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"bp_analytics/internal/domain/entities"
	mock_interfaces "bp_analytics/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func ordersSheet(rows ...[]string) entities.RawSheet {
	return entities.RawSheet{
		Headers: []string{
			"Orden", "Tipo de orden", "Proveedor Principal", "Centro de coste",
			"Estatus de Usuario", "Importe", "Importe IVA",
			"Denominación de la ubicación técnica", "Fecha de creación", "Fecha de atención",
		},
		Rows: rows,
	}
}

func supervisionSheet(rows ...[]string) entities.RawSheet {
	return entities.RawSheet{
		Headers: []string{"CR", "SUCURSAL", "TIPO DE BANCA", "BCA SEGMENTADA", "DZ", "SUPERVISOR"},
		Rows:    rows,
	}
}

func TestDatasetUseCase_Ingest(t *testing.T) {
	content := []byte("workbook-bytes")
	sum := sha256.Sum256(content)
	wantID := hex.EncodeToString(sum[:])

	t.Run("empty upload", func(t *testing.T) {
		uc := NewDatasetUseCase(nil, nil)
		_, err := uc.Ingest(context.Background(), "bp.xlsx", nil)
		if !errors.Is(err, ErrEmptyUpload) {
			t.Fatalf("expected ErrEmptyUpload, got %v", err)
		}
	})

	t.Run("cache hit skips the parser", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDatasetRepository(ctrl)
		parser := mock_interfaces.NewMockIWorkbookParser(ctrl)
		uc := NewDatasetUseCase(repo, parser)

		cached := &entities.Dataset{ID: wantID, FileName: "bp.xlsx"}
		repo.EXPECT().FindByID(gomock.Any(), wantID).Return(cached, nil)

		ds, err := uc.Ingest(context.Background(), "bp.xlsx", content)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ds != cached {
			t.Fatalf("expected cached dataset, got %+v", ds)
		}
	})

	t.Run("unreadable workbook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDatasetRepository(ctrl)
		parser := mock_interfaces.NewMockIWorkbookParser(ctrl)
		uc := NewDatasetUseCase(repo, parser)

		repo.EXPECT().FindByID(gomock.Any(), wantID).Return(nil, nil)
		parser.EXPECT().Parse(gomock.Any(), content).Return(entities.Workbook{}, errors.New("zip: not a valid zip file"))

		_, err := uc.Ingest(context.Background(), "bp.xlsx", content)
		if !errors.Is(err, ErrUnreadableWorkbook) {
			t.Fatalf("expected ErrUnreadableWorkbook, got %v", err)
		}
	})

	t.Run("missing reference column", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDatasetRepository(ctrl)
		parser := mock_interfaces.NewMockIWorkbookParser(ctrl)
		uc := NewDatasetUseCase(repo, parser)

		repo.EXPECT().FindByID(gomock.Any(), wantID).Return(nil, nil)
		parser.EXPECT().Parse(gomock.Any(), content).Return(entities.Workbook{
			Orders: ordersSheet(),
			Supervision: entities.RawSheet{
				Headers: []string{"CR", "SUCURSAL"},
			},
		}, nil)

		_, err := uc.Ingest(context.Background(), "bp.xlsx", content)
		if !errors.Is(err, ErrMissingColumn) {
			t.Fatalf("expected ErrMissingColumn, got %v", err)
		}
	})

	t.Run("ambiguous provider column", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDatasetRepository(ctrl)
		parser := mock_interfaces.NewMockIWorkbookParser(ctrl)
		uc := NewDatasetUseCase(repo, parser)

		repo.EXPECT().FindByID(gomock.Any(), wantID).Return(nil, nil)
		parser.EXPECT().Parse(gomock.Any(), content).Return(entities.Workbook{
			Orders: entities.RawSheet{
				Headers: []string{"Orden", "Centro de coste", "Estatus de Usuario", "Proveedor", "Proveedor Principal"},
			},
			Supervision: supervisionSheet(),
		}, nil)

		_, err := uc.Ingest(context.Background(), "bp.xlsx", content)
		if !errors.Is(err, ErrAmbiguousProviderColumn) {
			t.Fatalf("expected ErrAmbiguousProviderColumn, got %v", err)
		}
	})

	t.Run("builds and saves the enriched dataset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDatasetRepository(ctrl)
		parser := mock_interfaces.NewMockIWorkbookParser(ctrl)
		uc := NewDatasetUseCase(repo, parser)

		repo.EXPECT().FindByID(gomock.Any(), wantID).Return(nil, nil)
		parser.EXPECT().Parse(gomock.Any(), content).Return(entities.Workbook{
			Orders: ordersSheet(
				[]string{"40001234", "", "ACME SA", "MX111001", "REAL", "1,500.50", "240.08", "CLIMA", "2024-03-05", "2024-03-08"},
				[]string{"50005678", "=SI(A2)", "ACME SA", "MX119999", "ZZZZ", "", "", "", "", ""},
			),
			Supervision: supervisionSheet(
				[]string{"1001", "SUC CENTRO", "COMERCIAL", "BANCA SUR", "NE-1", "PEREZ"},
				[]string{"1001", "DUPLICADA", "OTRA", "OTRA", "NE-9", "GOMEZ"},
			),
		}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ds *entities.Dataset) error {
				if ds.ID != wantID || ds.FileName != "bp.xlsx" {
					t.Fatalf("unexpected dataset identity: %+v", ds)
				}
				if len(ds.Orders) != 2 || len(ds.Reference) != 1 {
					t.Fatalf("expected 2 orders and 1 reference row, got %d/%d", len(ds.Orders), len(ds.Reference))
				}

				matched := ds.Orders[0]
				if matched.OrderType != entities.OrderTypeCorrective {
					t.Fatalf("expected derived Correctivo, got %s", matched.OrderType)
				}
				if matched.Supervisor != "PEREZ" || matched.Zone != "NE-1" {
					t.Fatalf("first-wins join failed: %+v", matched)
				}
				if matched.StatusLabel != "Realizado" {
					t.Fatalf("expected Realizado, got %s", matched.StatusLabel)
				}
				if matched.Amount != 1500.50 {
					t.Fatalf("expected amount 1500.50, got %v", matched.Amount)
				}
				if matched.DaysToAttention == nil || *matched.DaysToAttention != 3 {
					t.Fatalf("expected 3 days to attention, got %v", matched.DaysToAttention)
				}
				if matched.MonthKey != "2024-03" || matched.MonthLabel != "Mar 2024" {
					t.Fatalf("unexpected month fields: %q %q", matched.MonthKey, matched.MonthLabel)
				}

				unmatched := ds.Orders[1]
				if unmatched.OrderType != entities.OrderTypePreventive {
					t.Fatalf("formula-artifact type should re-derive to Preventivo, got %s", unmatched.OrderType)
				}
				if unmatched.Supervisor != entities.SentinelUnassigned || unmatched.Zone != entities.SentinelNoZone {
					t.Fatalf("expected sentinels on unmatched order: %+v", unmatched)
				}
				if unmatched.StatusLabel != "ZZZZ" {
					t.Fatalf("unknown status must pass through, got %s", unmatched.StatusLabel)
				}
				if unmatched.DaysToAttention != nil {
					t.Fatalf("expected nil days, got %v", *unmatched.DaysToAttention)
				}
				if ds.UnmatchedCount() != 1 {
					t.Fatalf("expected 1 unmatched, got %d", ds.UnmatchedCount())
				}
				return nil
			},
		)

		if _, err := uc.Ingest(context.Background(), "bp.xlsx", content); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDatasetUseCase_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDatasetUseCase(nil, nil)
		_, err := uc.Get(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidDatasetID) {
			t.Fatalf("expected ErrInvalidDatasetID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDatasetRepository(ctrl)
		uc := NewDatasetUseCase(repo, nil)

		repo.EXPECT().FindByID(gomock.Any(), "abc").Return(nil, nil)

		_, err := uc.Get(context.Background(), "abc")
		if !errors.Is(err, ErrDatasetNotFound) {
			t.Fatalf("expected ErrDatasetNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDatasetRepository(ctrl)
		uc := NewDatasetUseCase(repo, nil)

		want := &entities.Dataset{ID: "abc"}
		repo.EXPECT().FindByID(gomock.Any(), "abc").Return(want, nil)

		ds, err := uc.Get(context.Background(), " abc ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ds != want {
			t.Fatalf("expected dataset, got %+v", ds)
		}
	})
}
