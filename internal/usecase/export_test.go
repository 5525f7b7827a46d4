package usecase

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"bp_analytics/internal/domain/entities"
)

func TestRenderCSV(t *testing.T) {
	created := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	rows := []entities.EnrichedOrder{
		{
			WorkOrder: entities.WorkOrder{
				OrderID: "40001", Provider: "ACME", CostCenter: "MX111001",
				Amount: 1500.5, AmountTax: 240.08, ShortText: "Cambio de compresor",
				BranchName: "SUC CENTRO", CreatedAt: &created,
			},
			OrderType: entities.OrderTypeCorrective, StatusLabel: "Realizado",
			Supervisor: "PEREZ", Zone: "NE-1", BankType: "COMERCIAL", Specialty: "CLIMA",
		},
	}

	now := time.Date(2024, 3, 10, 9, 45, 0, 0, time.UTC)
	export, err := renderCSV(rows, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if export.FileName != "BP_filtrado_20240310_0945.csv" {
		t.Fatalf("unexpected filename: %s", export.FileName)
	}
	if !bytes.HasPrefix(export.Content, []byte("\xef\xbb\xbf")) {
		t.Fatalf("expected UTF-8 BOM prefix")
	}

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(export.Content, []byte("\xef\xbb\xbf"))))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}
	if records[0][0] != "Orden" || records[0][5] != "Denominación" {
		t.Fatalf("unexpected headers: %v", records[0])
	}
	if len(records[1]) != len(exportHeaders) {
		t.Fatalf("row width %d does not match header width %d", len(records[1]), len(exportHeaders))
	}

	row := strings.Join(records[1], "|")
	for _, want := range []string{"40001", "Correctivo", "Realizado", "1500.50", "05/03/2024"} {
		if !strings.Contains(row, want) {
			t.Fatalf("expected %q in row %q", want, row)
		}
	}
}

func TestRenderCSV_Empty(t *testing.T) {
	export, err := renderCSV(nil, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(export.Content, []byte("\xef\xbb\xbf"))))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only, got %d records", len(records))
	}
}
