package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"bp_analytics/internal/domain/entities"
)

// Display column order for the detail table and the CSV download.
var exportHeaders = []string{
	"Orden",
	"Tipo de orden",
	"Proveedor",
	"Supervisor",
	"Centro de coste",
	"Denominación",
	"Zona",
	"Tipo Banca",
	"Texto breve de la orden",
	"Estatus",
	"Importe",
	"Importe IVA",
	"Fecha de creación",
	"Fecha de atención",
	"Fecha de realización",
	"Especialidad",
	"Texto de avería",
	"Grupo códigos",
}

const exportDateLayout = "02/01/2006"

// displayValues renders one order as its displayed column strings; the
// free-text search matches against these.
func displayValues(r *entities.EnrichedOrder) []string {
	return []string{
		r.OrderID,
		string(r.OrderType),
		r.Provider,
		r.Supervisor,
		r.CostCenter,
		r.BranchName,
		r.Zone,
		r.BankType,
		r.ShortText,
		r.StatusLabel,
		fmt.Sprintf("%.2f", r.Amount),
		fmt.Sprintf("%.2f", r.AmountTax),
		formatDate(r.CreatedAt),
		formatDate(r.AttendedAt),
		formatDate(r.CompletedAt),
		r.Specialty,
		r.FaultText,
		r.CodeGroup,
	}
}

// renderCSV writes the filtered rows as UTF-8 with BOM (Excel needs the
// BOM to pick up accented headers) under a timestamped filename.
func renderCSV(rows []entities.EnrichedOrder, now time.Time) (entities.CSVExport, error) {
	var buf bytes.Buffer
	buf.WriteString("\xef\xbb\xbf")

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return entities.CSVExport{}, err
	}
	for i := range rows {
		if err := w.Write(displayValues(&rows[i])); err != nil {
			return entities.CSVExport{}, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return entities.CSVExport{}, err
	}

	return entities.CSVExport{
		FileName: fmt.Sprintf("BP_filtrado_%s.csv", now.Format("20060102_1504")),
		Content:  buf.Bytes(),
	}, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(exportDateLayout)
}
