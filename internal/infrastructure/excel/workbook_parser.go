package excel

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"bp_analytics/internal/domain/entities"
	"bp_analytics/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

var (
	ErrMissingSheet = errors.New("workbook must carry the orders and supervision sheets")
	ErrEmptySheet   = errors.New("worksheet has no rows")
)

// WorkbookParser reads the daily BP export with excelize. Sheets are
// addressed by fixed position: orders first, supervisory reference
// second. No header-order independence beyond that.
type WorkbookParser struct{}

var _ interfaces.IWorkbookParser = (*WorkbookParser)(nil)

func NewWorkbookParser() *WorkbookParser {
	return &WorkbookParser{}
}

func (p *WorkbookParser) Parse(ctx context.Context, content []byte) (entities.Workbook, error) {
	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return entities.Workbook{}, err
	}
	defer func() { _ = file.Close() }()

	orders, err := readSheet(file, 0)
	if err != nil {
		return entities.Workbook{}, err
	}
	supervision, err := readSheet(file, 1)
	if err != nil {
		return entities.Workbook{}, err
	}
	return entities.Workbook{Orders: orders, Supervision: supervision}, nil
}

func readSheet(file *excelize.File, index int) (entities.RawSheet, error) {
	name := file.GetSheetName(index)
	if name == "" {
		return entities.RawSheet{}, fmt.Errorf("%w: position %d", ErrMissingSheet, index)
	}
	rows, err := file.GetRows(name)
	if err != nil {
		return entities.RawSheet{}, err
	}
	if len(rows) == 0 {
		return entities.RawSheet{}, fmt.Errorf("%w: %s", ErrEmptySheet, name)
	}
	return entities.RawSheet{Headers: rows[0], Rows: rows[1:]}, nil
}
