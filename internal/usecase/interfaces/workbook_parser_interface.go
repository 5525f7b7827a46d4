package interfaces

import (
	"context"

	"bp_analytics/internal/domain/entities"
)

// IWorkbookParser reads an uploaded spreadsheet into its two
// fixed-position raw sheets (orders first, supervisory reference
// second). It performs no cleaning.
type IWorkbookParser interface {
	Parse(ctx context.Context, content []byte) (entities.Workbook, error)
}
