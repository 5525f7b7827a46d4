package response

import (
	"time"

	"bp_analytics/internal/domain/entities"
)

// DatasetResponse acknowledges an upload: the content-hash id is the
// handle every report endpoint takes.
type DatasetResponse struct {
	ID             string    `json:"id"`
	FileName       string    `json:"file_name"`
	UploadedAt     time.Time `json:"uploaded_at"`
	OrderCount     int       `json:"order_count"`
	ReferenceCount int       `json:"reference_count"`
	UnmatchedCount int       `json:"unmatched_count"`
}

func FromDataset(d *entities.Dataset) DatasetResponse {
	return DatasetResponse{
		ID:             d.ID,
		FileName:       d.FileName,
		UploadedAt:     d.UploadedAt,
		OrderCount:     len(d.Orders),
		ReferenceCount: len(d.Reference),
		UnmatchedCount: d.UnmatchedCount(),
	}
}
