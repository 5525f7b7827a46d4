package interfaces

import (
	"context"

	"bp_analytics/internal/domain/entities"
)

// IDatasetRepository is the session cache for processed datasets, keyed
// by content hash. Implementations decide the eviction policy; a lookup
// miss returns (nil, nil).
type IDatasetRepository interface {
	Save(ctx context.Context, dataset *entities.Dataset) error
	FindByID(ctx context.Context, id string) (*entities.Dataset, error)
}
