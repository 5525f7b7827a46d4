package repository

import (
	"context"
	"sync"

	"bp_analytics/internal/domain/entities"
	"bp_analytics/internal/usecase/interfaces"
)

const defaultDatasetCacheSize = 4

// DatasetMemoryRepository is the session cache for processed datasets:
// content-hash keyed, most-recent-N eviction. There is no persistence —
// the derived table is rebuilt from the file on a cache miss.
type DatasetMemoryRepository struct {
	mu       sync.Mutex
	capacity int
	order    []string // most recent last
	items    map[string]*entities.Dataset
}

var _ interfaces.IDatasetRepository = (*DatasetMemoryRepository)(nil)

// NewDatasetMemoryRepository sizes the cache from DATASET_CACHE_SIZE.
func NewDatasetMemoryRepository() *DatasetMemoryRepository {
	return NewDatasetMemoryRepositoryWithCapacity(getenvIntDefault("DATASET_CACHE_SIZE", defaultDatasetCacheSize))
}

func NewDatasetMemoryRepositoryWithCapacity(capacity int) *DatasetMemoryRepository {
	if capacity < 1 {
		capacity = 1
	}
	return &DatasetMemoryRepository{
		capacity: capacity,
		items:    make(map[string]*entities.Dataset),
	}
}

func (r *DatasetMemoryRepository) Save(ctx context.Context, dataset *entities.Dataset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[dataset.ID]; ok {
		r.items[dataset.ID] = dataset
		r.touch(dataset.ID)
		return nil
	}

	r.items[dataset.ID] = dataset
	r.order = append(r.order, dataset.ID)
	for len(r.order) > r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.items, oldest)
	}
	return nil
}

func (r *DatasetMemoryRepository) FindByID(ctx context.Context, id string) (*entities.Dataset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dataset, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	r.touch(id)
	return dataset, nil
}

// touch moves id to the most-recent end of the eviction order.
func (r *DatasetMemoryRepository) touch(id string) {
	for i, v := range r.order {
		if v == id {
			r.order = append(append(r.order[:i:i], r.order[i+1:]...), id)
			return
		}
	}
}
