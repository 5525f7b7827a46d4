package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"bp_analytics/internal/domain/entities"
	"bp_analytics/internal/usecase/interfaces"
)

var (
	ErrEmptyUpload             = errors.New("uploaded file is empty")
	ErrUnreadableWorkbook      = errors.New("workbook could not be read")
	ErrMissingColumn           = errors.New("missing required column")
	ErrAmbiguousProviderColumn = errors.New("multiple provider columns")
	ErrDatasetNotFound         = errors.New("dataset not found")
	ErrInvalidDatasetID        = errors.New("invalid dataset id")
)

// IDatasetUseCase builds and resolves session datasets.
//
// Ingest is content addressed: re-presenting identical bytes returns
// the cached dataset without reprocessing.
type IDatasetUseCase interface {
	Ingest(ctx context.Context, fileName string, content []byte) (*entities.Dataset, error)
	Get(ctx context.Context, id string) (*entities.Dataset, error)
}

type DatasetUseCase struct {
	repo   interfaces.IDatasetRepository
	parser interfaces.IWorkbookParser
}

var _ IDatasetUseCase = (*DatasetUseCase)(nil)

func NewDatasetUseCase(repo interfaces.IDatasetRepository, parser interfaces.IWorkbookParser) *DatasetUseCase {
	return &DatasetUseCase{repo: repo, parser: parser}
}

func (u *DatasetUseCase) Ingest(ctx context.Context, fileName string, content []byte) (*entities.Dataset, error) {
	if len(content) == 0 {
		return nil, ErrEmptyUpload
	}

	sum := sha256.Sum256(content)
	id := hex.EncodeToString(sum[:])

	if cached, err := u.repo.FindByID(ctx, id); err != nil {
		return nil, err
	} else if cached != nil {
		log.Printf("[dataset] cache hit id=%s file=%s", shortID(id), fileName)
		return cached, nil
	}

	wb, err := u.parser.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableWorkbook, err)
	}

	reference, err := cleanReference(wb.Supervision)
	if err != nil {
		return nil, err
	}
	orders, err := cleanOrders(wb.Orders)
	if err != nil {
		return nil, err
	}

	dataset := &entities.Dataset{
		ID:         id,
		FileName:   fileName,
		UploadedAt: time.Now().UTC(),
		Orders:     enrichOrders(orders, reference),
		Reference:  reference,
	}
	if err := u.repo.Save(ctx, dataset); err != nil {
		return nil, err
	}
	log.Printf("[dataset] built id=%s file=%s orders=%d reference=%d unmatched=%d",
		shortID(id), fileName, len(dataset.Orders), len(dataset.Reference), dataset.UnmatchedCount())
	return dataset, nil
}

func (u *DatasetUseCase) Get(ctx context.Context, id string) (*entities.Dataset, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidDatasetID
	}
	dataset, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dataset == nil {
		return nil, ErrDatasetNotFound
	}
	return dataset, nil
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
