package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/grantsphere/internal/app/models"
	"github.com/yigit/grantsphere/internal/pkg/apperrors"
)

// ScholarshipRepository is the read-only record store. It is filled once at
// startup and never mutated afterwards, so it is safe for concurrent reads.
type ScholarshipRepository struct {
	records []*models.Scholarship
	byID    map[int64]*models.Scholarship
}

// NewScholarshipRepository creates a store over records, keeping their order.
// IDs must be unique.
func NewScholarshipRepository(records []*models.Scholarship) (*ScholarshipRepository, error) {
	repo := &ScholarshipRepository{
		records: make([]*models.Scholarship, 0, len(records)),
		byID:    make(map[int64]*models.Scholarship, len(records)),
	}

	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("%w: record %d is nil", apperrors.ErrDatasetInvalid, i)
		}
		if _, exists := repo.byID[rec.ID]; exists {
			return nil, fmt.Errorf("%w: %d", apperrors.ErrDuplicateID, rec.ID)
		}
		repo.byID[rec.ID] = rec
		repo.records = append(repo.records, rec)
	}

	return repo, nil
}

// GetAll returns every record in source order. The returned slice is a copy;
// the records themselves are shared and must not be modified.
func (r *ScholarshipRepository) GetAll(ctx context.Context) ([]*models.Scholarship, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*models.Scholarship, len(r.records))
	copy(out, r.records)
	return out, nil
}

// GetByID retrieves a record by ID
func (r *ScholarshipRepository) GetByID(ctx context.Context, id int64) (*models.Scholarship, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrScholarshipNotFound
	}
	return rec, nil
}

// GetByIDs retrieves records in the order of ids, skipping unknown IDs
func (r *ScholarshipRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Scholarship, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*models.Scholarship, 0, len(ids))
	for _, id := range ids {
		if rec, ok := r.byID[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Count returns the number of records
func (r *ScholarshipRepository) Count() int {
	return len(r.records)
}
