package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/grantsphere/internal/app/models"
	"github.com/yigit/grantsphere/internal/app/repositories"
	"github.com/yigit/grantsphere/internal/catalog"
)

// ScholarshipService defines the stateless catalog queries
type ScholarshipService interface {
	GetAll(ctx context.Context) ([]*models.Scholarship, error)
	GetByID(ctx context.Context, id int64) (*models.Scholarship, error)
	Filter(ctx context.Context, sel catalog.Selection) ([]*models.Scholarship, error)
	Search(ctx context.Context, query string) ([]*models.Scholarship, error)
	Recommendations(ctx context.Context) ([]*models.Scholarship, error)
	ParseSelection(raw map[string][]string) (catalog.Selection, error)
	SearchLimit() int
	GroupSize() int
}

// ScholarshipServiceConfig tunes the catalog queries
type ScholarshipServiceConfig struct {
	SearchLimit       int
	GroupSize         int
	RecommendationIDs []int64
	Recommendations   int
}

// scholarshipServiceImpl implements ScholarshipService
type scholarshipServiceImpl struct {
	repo   *repositories.ScholarshipRepository
	cfg    ScholarshipServiceConfig
	logger zerolog.Logger
}

// NewScholarshipService creates a new ScholarshipService
func NewScholarshipService(
	repo *repositories.ScholarshipRepository,
	cfg ScholarshipServiceConfig,
	logger zerolog.Logger,
) ScholarshipService {
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = catalog.DefaultSearchLimit
	}
	if cfg.GroupSize <= 0 {
		cfg.GroupSize = catalog.DefaultGroupSize
	}
	return &scholarshipServiceImpl{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

// GetAll returns the full catalog in source order
func (s *scholarshipServiceImpl) GetAll(ctx context.Context) ([]*models.Scholarship, error) {
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving scholarships: %w", err)
	}
	return records, nil
}

// GetByID retrieves one scholarship
func (s *scholarshipServiceImpl) GetByID(ctx context.Context, id int64) (*models.Scholarship, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving scholarship %d: %w", id, err)
	}
	return rec, nil
}

// Filter applies a filter selection to the full catalog
func (s *scholarshipServiceImpl) Filter(ctx context.Context, sel catalog.Selection) ([]*models.Scholarship, error) {
	records, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := catalog.Filter(records, sel)

	s.logger.Debug().
		Int("total", len(records)).
		Int("matched", len(filtered)).
		Msg("Catalog filtered")
	return filtered, nil
}

// Search runs a name search over the full catalog
func (s *scholarshipServiceImpl) Search(ctx context.Context, query string) ([]*models.Scholarship, error) {
	records, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Search(records, query, s.cfg.SearchLimit), nil
}

// Recommendations returns the carousel input: the configured IDs when set,
// otherwise the first records of the catalog.
func (s *scholarshipServiceImpl) Recommendations(ctx context.Context) ([]*models.Scholarship, error) {
	if len(s.cfg.RecommendationIDs) > 0 {
		records, err := s.repo.GetByIDs(ctx, s.cfg.RecommendationIDs)
		if err != nil {
			return nil, fmt.Errorf("error retrieving recommendations: %w", err)
		}
		if len(records) < len(s.cfg.RecommendationIDs) {
			s.logger.Warn().
				Int("configured", len(s.cfg.RecommendationIDs)).
				Int("found", len(records)).
				Msg("Some recommended scholarships are not in the catalog")
		}
		return records, nil
	}

	records, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if n := s.cfg.Recommendations; n > 0 && n < len(records) {
		records = records[:n]
	}
	return records, nil
}

// ParseSelection validates raw category keys and drops blank values
func (s *scholarshipServiceImpl) ParseSelection(raw map[string][]string) (catalog.Selection, error) {
	sel := make(catalog.Selection, len(raw))
	for key, values := range raw {
		category, err := catalog.ParseCategory(key)
		if err != nil {
			return nil, err
		}
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				sel.Toggle(category, v, true)
			}
		}
	}
	return sel, nil
}

// SearchLimit returns the suggestion cap
func (s *scholarshipServiceImpl) SearchLimit() int {
	return s.cfg.SearchLimit
}

// GroupSize returns the carousel page size
func (s *scholarshipServiceImpl) GroupSize() int {
	return s.cfg.GroupSize
}
