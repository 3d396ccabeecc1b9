package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/grantsphere/internal/app/models"
	"github.com/yigit/grantsphere/internal/catalog"
	"github.com/yigit/grantsphere/internal/pkg/apperrors"
)

func ids(records []*models.Scholarship) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestScholarshipServiceDefaults(t *testing.T) {
	svc := newCatalogService(t, ScholarshipServiceConfig{})
	assert.Equal(t, catalog.DefaultSearchLimit, svc.SearchLimit())
	assert.Equal(t, catalog.DefaultGroupSize, svc.GroupSize())
}

func TestScholarshipServiceGetByID(t *testing.T) {
	svc := newCatalogService(t, ScholarshipServiceConfig{})
	ctx := context.Background()

	rec, err := svc.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Стипендия Президента Российской Федерации", rec.Name)

	_, err = svc.GetByID(ctx, 404)
	assert.True(t, errors.Is(err, apperrors.ErrScholarshipNotFound))
}

func TestScholarshipServiceFilterAndSearch(t *testing.T) {
	svc := newCatalogService(t, ScholarshipServiceConfig{SearchLimit: 2})
	ctx := context.Background()

	sel, err := svc.ParseSelection(map[string][]string{
		"educationLevel": {"Аспирантура", " "},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sel.Count(catalog.CategoryEducationLevel), "blank values are dropped")

	got, err := svc.Filter(ctx, sel)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 8, 12}, ids(got))

	found, err := svc.Search(ctx, "стипендия")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids(found))
}

func TestScholarshipServiceParseSelectionRejectsUnknownCategory(t *testing.T) {
	svc := newCatalogService(t, ScholarshipServiceConfig{})
	_, err := svc.ParseSelection(map[string][]string{"color": {"red"}})
	assert.True(t, errors.Is(err, apperrors.ErrUnknownFilterCategory))
}

func TestScholarshipServiceRecommendations(t *testing.T) {
	ctx := context.Background()

	t.Run("first records", func(t *testing.T) {
		svc := newCatalogService(t, ScholarshipServiceConfig{Recommendations: 9})
		got, err := svc.Recommendations(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}, ids(got))
	})

	t.Run("configured ids", func(t *testing.T) {
		svc := newCatalogService(t, ScholarshipServiceConfig{RecommendationIDs: []int64{12, 500, 4}})
		got, err := svc.Recommendations(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{12, 4}, ids(got))
	})

	t.Run("whole catalog when unset", func(t *testing.T) {
		svc := newCatalogService(t, ScholarshipServiceConfig{})
		got, err := svc.Recommendations(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 13)
	})
}
