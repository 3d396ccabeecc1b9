package catalog

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/yigit/grantsphere/internal/app/models"
	"github.com/yigit/grantsphere/internal/seed"
)

// loadDataset returns the embedded catalog
func loadDataset(t *testing.T) []*models.Scholarship {
	t.Helper()
	records, err := seed.LoadScholarships("", zerolog.Nop())
	require.NoError(t, err)
	require.NotEmpty(t, records)
	return records
}

func ids(records []*models.Scholarship) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func rec(id int64, name string, mutate ...func(*models.Scholarship)) *models.Scholarship {
	s := &models.Scholarship{ID: id, Name: name, Type: models.ScholarshipTypeState}
	for _, m := range mutate {
		m(s)
	}
	return s
}

func records(n int) []*models.Scholarship {
	out := make([]*models.Scholarship, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, rec(int64(i), "Стипендия"))
	}
	return out
}
