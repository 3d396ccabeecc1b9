package repositories

import (
	"github.com/yigit/grantsphere/internal/app/models"
)

// Repositories holds all the repository instances
type Repositories struct {
	ScholarshipRepository *ScholarshipRepository
}

// NewRepositories initializes all repositories from the loaded dataset
func NewRepositories(records []*models.Scholarship) (*Repositories, error) {
	scholarshipRepo, err := NewScholarshipRepository(records)
	if err != nil {
		return nil, err
	}
	return &Repositories{
		ScholarshipRepository: scholarshipRepo,
	}, nil
}
