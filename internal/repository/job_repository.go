package repository

import (
	"context"
	"fmt"

	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
	"github.com/Nils2312/Fleksibelt-sub000/internal/repository/common"
)

var ErrJobNotFound = fmt.Errorf("job: %w", common.ErrNotFound)

// JobRepository отдаёт вакансии из фикстур. Данные только для чтения.
type JobRepository struct {
	jobs []models.JobPosting
}

func NewJobRepository(jobs []models.JobPosting) *JobRepository {
	return &JobRepository{jobs: jobs}
}

// List возвращает все вакансии в порядке фикстур.
func (r *JobRepository) List(ctx context.Context) ([]models.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return common.Clone(r.jobs), nil
}

// GetByID возвращает вакансию по ID.
func (r *JobRepository) GetByID(ctx context.Context, id int) (*models.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return common.FindByID(r.jobs, id, jobID, ErrJobNotFound)
}

// Count returns the number of loaded jobs.
func (r *JobRepository) Count() int {
	return len(r.jobs)
}

func jobID(j models.JobPosting) int { return j.ID }
