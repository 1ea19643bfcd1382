package repository

import (
	"context"
	"fmt"

	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
	"github.com/Nils2312/Fleksibelt-sub000/internal/repository/common"
)

var ErrApplicantNotFound = fmt.Errorf("applicant: %w", common.ErrNotFound)

type ApplicantRepository struct {
	applicants []models.Applicant
}

func NewApplicantRepository(applicants []models.Applicant) *ApplicantRepository {
	return &ApplicantRepository{applicants: applicants}
}

// ListByJobID возвращает кандидатов на вакансию.
func (r *ApplicantRepository) ListByJobID(ctx context.Context, jobID int) ([]models.Applicant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return common.FilterBy(r.applicants, func(a models.Applicant) bool {
		return a.JobID == jobID
	}), nil
}

// GetByID возвращает кандидата по ID.
func (r *ApplicantRepository) GetByID(ctx context.Context, id int) (*models.Applicant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return common.FindByID(r.applicants, id, func(a models.Applicant) int { return a.ID }, ErrApplicantNotFound)
}

func (r *ApplicantRepository) Count() int {
	return len(r.applicants)
}
