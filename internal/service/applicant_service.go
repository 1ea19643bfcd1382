package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
	"github.com/Nils2312/Fleksibelt-sub000/internal/repository"
)

type ApplicantRepository interface {
	ListByJobID(ctx context.Context, jobID int) ([]models.Applicant, error)
	GetByID(ctx context.Context, id int) (*models.Applicant, error)
}

// ApplicationSource отдаёт отклики, отправленные через сайт.
type ApplicationSource interface {
	ListByJobID(ctx context.Context, jobID int) ([]models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
}

type JobLookup interface {
	GetByID(ctx context.Context, id int) (*models.JobPosting, error)
}

type ApplicantService struct {
	repo         ApplicantRepository
	applications ApplicationSource
	jobs         JobLookup
}

func NewApplicantService(repo ApplicantRepository, applications ApplicationSource, jobs JobLookup) *ApplicantService {
	return &ApplicantService{repo: repo, applications: applications, jobs: jobs}
}

// ApplicantList кандидаты на вакансию со сводкой по статусам. Submitted
// содержит отклики, отправленные студентами через форму; они ещё не
// просмотрены и учитываются в статусе new.
type ApplicantList struct {
	Job          *models.JobPosting   `json:"job"`
	Applicants   []models.Applicant   `json:"applicants"`
	Submitted    []models.Application `json:"submitted"`
	StatusCounts map[string]int       `json:"status_counts"`
}

// ListForJob возвращает кандидатов на вакансию.
func (s *ApplicantService) ListForJob(ctx context.Context, jobID int) (*ApplicantList, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("applicant service: get job %d: %w", jobID, err)
	}

	applicants, err := s.repo.ListByJobID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("applicant service: list applicants: %w", err)
	}

	submitted, err := s.applications.ListByJobID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("applicant service: list applications: %w", err)
	}

	counts := make(map[string]int, len(models.ValidApplicantStatuses))
	for status := range models.ValidApplicantStatuses {
		counts[status] = 0
	}
	for _, a := range applicants {
		counts[a.Status]++
	}
	counts[models.ApplicantStatusNew] += len(submitted)

	return &ApplicantList{
		Job:          job,
		Applicants:   applicants,
		Submitted:    submitted,
		StatusCounts: counts,
	}, nil
}

// GetApplicant возвращает кандидата, только если он откликнулся на jobID.
func (s *ApplicantService) GetApplicant(ctx context.Context, jobID, applicantID int) (*models.Applicant, error) {
	applicant, err := s.repo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, fmt.Errorf("applicant service: get applicant %d: %w", applicantID, err)
	}
	if applicant.JobID != jobID {
		return nil, fmt.Errorf("applicant service: applicant %d for job %d: %w",
			applicantID, jobID, repository.ErrApplicantNotFound)
	}
	return applicant, nil
}

// GetApplication возвращает отправленный отклик на вакансию jobID.
func (s *ApplicantService) GetApplication(ctx context.Context, jobID int, id uuid.UUID) (*models.Application, error) {
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("applicant service: get application %s: %w", id, err)
	}
	if app.JobID != jobID {
		return nil, fmt.Errorf("applicant service: application %s for job %d: %w",
			id, jobID, repository.ErrApplicationNotFound)
	}
	return app, nil
}
