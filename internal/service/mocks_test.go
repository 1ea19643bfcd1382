package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
)

type mockJobRepo struct {
	mock.Mock
}

func (m *mockJobRepo) List(ctx context.Context) ([]models.JobPosting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobPosting), args.Error(1)
}

func (m *mockJobRepo) GetByID(ctx context.Context, id int) (*models.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobPosting), args.Error(1)
}

type mockApplicantRepo struct {
	mock.Mock
}

func (m *mockApplicantRepo) ListByJobID(ctx context.Context, jobID int) ([]models.Applicant, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).([]models.Applicant), args.Error(1)
}

func (m *mockApplicantRepo) GetByID(ctx context.Context, id int) (*models.Applicant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Applicant), args.Error(1)
}

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) List(ctx context.Context) ([]models.Review, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *mockReviewRepo) ListByCompany(ctx context.Context, company string) ([]models.Review, error) {
	args := m.Called(ctx, company)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *mockReviewRepo) GetAverageRating(ctx context.Context, company string) (float64, int, error) {
	args := m.Called(ctx, company)
	return args.Get(0).(float64), args.Int(1), args.Error(2)
}

type mockApplicationRepo struct {
	mock.Mock
}

func (m *mockApplicationRepo) Create(ctx context.Context, app *models.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *mockApplicationRepo) ListByJobID(ctx context.Context, jobID int) ([]models.Application, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *mockApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

type mockCVSaver struct {
	mock.Mock
}

func (m *mockCVSaver) Save(ctx context.Context, originalName string, r io.Reader) (*models.CVFile, error) {
	args := m.Called(ctx, originalName, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CVFile), args.Error(1)
}

func (m *mockCVSaver) MaxBytes() int64 {
	return int64(m.Called().Int(0))
}

type mockSessionDropper struct {
	mock.Mock
}

func (m *mockSessionDropper) DropSession(sessionID string) {
	m.Called(sessionID)
}
