package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
	"github.com/Nils2312/Fleksibelt-sub000/internal/pkg/apperror"
	"github.com/Nils2312/Fleksibelt-sub000/internal/repository"
	"github.com/Nils2312/Fleksibelt-sub000/internal/storage"
)

func validInput() ApplicationInput {
	return ApplicationInput{
		JobID:       1,
		Name:        "Ingrid Hansen",
		Email:       "Ingrid.Hansen@student.uio.no",
		CoverLetter: "Jeg studerer informatikk og har jobbet med React i to år.",
	}
}

func TestApplicationService_Submit_Success(t *testing.T) {
	repo := new(mockApplicationRepo)
	jobs := new(mockJobRepo)
	cvs := new(mockCVSaver)
	svc := NewApplicationService(repo, jobs, cvs)
	ctx := context.Background()

	in := validInput()
	in.CVName = "cv.pdf"
	in.CV = strings.NewReader("%PDF-1.4")

	jobs.On("GetByID", ctx, 1).Return(&models.JobPosting{ID: 1}, nil)
	cvs.On("Save", ctx, "cv.pdf", in.CV).Return(&models.CVFile{FileName: "cv.pdf", FileType: "application/pdf", FileSize: 8}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*models.Application")).Return(nil)

	app, err := svc.Submit(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "ingrid.hansen@student.uio.no", app.Email)
	require.NotNil(t, app.CV)
	assert.Equal(t, "application/pdf", app.CV.FileType)
	repo.AssertExpectations(t)
}

func TestApplicationService_Submit_ValidationErrors(t *testing.T) {
	svc := NewApplicationService(new(mockApplicationRepo), new(mockJobRepo), new(mockCVSaver))
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*ApplicationInput)
	}{
		{"empty name", func(in *ApplicationInput) { in.Name = "" }},
		{"bad email", func(in *ApplicationInput) { in.Email = "ingrid" }},
		{"short letter", func(in *ApplicationInput) { in.CoverLetter = "hei" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := svc.Submit(ctx, in)
			assert.True(t, apperror.IsValidation(err), err)
		})
	}
}

func TestApplicationService_Submit_UnknownJob(t *testing.T) {
	jobs := new(mockJobRepo)
	svc := NewApplicationService(new(mockApplicationRepo), jobs, new(mockCVSaver))
	ctx := context.Background()

	jobs.On("GetByID", ctx, 1).Return(nil, repository.ErrJobNotFound)

	_, err := svc.Submit(ctx, validInput())
	assert.ErrorIs(t, err, repository.ErrJobNotFound)
}

func TestApplicationService_Submit_CVTooLarge(t *testing.T) {
	repo := new(mockApplicationRepo)
	jobs := new(mockJobRepo)
	cvs := new(mockCVSaver)
	svc := NewApplicationService(repo, jobs, cvs)
	ctx := context.Background()

	in := validInput()
	in.CVName = "cv.pdf"
	in.CV = strings.NewReader("big")

	jobs.On("GetByID", ctx, 1).Return(&models.JobPosting{ID: 1}, nil)
	cvs.On("Save", ctx, "cv.pdf", in.CV).Return(nil, storage.ErrFileTooLarge)
	cvs.On("MaxBytes").Return(5 * 1024 * 1024)

	_, err := svc.Submit(ctx, in)
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.ErrCodeTooLarge, appErr.Code)
	assert.Contains(t, appErr.Message, "5 МБ")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationService_Submit_CVUnsupported(t *testing.T) {
	jobs := new(mockJobRepo)
	cvs := new(mockCVSaver)
	svc := NewApplicationService(new(mockApplicationRepo), jobs, cvs)
	ctx := context.Background()

	in := validInput()
	in.CVName = "cv.txt"
	in.CV = strings.NewReader("text")

	jobs.On("GetByID", ctx, 1).Return(&models.JobPosting{ID: 1}, nil)
	cvs.On("Save", ctx, "cv.txt", in.CV).Return(nil, storage.ErrUnsupportedType)

	_, err := svc.Submit(ctx, in)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.ErrCodeUnsupportedMedia, appErr.Code)
}
