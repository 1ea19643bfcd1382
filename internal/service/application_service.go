package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Nils2312/Fleksibelt-sub000/internal/logger"
	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
	"github.com/Nils2312/Fleksibelt-sub000/internal/pkg/apperror"
	"github.com/Nils2312/Fleksibelt-sub000/internal/storage"
	"github.com/Nils2312/Fleksibelt-sub000/internal/validation"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
}

// CVSaver проверяет резюме и возвращает его метаданные.
type CVSaver interface {
	Save(ctx context.Context, originalName string, r io.Reader) (*models.CVFile, error)
	MaxBytes() int64
}

type ApplicationService struct {
	repo    ApplicationRepository
	jobs    JobLookup
	storage CVSaver
}

func NewApplicationService(repo ApplicationRepository, jobs JobLookup, storage CVSaver) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs, storage: storage}
}

// ApplicationInput данные формы отклика. CV может быть nil.
type ApplicationInput struct {
	JobID       int
	Name        string
	Email       string
	CoverLetter string
	CVName      string
	CV          io.Reader
}

// Submit проверяет форму и резюме и сохраняет отклик.
func (s *ApplicationService) Submit(ctx context.Context, in ApplicationInput) (*models.Application, error) {
	if err := validation.ValidateApplicantName(in.Name); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}
	if err := validation.ValidateCoverLetter(in.CoverLetter); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}

	if _, err := s.jobs.GetByID(ctx, in.JobID); err != nil {
		return nil, fmt.Errorf("application service: get job %d: %w", in.JobID, err)
	}

	app := &models.Application{
		JobID:       in.JobID,
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		CoverLetter: strings.TrimSpace(in.CoverLetter),
	}

	if in.CV != nil {
		cv, err := s.storage.Save(ctx, in.CVName, in.CV)
		if err != nil {
			return nil, s.mapStorageError(err)
		}
		app.CV = cv
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("application service: create: %w", err)
	}

	fields := logrus.Fields{
		"application_id": app.ID,
		"job_id":         app.JobID,
	}
	if app.CV != nil {
		fields["cv_type"] = app.CV.FileType
		fields["cv_size"] = app.CV.FileSize
	}
	logger.Get().WithFields(fields).Info("Application submitted")

	return app, nil
}

func (s *ApplicationService) mapStorageError(err error) error {
	switch {
	case errors.Is(err, storage.ErrFileTooLarge):
		return apperror.Wrap(err, apperror.ErrCodeTooLarge,
			fmt.Sprintf("размер файла превышает %d МБ", s.storage.MaxBytes()/(1024*1024)))
	case errors.Is(err, storage.ErrUnsupportedType):
		return apperror.Wrap(err, apperror.ErrCodeUnsupportedMedia,
			"неподдерживаемый тип файла. Разрешены PDF, DOCX, PNG и JPEG")
	case errors.Is(err, storage.ErrExtensionType):
		return apperror.Validation("расширение файла не соответствует его содержимому", err)
	case errors.Is(err, storage.ErrEmptyFile):
		return apperror.Validation("файл не может быть пустым", err)
	default:
		return fmt.Errorf("application service: save cv: %w", err)
	}
}
