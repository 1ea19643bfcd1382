// Package fixtures загружает статические данные маркетплейса: вакансии,
// кандидатов и отзывы. Данные встроены в бинарник, каталог FIXTURES_PATH
// может переопределить любой из файлов.
package fixtures

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	jobsFile       = "jobs.yaml"
	applicantsFile = "applicants.yaml"
	reviewsFile    = "reviews.yaml"
)

var ErrInvalidFixture = errors.New("fixtures: invalid data")

// Set содержит все загруженные фикстуры.
type Set struct {
	Jobs       []models.JobPosting
	Applicants []models.Applicant
	Reviews    []models.Review
}

type jobsDoc struct {
	Jobs []models.JobPosting `yaml:"jobs"`
}

type applicantsDoc struct {
	Applicants []models.Applicant `yaml:"applicants"`
}

type reviewsDoc struct {
	Reviews []models.Review `yaml:"reviews"`
}

// Load читает фикстуры. Пустой dir означает только встроенные данные.
func Load(dir string) (*Set, error) {
	jobs, err := loadYAML[jobsDoc](dir, jobsFile)
	if err != nil {
		return nil, err
	}
	applicants, err := loadYAML[applicantsDoc](dir, applicantsFile)
	if err != nil {
		return nil, err
	}
	reviews, err := loadYAML[reviewsDoc](dir, reviewsFile)
	if err != nil {
		return nil, err
	}

	set := &Set{
		Jobs:       jobs.Jobs,
		Applicants: applicants.Applicants,
		Reviews:    reviews.Reviews,
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(dir string) *Set {
	set, err := Load(dir)
	if err != nil {
		panic(err)
	}
	return set
}

// loadYAML читает файл name из dir, если он там есть, иначе встроенную копию.
func loadYAML[T any](dir, name string) (*T, error) {
	data, err := readFile(dir, name)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := yaml.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("fixtures: parse %s: %w", name, err)
	}
	return out, nil
}

func readFile(dir, name string) ([]byte, error) {
	if dir != "" {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("fixtures: read %s: %w", path, err)
		}
	}
	data, err := embedded.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("fixtures: read embedded %s: %w", name, err)
	}
	return data, nil
}

// Validate проверяет целостность данных.
func (s *Set) Validate() error {
	jobIDs := make(map[int]struct{}, len(s.Jobs))
	for _, j := range s.Jobs {
		if j.ID <= 0 {
			return fmt.Errorf("%w: job id %d", ErrInvalidFixture, j.ID)
		}
		if _, dup := jobIDs[j.ID]; dup {
			return fmt.Errorf("%w: duplicate job id %d", ErrInvalidFixture, j.ID)
		}
		jobIDs[j.ID] = struct{}{}
		if j.Title == "" {
			return fmt.Errorf("%w: job %d has no title", ErrInvalidFixture, j.ID)
		}
		if _, ok := models.ValidSalaryTypes[j.SalaryType]; !ok {
			return fmt.Errorf("%w: job %d salary type %q", ErrInvalidFixture, j.ID, j.SalaryType)
		}
	}

	applicantIDs := make(map[int]struct{}, len(s.Applicants))
	for _, a := range s.Applicants {
		if _, dup := applicantIDs[a.ID]; dup {
			return fmt.Errorf("%w: duplicate applicant id %d", ErrInvalidFixture, a.ID)
		}
		applicantIDs[a.ID] = struct{}{}
		if _, ok := jobIDs[a.JobID]; !ok {
			return fmt.Errorf("%w: applicant %d references unknown job %d", ErrInvalidFixture, a.ID, a.JobID)
		}
		if _, ok := models.ValidApplicantStatuses[a.Status]; !ok {
			return fmt.Errorf("%w: applicant %d status %q", ErrInvalidFixture, a.ID, a.Status)
		}
	}

	reviewIDs := make(map[int]struct{}, len(s.Reviews))
	for _, r := range s.Reviews {
		if _, dup := reviewIDs[r.ID]; dup {
			return fmt.Errorf("%w: duplicate review id %d", ErrInvalidFixture, r.ID)
		}
		reviewIDs[r.ID] = struct{}{}
		if r.Rating < 1 || r.Rating > 5 {
			return fmt.Errorf("%w: review %d rating %d", ErrInvalidFixture, r.ID, r.Rating)
		}
	}
	return nil
}
