package models

import (
	"time"

	"github.com/google/uuid"
)

// Applicant описывает студента, откликнувшегося на вакансию.
type Applicant struct {
	ID         int      `yaml:"id" json:"id"`
	JobID      int      `yaml:"job_id" json:"job_id"`
	Name       string   `yaml:"name" json:"name"`
	Email      string   `yaml:"email" json:"email"`
	University string   `yaml:"university" json:"university"`
	Programme  string   `yaml:"programme" json:"programme"`
	Year       int      `yaml:"year" json:"year"`
	Skills     []string `yaml:"skills" json:"skills"`
	Status     string   `yaml:"status" json:"status"`
	AppliedAt  string   `yaml:"applied_at" json:"applied_at"`
	Rating     float64  `yaml:"rating" json:"rating"`
}

// Review описывает отзыв работодателя о выполненной студентом работе.
type Review struct {
	ID       int    `yaml:"id" json:"id"`
	Company  string `yaml:"company" json:"company"`
	Student  string `yaml:"student" json:"student"`
	JobTitle string `yaml:"job_title" json:"job_title"`
	Rating   int    `yaml:"rating" json:"rating"`
	Comment  string `yaml:"comment" json:"comment"`
	Date     string `yaml:"date" json:"date"`
}

// CVFile содержит метаданные загруженного резюме. Сам файл не сохраняется.
type CVFile struct {
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
}

// Application описывает отклик студента, отправленный через форму.
type Application struct {
	ID          uuid.UUID `json:"id"`
	JobID       int       `json:"job_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CoverLetter string    `json:"cover_letter"`
	CV          *CVFile   `json:"cv,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
