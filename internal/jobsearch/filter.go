package jobsearch

import (
	"strings"

	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
)

// Matches проверяет вакансию по всем активным критериям (конъюнкция).
// Критерии ожидаются нормализованными.
func Matches(job models.JobPosting, c Criteria) bool {
	return matchesQuery(job, c.Query) &&
		matchesLocation(job, c.Location) &&
		matchesSalaryType(job, c.SalaryType) &&
		matchesSkills(job, c.SelectedSkills) &&
		matchesPrice(job, c)
}

// Filter returns the matching jobs in their original order.
func Filter(jobs []models.JobPosting, c Criteria) []models.JobPosting {
	c = c.Normalize()
	out := make([]models.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if Matches(job, c) {
			out = append(out, job)
		}
	}
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func matchesQuery(job models.JobPosting, q string) bool {
	if q == "" {
		return true
	}
	if containsFold(job.Title, q) || containsFold(job.Company, q) {
		return true
	}
	for _, skill := range job.Skills {
		if containsFold(skill, q) {
			return true
		}
	}
	return false
}

func matchesLocation(job models.JobPosting, loc string) bool {
	return loc == All || containsFold(job.Location, loc)
}

func matchesSalaryType(job models.JobPosting, st string) bool {
	return st == All || string(job.SalaryType) == st
}

// Достаточно совпадения хотя бы одного выбранного навыка.
func matchesSkills(job models.JobPosting, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		for _, skill := range job.Skills {
			if containsFold(skill, want) {
				return true
			}
		}
	}
	return false
}

// Цена проверяется только при выбранном типе оплаты.
func matchesPrice(job models.JobPosting, c Criteria) bool {
	if c.SalaryType == All {
		return true
	}
	p := ExtractPrice(job.Salary)
	return p >= c.PriceRange.Min && p <= c.PriceRange.Max
}
