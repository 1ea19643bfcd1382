package jobsearch

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
)

// All означает отсутствие ограничения по полю.
const All = "all"

// Границы ползунка цены.
const (
	PriceFloor   = 0
	PriceCeiling = 100000
)

var (
	ErrInvalidSalaryType = errors.New("jobsearch: invalid salary type")
	ErrInvalidPriceRange = errors.New("jobsearch: invalid price range")
)

// PriceRange задаёт включительный диапазон цены.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Criteria is the set of user-selected search parameters applied to the job list.
type Criteria struct {
	Query          string     `json:"query"`
	Location       string     `json:"location"`
	SalaryType     string     `json:"salary_type"`
	SelectedSkills []string   `json:"selected_skills"`
	PriceRange     PriceRange `json:"price_range"`
}

// DefaultCriteria возвращает критерии, при которых фильтр пропускает все вакансии.
func DefaultCriteria() Criteria {
	return Criteria{
		Location:       All,
		SalaryType:     All,
		SelectedSkills: []string{},
		PriceRange:     PriceRange{Min: PriceFloor, Max: PriceCeiling},
	}
}

// Normalize приводит критерии к каноническому виду: пустые location и
// salary_type становятся "all", навыки обрезаются и дедуплицируются без
// учёта регистра с сохранением первого вхождения.
func (c Criteria) Normalize() Criteria {
	out := c
	out.Location = strings.TrimSpace(c.Location)
	if out.Location == "" || strings.EqualFold(out.Location, All) {
		out.Location = All
	}
	out.SalaryType = strings.ToLower(strings.TrimSpace(c.SalaryType))
	if out.SalaryType == "" {
		out.SalaryType = All
	}

	seen := make(map[string]struct{}, len(c.SelectedSkills))
	skills := make([]string, 0, len(c.SelectedSkills))
	for _, s := range c.SelectedSkills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, s)
	}
	out.SelectedSkills = skills
	return out
}

// Validate проверяет, что значения лежат в закрытых множествах.
func (c Criteria) Validate() error {
	if c.SalaryType != All {
		if _, ok := models.ValidSalaryTypes[models.SalaryType(c.SalaryType)]; !ok {
			return fmt.Errorf("%w: %q", ErrInvalidSalaryType, c.SalaryType)
		}
	}
	r := c.PriceRange
	if r.Min < PriceFloor || r.Max > PriceCeiling || r.Min > r.Max {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidPriceRange, r.Min, r.Max)
	}
	return nil
}

// Equal сравнивает критерии так же, как Key: location и навыки без учёта
// регистра, навыки как множество.
func (c Criteria) Equal(other Criteria) bool {
	if c.Query != other.Query ||
		!strings.EqualFold(c.Location, other.Location) ||
		c.SalaryType != other.SalaryType ||
		c.PriceRange != other.PriceRange {
		return false
	}
	return skillsKey(c.SelectedSkills) == skillsKey(other.SelectedSkills)
}

// Key возвращает стабильный ключ критериев для кэша.
func (c Criteria) Key() string {
	return fmt.Sprintf("q=%q|loc=%q|st=%q|sk=%q|p=%d-%d",
		c.Query, strings.ToLower(c.Location), c.SalaryType,
		skillsKey(c.SelectedSkills), c.PriceRange.Min, c.PriceRange.Max)
}

// IsDefault reports whether the criteria leave the job list unfiltered.
func (c Criteria) IsDefault() bool {
	return c.Normalize().Equal(DefaultCriteria())
}

func skillsKey(skills []string) string {
	keys := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		k := strings.ToLower(strings.TrimSpace(s))
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, "\x1f")
}
