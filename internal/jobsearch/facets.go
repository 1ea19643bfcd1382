package jobsearch

import (
	"strings"

	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
)

// FacetSet содержит значения для выпадающих списков и чипов фильтра.
type FacetSet struct {
	Locations   []string   `json:"locations"`
	Skills      []string   `json:"skills"`
	SalaryTypes []string   `json:"salary_types"`
	PriceRange  PriceRange `json:"price_range"`
}

// Facets collects distinct locations and skills in first-seen order.
// Duplicates are detected case-insensitively.
func Facets(jobs []models.JobPosting) FacetSet {
	fs := FacetSet{
		Locations:   []string{},
		Skills:      []string{},
		SalaryTypes: []string{string(models.SalaryTypeHourly), string(models.SalaryTypeFixed)},
		PriceRange:  PriceRange{Min: PriceFloor, Max: PriceCeiling},
	}
	seenLoc := make(map[string]struct{})
	seenSkill := make(map[string]struct{})
	for _, job := range jobs {
		if k := strings.ToLower(job.Location); k != "" {
			if _, ok := seenLoc[k]; !ok {
				seenLoc[k] = struct{}{}
				fs.Locations = append(fs.Locations, job.Location)
			}
		}
		for _, s := range job.Skills {
			k := strings.ToLower(s)
			if _, ok := seenSkill[k]; ok {
				continue
			}
			seenSkill[k] = struct{}{}
			fs.Skills = append(fs.Skills, s)
		}
	}
	return fs
}
