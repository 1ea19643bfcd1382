package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nils2312/Fleksibelt-sub000/internal/dto"
	"github.com/Nils2312/Fleksibelt-sub000/internal/http/handlers/common"
	"github.com/Nils2312/Fleksibelt-sub000/internal/jobsearch"
	"github.com/Nils2312/Fleksibelt-sub000/internal/pkg/apperror"
	"github.com/Nils2312/Fleksibelt-sub000/internal/service"
	"github.com/Nils2312/Fleksibelt-sub000/internal/validation"
)

// JobHandler обслуживает поиск и просмотр вакансий.
type JobHandler struct {
	jobs *service.JobService
}

// NewJobHandler создаёт новый хэндлер.
func NewJobHandler(jobs *service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// ListJobs GET /api/jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	criteria, page, err := parseSearchQuery(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	res, err := h.jobs.Search(c.Request.Context(), service.SearchInput{
		SessionID: common.CurrentSessionID(c),
		Criteria:  criteria,
		Page:      page,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewJobListResponse(res))
}

// ClearFilters DELETE /api/jobs/filters
func (h *JobHandler) ClearFilters(c *gin.Context) {
	res, err := h.jobs.ClearFilters(c.Request.Context(), common.CurrentSessionID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewJobListResponse(res))
}

// Filters GET /api/jobs/filters
func (h *JobHandler) Filters(c *gin.Context) {
	facets, err := h.jobs.Filters(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, facets)
}

// GetJob GET /api/jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	job, err := h.jobs.GetJob(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// parseSearchQuery читает критерии из query string. Отсутствующие параметры
// получают значения по умолчанию, page == 0 означает "не указана".
func parseSearchQuery(c *gin.Context) (jobsearch.Criteria, int, error) {
	criteria := jobsearch.DefaultCriteria()

	criteria.Query = c.Query("q")
	if err := validation.ValidateSearchQuery(criteria.Query); err != nil {
		return criteria, 0, apperror.Validation(err.Error(), err)
	}

	if loc, ok := c.GetQuery("location"); ok {
		if err := validation.ValidateLocation(loc); err != nil {
			return criteria, 0, apperror.Validation(err.Error(), err)
		}
		criteria.Location = loc
	}
	if st, ok := c.GetQuery("salary_type"); ok {
		criteria.SalaryType = st
	}

	criteria.SelectedSkills = common.SplitList(c.Query("skills"))
	if err := validation.ValidateSkills(criteria.SelectedSkills); err != nil {
		return criteria, 0, apperror.Validation(err.Error(), err)
	}

	if v, ok, err := common.ParseStrictIntQuery(c, "price_min"); err != nil {
		return criteria, 0, apperror.Validation(err.Error(), err)
	} else if ok {
		criteria.PriceRange.Min = v
	}
	if v, ok, err := common.ParseStrictIntQuery(c, "price_max"); err != nil {
		return criteria, 0, apperror.Validation(err.Error(), err)
	} else if ok {
		criteria.PriceRange.Max = v
	}

	page, ok, err := common.ParseStrictIntQuery(c, "page")
	if err != nil {
		return criteria, 0, apperror.Validation(err.Error(), err)
	}
	if ok && page < 1 {
		return criteria, 0, apperror.Validation("параметр page должен быть не меньше 1", nil)
	}

	criteria = criteria.Normalize()
	if err := criteria.Validate(); err != nil {
		return criteria, 0, apperror.Validation(criteriaMessage(err), err)
	}

	return criteria, page, nil
}

func criteriaMessage(err error) string {
	switch {
	case errors.Is(err, jobsearch.ErrInvalidSalaryType):
		return "salary_type должен быть hourly, fixed или all"
	case errors.Is(err, jobsearch.ErrInvalidPriceRange):
		return "неверный диапазон цены: нужно 0 <= price_min <= price_max <= 100000"
	default:
		return "некорректные параметры фильтра"
	}
}
