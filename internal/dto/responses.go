package dto

import (
	"github.com/Nils2312/Fleksibelt-sub000/internal/jobsearch"
	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
	"github.com/Nils2312/Fleksibelt-sub000/internal/service"
)

// JobListResponse represents one page of filtered jobs
type JobListResponse struct {
	Items     []models.JobPosting `json:"items"`
	Page      int                 `json:"page"`
	PageCount int                 `json:"page_count"`
	PageSize  int                 `json:"page_size"`
	Total     int                 `json:"total"`
	HasMore   bool                `json:"has_more"`
	PageReset bool                `json:"page_reset"`
	Criteria  jobsearch.Criteria  `json:"criteria"`
}

// NewJobListResponse creates a JobListResponse from a search result
func NewJobListResponse(res *service.SearchResult) *JobListResponse {
	return &JobListResponse{
		Items:     res.Items,
		Page:      res.Page.Page,
		PageCount: res.PageCount,
		PageSize:  res.PageSize,
		Total:     res.Total,
		HasMore:   res.Page.Page < res.PageCount,
		PageReset: res.PageReset,
		Criteria:  res.Criteria,
	}
}

// SessionResponse represents the caller's role state
type SessionResponse struct {
	Role      string `json:"role"`
	SessionID string `json:"session_id,omitempty"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
