package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Nils2312/Fleksibelt-sub000/internal/http/handlers/common"
	"github.com/Nils2312/Fleksibelt-sub000/internal/service"
)

type ApplicantHandler struct {
	applicants *service.ApplicantService
}

func NewApplicantHandler(applicants *service.ApplicantService) *ApplicantHandler {
	return &ApplicantHandler{applicants: applicants}
}

// ListApplicants GET /api/jobs/:id/applicants
func (h *ApplicantHandler) ListApplicants(c *gin.Context) {
	jobID, err := common.ParseIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный job_id")
		return
	}

	list, err := h.applicants.ListForJob(c.Request.Context(), jobID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetApplicant GET /api/jobs/:id/applicants/:applicant_id
func (h *ApplicantHandler) GetApplicant(c *gin.Context) {
	jobID, err := common.ParseIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный job_id")
		return
	}
	applicantID, err := common.ParseIDParam(c, "applicant_id")
	if err != nil {
		common.RespondBadRequest(c, "неверный applicant_id")
		return
	}

	applicant, err := h.applicants.GetApplicant(c.Request.Context(), jobID, applicantID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, applicant)
}

// GetApplication GET /api/jobs/:id/applications/:application_id
func (h *ApplicantHandler) GetApplication(c *gin.Context) {
	jobID, err := common.ParseIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный job_id")
		return
	}
	id, err := uuid.Parse(c.Param("application_id"))
	if err != nil {
		common.RespondBadRequest(c, "неверный application_id")
		return
	}

	app, err := h.applicants.GetApplication(c.Request.Context(), jobID, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, app)
}
