package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nils2312/Fleksibelt-sub000/internal/dto"
	"github.com/Nils2312/Fleksibelt-sub000/internal/http/handlers/common"
	"github.com/Nils2312/Fleksibelt-sub000/internal/pkg/apperror"
	"github.com/Nils2312/Fleksibelt-sub000/internal/service"
)

// запас на поля формы и заголовки multipart
const formOverheadBytes = 1 << 20

// ApplicationHandler принимает отклики студентов.
type ApplicationHandler struct {
	applications *service.ApplicationService
	maxCVBytes   int64
}

// NewApplicationHandler создаёт новый хэндлер.
func NewApplicationHandler(applications *service.ApplicationService, maxCVBytes int64) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, maxCVBytes: maxCVBytes}
}

// Submit POST /api/jobs/:id/applications
func (h *ApplicationHandler) Submit(c *gin.Context) {
	jobID, err := common.ParseIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный job_id")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxCVBytes+formOverheadBytes)

	var form dto.ApplicationForm
	if err := c.ShouldBind(&form); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			_ = c.Error(apperror.Wrap(err, apperror.ErrCodeTooLarge,
				fmt.Sprintf("размер файла превышает %d МБ", h.maxCVBytes/(1024*1024))))
			return
		}
		common.RespondBadRequest(c, "поля name, email и cover_letter обязательны")
		return
	}

	in := service.ApplicationInput{
		JobID:       jobID,
		Name:        form.Name,
		Email:       form.Email,
		CoverLetter: form.CoverLetter,
	}

	file, err := c.FormFile("cv")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		common.RespondBadRequest(c, "не удалось прочитать файл cv")
		return
	default:
		src, err := file.Open()
		if err != nil {
			_ = c.Error(apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось открыть файл"))
			return
		}
		defer src.Close()
		in.CVName = file.Filename
		in.CV = io.Reader(src)
	}

	app, err := h.applications.Submit(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, app)
}
