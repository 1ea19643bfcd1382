package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nils2312/Fleksibelt-sub000/internal/service"
)

type ReviewHandler struct {
	reviews *service.ReviewService
}

func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// ListReviews GET /api/reviews?company=
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	list, err := h.reviews.ListReviews(c.Request.Context(), c.Query("company"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, list)
}
