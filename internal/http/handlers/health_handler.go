package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Counter отдаёт количество загруженных записей.
type Counter interface {
	Count() int
}

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	sources map[string]Counter
}

// NewHealthHandler создаёт новый health handler.
func NewHealthHandler(sources map[string]Counter) *HealthHandler {
	return &HealthHandler{sources: sources}
}

// HealthResponse представляет ответ health check.
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Fixtures  map[string]int `json:"fixtures"`
}

// Health обрабатывает GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	counts := make(map[string]int, len(h.sources))
	status := "healthy"

	for name, src := range h.sources {
		counts[name] = src.Count()
	}
	// без вакансий поиск бесполезен
	if counts["jobs"] == 0 {
		status = "unhealthy"
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Fixtures:  counts,
	})
}
