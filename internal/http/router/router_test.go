package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Nils2312/Fleksibelt-sub000/internal/config"
	"github.com/Nils2312/Fleksibelt-sub000/internal/fixtures"
	"github.com/Nils2312/Fleksibelt-sub000/internal/http/handlers"
	"github.com/Nils2312/Fleksibelt-sub000/internal/http/middleware"
	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
	"github.com/Nils2312/Fleksibelt-sub000/internal/repository"
	"github.com/Nils2312/Fleksibelt-sub000/internal/service"
	"github.com/Nils2312/Fleksibelt-sub000/internal/storage"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:             "test",
		AllowedOrigins:  []string{"http://localhost:3000"},
		RateLimitLimit:  100,
		RateLimitPeriod: time.Minute,
	}
	set := fixtures.MustLoad("")
	jobRepo := repository.NewJobRepository(set.Jobs)
	applicationRepo := repository.NewApplicationRepository()
	cache := service.NewCacheService(context.Background(), 0)
	jobs := service.NewJobService(jobRepo, cache, service.JobServiceConfig{PageSize: 15, ResultTTL: time.Minute, SessionTTL: time.Hour})
	cvs := storage.NewCVStorage(1)
	cookies := middleware.CookieOptions{MaxAge: time.Hour}

	return SetupRouter(cfg, Handlers{
		Health:       handlers.NewHealthHandler(map[string]handlers.Counter{"jobs": jobRepo}),
		Session:      handlers.NewSessionHandler(service.NewSessionService(jobs), cookies),
		Job:          handlers.NewJobHandler(jobs),
		Applicant:    handlers.NewApplicantHandler(service.NewApplicantService(repository.NewApplicantRepository(set.Applicants), applicationRepo, jobRepo)),
		Application:  handlers.NewApplicationHandler(service.NewApplicationService(applicationRepo, jobRepo, cvs), cvs.MaxBytes()),
		Review:       handlers.NewReviewHandler(service.NewReviewService(repository.NewReviewRepository(set.Reviews))),
		CookieConfig: cookies,
	})
}

func TestSetupRouter_Routes(t *testing.T) {
	r := newEngine(t)
	employer := &http.Cookie{Name: middleware.RoleCookie, Value: models.RoleEmployer}

	tests := []struct {
		method string
		path   string
		cookie *http.Cookie
		want   int
	}{
		{"GET", "/health", nil, http.StatusOK},
		{"GET", "/api/jobs", nil, http.StatusOK},
		{"GET", "/api/jobs/filters", nil, http.StatusOK},
		{"GET", "/api/jobs/1", nil, http.StatusOK},
		{"GET", "/api/jobs/0", nil, http.StatusBadRequest},
		{"GET", "/api/reviews", nil, http.StatusOK},
		{"GET", "/api/jobs/1/applicants", nil, http.StatusUnauthorized},
		{"GET", "/api/jobs/1/applicants", employer, http.StatusOK},
		{"GET", "/api/jobs/1/applicants/1", employer, http.StatusOK},
		{"GET", "/api/jobs/1/applicants/abc", employer, http.StatusBadRequest},
		{"GET", "/api/jobs/1/applications/not-a-uuid", employer, http.StatusBadRequest},
		{"GET", "/api/jobs/1/applications/6f1c2a34-1111-4c3b-9d2e-000000000000", employer, http.StatusNotFound},
		{"POST", "/api/jobs/1/applications", employer, http.StatusForbidden},
	}
	for _, tt := range tests {
		req, _ := http.NewRequest(tt.method, tt.path, nil)
		if tt.cookie != nil {
			req.AddCookie(tt.cookie)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, tt.want, w.Code, tt.method+" "+tt.path)
	}
}

func TestSetupRouter_CORS(t *testing.T) {
	r := newEngine(t)

	req, _ := http.NewRequest("OPTIONS", "/api/jobs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req, _ = http.NewRequest("GET", "/api/jobs", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
