package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Nils2312/Fleksibelt-sub000/internal/config"
	"github.com/Nils2312/Fleksibelt-sub000/internal/http/handlers"
	"github.com/Nils2312/Fleksibelt-sub000/internal/http/middleware"
	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
)

// Handlers собирает все хэндлеры приложения.
type Handlers struct {
	Health       *handlers.HealthHandler
	Session      *handlers.SessionHandler
	Job          *handlers.JobHandler
	Applicant    *handlers.ApplicantHandler
	Application  *handlers.ApplicationHandler
	Review       *handlers.ReviewHandler
	CookieConfig middleware.CookieOptions
}

func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", h.Health.Health)

	api := r.Group("/api")
	api.Use(middleware.RoleMiddleware())
	api.Use(middleware.SessionMiddleware(h.CookieConfig))

	sessionGroup := api.Group("/session")
	sessionGroup.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		sessionGroup.GET("", h.Session.Get)
		sessionGroup.POST("", h.Session.Start)
		sessionGroup.DELETE("", h.Session.End)
	}

	// Публичные маршруты
	api.GET("/jobs", h.Job.ListJobs)
	api.GET("/jobs/filters", h.Job.Filters)
	api.DELETE("/jobs/filters", h.Job.ClearFilters)
	api.GET("/jobs/:id", middleware.IDValidator("id"), h.Job.GetJob)
	api.GET("/reviews", h.Review.ListReviews)

	// Только для студентов
	api.POST("/jobs/:id/applications",
		middleware.IDValidator("id"),
		middleware.RequireRole(models.RoleStudent),
		middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod),
		h.Application.Submit,
	)

	// Только для работодателей
	employer := api.Group("/jobs/:id",
		middleware.IDValidator("id"),
		middleware.RequireRole(models.RoleEmployer),
	)
	{
		employer.GET("/applicants", h.Applicant.ListApplicants)
		employer.GET("/applicants/:applicant_id", middleware.IDValidator("applicant_id"), h.Applicant.GetApplicant)
		employer.GET("/applications/:application_id", middleware.UUIDValidator("application_id"), h.Applicant.GetApplication)
	}

	return r
}
