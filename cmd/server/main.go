package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Nils2312/Fleksibelt-sub000/internal/config"
	"github.com/Nils2312/Fleksibelt-sub000/internal/fixtures"
	"github.com/Nils2312/Fleksibelt-sub000/internal/goroutine"
	httpHandlers "github.com/Nils2312/Fleksibelt-sub000/internal/http/handlers"
	"github.com/Nils2312/Fleksibelt-sub000/internal/http/middleware"
	httpRouter "github.com/Nils2312/Fleksibelt-sub000/internal/http/router"
	"github.com/Nils2312/Fleksibelt-sub000/internal/logger"
	"github.com/Nils2312/Fleksibelt-sub000/internal/repository"
	"github.com/Nils2312/Fleksibelt-sub000/internal/service"
	"github.com/Nils2312/Fleksibelt-sub000/internal/storage"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	if cfg.Env == "development" {
		logger.Init("debug")
		logger.SetTextFormatter()
	} else {
		logger.Init(cfg.LogLevel)
	}

	// Фикстуры.
	set, err := fixtures.Load(cfg.FixturesPath)
	if err != nil {
		log.Fatalf("main: ошибка загрузки фикстур: %v", err)
	}
	logger.Log.WithFields(logrus.Fields{
		"jobs":       len(set.Jobs),
		"applicants": len(set.Applicants),
		"reviews":    len(set.Reviews),
	}).Info("Fixtures loaded")

	// Репозитории.
	jobRepo := repository.NewJobRepository(set.Jobs)
	applicantRepo := repository.NewApplicantRepository(set.Applicants)
	reviewRepo := repository.NewReviewRepository(set.Reviews)
	applicationRepo := repository.NewApplicationRepository()

	// Вспомогательные сервисы.
	cache := service.NewCacheService(ctx, time.Minute)
	cvStorage := storage.NewCVStorage(cfg.MaxCVSizeMB)

	// Сервисы.
	jobService := service.NewJobService(jobRepo, cache, service.JobServiceConfig{
		PageSize:   cfg.PageSize,
		ResultTTL:  cfg.SearchCacheTTL,
		SessionTTL: cfg.SessionTTL,
	})
	sessionService := service.NewSessionService(jobService)
	applicantService := service.NewApplicantService(applicantRepo, applicationRepo, jobRepo)
	reviewService := service.NewReviewService(reviewRepo)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, cvStorage)

	cookies := middleware.CookieOptions{
		MaxAge: cfg.SessionTTL,
		Secure: cfg.IsProduction(),
	}

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, httpRouter.Handlers{
		Health: httpHandlers.NewHealthHandler(map[string]httpHandlers.Counter{
			"jobs":       jobRepo,
			"applicants": applicantRepo,
			"reviews":    reviewRepo,
		}),
		Session:      httpHandlers.NewSessionHandler(sessionService, cookies),
		Job:          httpHandlers.NewJobHandler(jobService),
		Applicant:    httpHandlers.NewApplicantHandler(applicantService),
		Application:  httpHandlers.NewApplicationHandler(applicationService, cvStorage.MaxBytes()),
		Review:       httpHandlers.NewReviewHandler(reviewService),
		CookieConfig: cookies,
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.Go(ctx, "http-shutdown", func(ctx context.Context) {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	})

	logger.Log.Infof("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}
