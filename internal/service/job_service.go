package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Nils2312/Fleksibelt-sub000/internal/jobsearch"
	"github.com/Nils2312/Fleksibelt-sub000/internal/logger"
	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
)

type JobRepository interface {
	List(ctx context.Context) ([]models.JobPosting, error)
	GetByID(ctx context.Context, id int) (*models.JobPosting, error)
}

// JobServiceConfig задаёт размер страницы и время жизни кэша.
type JobServiceConfig struct {
	PageSize   int
	ResultTTL  time.Duration
	SessionTTL time.Duration
}

// JobService выполняет поиск по вакансиям и хранит состояние выдачи
// каждой сессии.
type JobService struct {
	repo  JobRepository
	cache *CacheService
	cfg   JobServiceConfig

	// защищает View в кэше: View не потокобезопасен
	mu sync.Mutex
}

func NewJobService(repo JobRepository, cache *CacheService, cfg JobServiceConfig) *JobService {
	if cfg.PageSize <= 0 {
		cfg.PageSize = jobsearch.DefaultPageSize
	}
	return &JobService{repo: repo, cache: cache, cfg: cfg}
}

// SearchInput описывает запрос поиска. Page == 0 означает "оставить
// текущую страницу сессии".
type SearchInput struct {
	SessionID string
	Criteria  jobsearch.Criteria
	Page      int
}

// SearchResult is one page of the filtered job list.
type SearchResult struct {
	jobsearch.Page[models.JobPosting]
	Criteria  jobsearch.Criteria `json:"criteria"`
	PageReset bool               `json:"page_reset"`
}

// Search фильтрует вакансии и возвращает страницу. Если критерии сессии
// изменились, страница сбрасывается на первую, запрошенная страница при
// этом игнорируется. Без SessionID поиск не хранит состояние.
func (s *JobService) Search(ctx context.Context, in SearchInput) (*SearchResult, error) {
	criteria := in.Criteria.Normalize()

	filtered, err := s.filtered(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("job service: search: %w", err)
	}

	if in.SessionID == "" {
		view := jobsearch.NewView()
		view.Apply(criteria)
		view.SetPage(in.Page)
		return &SearchResult{
			Page:     view.Show(filtered, s.cfg.PageSize),
			Criteria: view.Criteria(),
		}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	view := s.viewFor(in.SessionID)
	reset := view.Apply(criteria)
	if !reset && in.Page > 0 {
		view.SetPage(in.Page)
	}
	page := view.Show(filtered, s.cfg.PageSize)
	s.cache.Set(SessionViewKey(in.SessionID), view, s.cfg.SessionTTL)

	if reset {
		logger.Get().WithFields(logrus.Fields{
			"session_id": in.SessionID,
			"total":      page.Total,
		}).Debug("Search criteria changed, page reset")
	}

	return &SearchResult{
		Page:      page,
		Criteria:  view.Criteria(),
		PageReset: reset,
	}, nil
}

// ClearFilters сбрасывает критерии сессии к значениям по умолчанию и
// возвращает первую страницу полной выдачи.
func (s *JobService) ClearFilters(ctx context.Context, sessionID string) (*SearchResult, error) {
	criteria := jobsearch.DefaultCriteria()
	filtered, err := s.filtered(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("job service: clear filters: %w", err)
	}

	view := jobsearch.NewView()
	if sessionID != "" {
		s.mu.Lock()
		defer s.mu.Unlock()
		view = s.viewFor(sessionID)
		view.Reset()
		s.cache.Set(SessionViewKey(sessionID), view, s.cfg.SessionTTL)
	}

	return &SearchResult{
		Page:      view.Show(filtered, s.cfg.PageSize),
		Criteria:  view.Criteria(),
		PageReset: true,
	}, nil
}

// DropSession удаляет состояние выдачи сессии.
func (s *JobService) DropSession(sessionID string) {
	if sessionID == "" {
		return
	}
	s.cache.Delete(SessionViewKey(sessionID))
}

// GetJob возвращает вакансию по ID.
func (s *JobService) GetJob(ctx context.Context, id int) (*models.JobPosting, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("job service: get job %d: %w", id, err)
	}
	return job, nil
}

// Filters возвращает значения для элементов фильтра.
func (s *JobService) Filters(ctx context.Context) (jobsearch.FacetSet, error) {
	v, err := s.cache.GetOrSet(ctx, facetsCacheKey, s.cfg.ResultTTL, func() (interface{}, error) {
		jobs, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		return jobsearch.Facets(jobs), nil
	})
	if err != nil {
		return jobsearch.FacetSet{}, fmt.Errorf("job service: filters: %w", err)
	}
	return v.(jobsearch.FacetSet), nil
}

func (s *JobService) filtered(ctx context.Context, criteria jobsearch.Criteria) ([]models.JobPosting, error) {
	v, err := s.cache.GetOrSet(ctx, SearchCacheKey(criteria.Key()), s.cfg.ResultTTL, func() (interface{}, error) {
		jobs, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		return jobsearch.Filter(jobs, criteria), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.JobPosting), nil
}

// viewFor вызывается под s.mu.
func (s *JobService) viewFor(sessionID string) *jobsearch.View {
	if v, ok := s.cache.Get(SessionViewKey(sessionID)); ok {
		return v.(*jobsearch.View)
	}
	return jobsearch.NewView()
}
