package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
	"github.com/Nils2312/Fleksibelt-sub000/internal/repository/common"
)

var ErrApplicationNotFound = fmt.Errorf("application: %w", common.ErrNotFound)

// ApplicationRepository хранит отклики в памяти процесса. Файлы резюме
// не сохраняются, только их метаданные.
type ApplicationRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.Application
	order []uuid.UUID
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{items: make(map[uuid.UUID]models.Application)}
}

// Create сохраняет отклик, назначая ID и время создания.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	app.ID = uuid.New()
	app.CreatedAt = time.Now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[app.ID] = *app
	r.order = append(r.order, app.ID)
	return nil
}

// GetByID возвращает отклик по ID.
func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	app, ok := r.items[id]
	if !ok {
		return nil, ErrApplicationNotFound
	}
	return &app, nil
}

// ListByJobID возвращает отклики на вакансию в порядке отправки.
func (r *ApplicationRepository) ListByJobID(ctx context.Context, jobID int) ([]models.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Application, 0)
	for _, id := range r.order {
		if app := r.items[id]; app.JobID == jobID {
			out = append(out, app)
		}
	}
	return out, nil
}
