package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Nils2312/Fleksibelt-sub000/internal/logger"
	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
	"github.com/Nils2312/Fleksibelt-sub000/internal/pkg/apperror"
)

// Session описывает "вход" пользователя: только флаг роли и ID сессии
// для состояния выдачи. Учётных данных нет.
type Session struct {
	ID   string `json:"session_id"`
	Role string `json:"role"`
}

// SessionDropper удаляет состояние, привязанное к сессии.
type SessionDropper interface {
	DropSession(sessionID string)
}

type SessionService struct {
	views SessionDropper
}

func NewSessionService(views SessionDropper) *SessionService {
	return &SessionService{views: views}
}

// Start запоминает роль. Существующий ID сессии сохраняется, иначе
// выдаётся новый.
func (s *SessionService) Start(ctx context.Context, sessionID, role string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !models.IsValidRole(role) {
		return nil, apperror.Validation(fmt.Sprintf("неизвестная роль %q", role), nil)
	}
	if sessionID == "" {
		sessionID = NewSessionID()
	}

	logger.Get().WithFields(logrus.Fields{
		"session_id": sessionID,
		"role":       role,
	}).Info("Role selected")

	return &Session{ID: sessionID, Role: role}, nil
}

// End сбрасывает роль и состояние выдачи.
func (s *SessionService) End(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.views.DropSession(sessionID)
	return nil
}

// NewSessionID генерирует ID сессии.
func NewSessionID() string {
	return uuid.NewString()
}
