package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Nils2312/Fleksibelt-sub000/internal/logger"
	"github.com/Nils2312/Fleksibelt-sub000/internal/pkg/apperror"
	"github.com/Nils2312/Fleksibelt-sub000/internal/repository"
	"github.com/Nils2312/Fleksibelt-sub000/internal/repository/common"
)

// ErrorHandler обрабатывает ошибки централизованно.
// Маскирует внутренние ошибки и возвращает понятные сообщения клиенту.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Проверяем, не был ли уже отправлен ответ
		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		statusCode, message := resolve(err)

		fields := logrus.Fields{
			"error":  err.Error(),
			"status": statusCode,
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && len(appErr.StackTrace()) > 0 {
			fields["stack"] = string(appErr.StackTrace())
		}

		entry := logger.Get().WithFields(fields)
		if statusCode >= http.StatusInternalServerError {
			entry.Error("Request error")
		} else {
			entry.Warn("Request error")
		}

		c.JSON(statusCode, gin.H{"error": message})
	}
}

// resolve определяет статус и сообщение для клиента.
func resolve(err error) (int, string) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			return appErr.HTTPStatus, "внутренняя ошибка сервера"
		}
		return appErr.HTTPStatus, appErr.Message
	}

	switch {
	case errors.Is(err, repository.ErrJobNotFound):
		return http.StatusNotFound, "вакансия не найдена"
	case errors.Is(err, repository.ErrApplicantNotFound):
		return http.StatusNotFound, "кандидат не найден"
	case errors.Is(err, repository.ErrApplicationNotFound):
		return http.StatusNotFound, "отклик не найден"
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, "ресурс не найден"
	}

	return http.StatusInternalServerError, "внутренняя ошибка сервера"
}
