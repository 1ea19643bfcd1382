package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeToHTTPStatus(t *testing.T) {
	tests := map[ErrorCode]int{
		ErrCodeNotFound:         http.StatusNotFound,
		ErrCodeForbidden:        http.StatusForbidden,
		ErrCodeValidation:       http.StatusBadRequest,
		ErrCodeTooLarge:         http.StatusRequestEntityTooLarge,
		ErrCodeUnsupportedMedia: http.StatusUnsupportedMediaType,
		ErrCodeRateLimit:        http.StatusTooManyRequests,
		ErrCodeInternal:         http.StatusInternalServerError,
	}
	for code, status := range tests {
		assert.Equal(t, status, New(code, "x").HTTPStatus, code)
	}
}

func TestWrap_KeepsCauseAndStack(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrCodeInternal, "внутренняя ошибка")

	assert.ErrorIs(t, err, cause)
	assert.NotEmpty(t, err.StackTrace())

	v := Validation("неверная цена", cause)
	assert.Empty(t, v.StackTrace())
	assert.True(t, IsValidation(fmt.Errorf("handler: %w", v)))
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, IsNotFound(ErrJobNotFound))
	assert.True(t, IsForbidden(ErrRoleRequired))
	assert.False(t, IsNotFound(errors.New("plain")))
}
