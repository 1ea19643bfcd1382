package apperror

import (
	"errors"
	"fmt"
	"net/http"

	goerrors "github.com/go-errors/errors"
)

type ErrorCode string

const (
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeForbidden        ErrorCode = "FORBIDDEN"
	ErrCodeBadRequest       ErrorCode = "BAD_REQUEST"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrCodeTooLarge         ErrorCode = "PAYLOAD_TOO_LARGE"
	ErrCodeUnsupportedMedia ErrorCode = "UNSUPPORTED_MEDIA_TYPE"
	ErrCodeRateLimit        ErrorCode = "RATE_LIMIT"
)

type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
	Stack      []byte
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// StackTrace возвращает стек вызовов, сохранённый для внутренних ошибок.
func (e *AppError) StackTrace() []byte {
	return e.Stack
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

// Wrap оборачивает причину. Для внутренних ошибок сохраняется стек.
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
	if code == ErrCodeInternal && err != nil {
		var stackErr *goerrors.Error
		if errors.As(err, &stackErr) {
			appErr.Stack = stackErr.Stack()
		} else {
			appErr.Stack = goerrors.Wrap(err, 1).Stack()
		}
	}
	return appErr
}

// Validation создаёт ошибку валидации с сообщением для клиента.
func Validation(message string, cause error) *AppError {
	return Wrap(cause, ErrCodeValidation, message)
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeBadRequest, ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrCodeUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	case ErrCodeRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeNotFound
}

func IsForbidden(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeForbidden
}

func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeValidation
}

var (
	ErrJobNotFound    = New(ErrCodeNotFound, "вакансия не найдена")
	ErrForbidden      = New(ErrCodeForbidden, "недостаточно прав")
	ErrRoleRequired   = New(ErrCodeForbidden, "сначала выберите роль")
	ErrTooManyRequest = New(ErrCodeRateLimit, "слишком много запросов, попробуйте позже")
)
