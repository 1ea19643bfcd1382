package common

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Nils2312/Fleksibelt-sub000/internal/dto"
	"github.com/Nils2312/Fleksibelt-sub000/internal/http/middleware"
)

var (
	// ErrRoleNotSet is returned when no role flag is present in context
	ErrRoleNotSet = errors.New("роль не выбрана")

	// ErrInvalidID is returned when an integer id cannot be parsed
	ErrInvalidID = errors.New("неверный формат ID")
)

// CurrentRole extracts the role flag from Gin context
func CurrentRole(c *gin.Context) (string, error) {
	raw, exists := c.Get(middleware.ContextRoleKey)
	if !exists {
		return "", ErrRoleNotSet
	}

	role, ok := raw.(string)
	if !ok {
		return "", ErrRoleNotSet
	}

	return role, nil
}

// CurrentSessionID returns the search session id, or "" when the
// session middleware is not installed
func CurrentSessionID(c *gin.Context) string {
	return c.GetString(middleware.ContextSessionIDKey)
}

// ParseIDParam parses a positive integer URL parameter
func ParseIDParam(c *gin.Context, paramName string) (int, error) {
	param := c.Param(paramName)
	if param == "" {
		return 0, fmt.Errorf("параметр %s отсутствует", paramName)
	}

	id, err := strconv.Atoi(param)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}

	return id, nil
}

// ParseStrictIntQuery reads an optional integer query parameter. ok is false
// when the parameter is absent; a present but malformed value is an error.
func ParseStrictIntQuery(c *gin.Context, key string) (value int, ok bool, err error) {
	raw, present := c.GetQuery(key)
	if !present || strings.TrimSpace(raw) == "" {
		return 0, false, nil
	}
	value, err = strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false, fmt.Errorf("параметр %s должен быть целым числом", key)
	}
	return value, true, nil
}

// SplitList splits a comma separated query value, dropping empty items
func SplitList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// RespondError sends a standardized error response
func RespondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// RespondSuccess sends a standardized success response
func RespondSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, dto.SuccessResponse{
		Message: message,
		Data:    data,
	})
}

// RespondUnauthorized sends a 401 Unauthorized response
func RespondUnauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "сначала выберите роль"
	}
	RespondError(c, http.StatusUnauthorized, message)
}

// RespondBadRequest sends a 400 Bad Request response
func RespondBadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "некорректный запрос"
	}
	RespondError(c, http.StatusBadRequest, message)
}
