package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IDValidator проверяет, что параметр с указанным именем является положительным целым.
// Использование: router.GET("/jobs/:id", IDValidator("id"), handler.GetJob)
func IDValidator(paramName string) gin.HandlerFunc {
	return paramValidator(paramName, "должен быть положительным числом", func(v string) bool {
		id, err := strconv.Atoi(v)
		return err == nil && id > 0
	})
}

// UUIDValidator проверяет, что параметр является валидным UUID (ID отклика).
func UUIDValidator(paramName string) gin.HandlerFunc {
	return paramValidator(paramName, "должен быть валидным UUID", func(v string) bool {
		_, err := uuid.Parse(v)
		return err == nil
	})
}

func paramValidator(paramName, hint string, valid func(string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		value := c.Param(paramName)
		if value == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "параметр " + paramName + " обязателен",
			})
			return
		}
		if !valid(value) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "параметр " + paramName + " " + hint,
			})
			return
		}
		c.Next()
	}
}
