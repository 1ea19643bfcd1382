package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
	"github.com/Nils2312/Fleksibelt-sub000/internal/service"
)

// Context ключи для gin.Context.
const (
	ContextRoleKey      = "role"
	ContextSessionIDKey = "sessionID"
)

// Имена cookie.
const (
	RoleCookie    = "fleksibelt_role"
	SessionCookie = "fleksibelt_session"
)

// CookieOptions общие параметры cookie.
type CookieOptions struct {
	MaxAge time.Duration
	Secure bool
}

// RoleMiddleware читает флаг роли из cookie. Неизвестные значения
// игнорируются. Учётные данные не проверяются.
func RoleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, err := c.Cookie(RoleCookie); err == nil && models.IsValidRole(role) {
			c.Set(ContextRoleKey, role)
		}
		c.Next()
	}
}

// RequireRole пропускает только запросы с указанной ролью.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := c.Get(ContextRoleKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "сначала выберите роль"})
			return
		}
		if current != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "недостаточно прав"})
			return
		}
		c.Next()
	}
}

// SessionMiddleware кладёт ID сессии выдачи в контекст, создавая cookie
// при первом обращении.
func SessionMiddleware(opts CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			sessionID = service.NewSessionID()
			SetCookie(c, SessionCookie, sessionID, opts)
		}
		c.Set(ContextSessionIDKey, sessionID)
		c.Next()
	}
}

// SetCookie устанавливает HttpOnly cookie на весь сайт.
func SetCookie(c *gin.Context, name, value string, opts CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, int(opts.MaxAge.Seconds()), "/", "", opts.Secure, true)
}

// ClearCookie удаляет cookie.
func ClearCookie(c *gin.Context, name string, opts CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", opts.Secure, true)
}
