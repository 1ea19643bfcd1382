package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nils2312/Fleksibelt-sub000/internal/dto"
	"github.com/Nils2312/Fleksibelt-sub000/internal/http/handlers/common"
	"github.com/Nils2312/Fleksibelt-sub000/internal/http/middleware"
	"github.com/Nils2312/Fleksibelt-sub000/internal/service"
)

// SessionHandler управляет флагом роли. Это не аутентификация:
// роль выбирается пользователем без проверки.
type SessionHandler struct {
	sessions *service.SessionService
	cookies  middleware.CookieOptions
}

func NewSessionHandler(sessions *service.SessionService, cookies middleware.CookieOptions) *SessionHandler {
	return &SessionHandler{sessions: sessions, cookies: cookies}
}

// Start POST /api/session
func (h *SessionHandler) Start(c *gin.Context) {
	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "поле role обязательно")
		return
	}

	current := common.CurrentSessionID(c)
	session, err := h.sessions.Start(c.Request.Context(), current, req.Role)
	if err != nil {
		_ = c.Error(err)
		return
	}

	middleware.SetCookie(c, middleware.RoleCookie, session.Role, h.cookies)
	if session.ID != current {
		middleware.SetCookie(c, middleware.SessionCookie, session.ID, h.cookies)
	}

	c.JSON(http.StatusOK, dto.SessionResponse{Role: session.Role, SessionID: session.ID})
}

// Get GET /api/session
func (h *SessionHandler) Get(c *gin.Context) {
	role, err := common.CurrentRole(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{Role: role, SessionID: common.CurrentSessionID(c)})
}

// End DELETE /api/session
func (h *SessionHandler) End(c *gin.Context) {
	if err := h.sessions.End(c.Request.Context(), common.CurrentSessionID(c)); err != nil {
		_ = c.Error(err)
		return
	}

	middleware.ClearCookie(c, middleware.RoleCookie, h.cookies)
	middleware.ClearCookie(c, middleware.SessionCookie, h.cookies)

	common.RespondSuccess(c, http.StatusOK, "роль сброшена", nil)
}
