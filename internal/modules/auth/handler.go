package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/msadmin/core/internal/middleware"
	"github.com/msadmin/core/internal/pkg/response"
)

// Handler handles auth HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts auth routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, optionalMW gin.HandlerFunc) {
	a := rg.Group("/auth")
	a.POST("/login", h.login)
	a.POST("/logout", authMW, h.logout)
	a.GET("/session", optionalMW, h.session)
}

// login POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.svc.Login(dto.Email, dto.Password)
	if err != nil {
		var locked *LockedError
		var bad *CredentialsError
		switch {
		case errors.As(err, &locked):
			remaining := time.Until(locked.Until).Round(time.Second)
			response.TooManyRequests(c,
				fmt.Sprintf("too many failed attempts, try again in %s", remaining),
				int(remaining.Seconds()))
		case errors.As(err, &bad):
			response.ForbiddenMsg(c, err.Error())
		case errors.Is(err, ErrBusy):
			response.TooManyRequests(c, err.Error(), 1)
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, gin.H{"token": token, "user": user})
}

// logout POST /auth/logout
func (h *Handler) logout(c *gin.Context) {
	if u, ok := middleware.CurrentUser(c); ok {
		h.svc.Logout(u)
	}
	response.NoContent(c)
}

// session GET /auth/session
func (h *Handler) session(c *gin.Context) {
	if u, ok := middleware.CurrentUser(c); ok {
		response.OK(c, gin.H{"isAuthenticated": true, "user": u})
		return
	}
	response.OK(c, gin.H{"isAuthenticated": false, "user": nil})
}
