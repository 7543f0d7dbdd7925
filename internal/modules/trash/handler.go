package trash

import (
	"github.com/gin-gonic/gin"
	"github.com/msadmin/core/internal/middleware"
	"github.com/msadmin/core/internal/pkg/response"
)

// Handler serves the admin recycle bin.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts trash routes onto the given router group. All
// of them require authentication.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/trash", authMW)
	g.GET("", h.list)
	g.POST("/:id/restore", h.restore)
	g.DELETE("/:id", h.purge)
}

// list GET /trash
func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.svc.List())
}

// restore POST /trash/:id/restore
func (h *Handler) restore(c *gin.Context) {
	if err := h.svc.Restore(c.Param("id"), userName(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// purge DELETE /trash/:id
func (h *Handler) purge(c *gin.Context) {
	if err := h.svc.Purge(c.Param("id"), userName(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func userName(c *gin.Context) string {
	if u, ok := middleware.CurrentUser(c); ok {
		return u.Name
	}
	return "Admin"
}
