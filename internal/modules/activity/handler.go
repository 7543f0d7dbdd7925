package activity

import (
	"github.com/gin-gonic/gin"
	"github.com/msadmin/core/internal/pkg/response"
)

// Handler serves the admin activity feed.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts activity routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/activity", authMW, h.recent)
}

// recent GET /activity
func (h *Handler) recent(c *gin.Context) {
	response.OK(c, h.svc.Recent())
}
