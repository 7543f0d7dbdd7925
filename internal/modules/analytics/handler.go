package analytics

import (
	"github.com/gin-gonic/gin"
	"github.com/msadmin/core/internal/pkg/response"
)

// Handler serves view tracking and the admin analytics chart.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts analytics routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/analytics")
	g.POST("/view", h.trackView)
	g.GET("", authMW, h.history)
}

// trackView POST /analytics/view
func (h *Handler) trackView(c *gin.Context) {
	// A failed counter write means the store itself is failing; the
	// caller has to hear about it.
	if err := h.svc.TrackView(); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// history GET /analytics
func (h *Handler) history(c *gin.Context) {
	response.OK(c, gin.H{
		"history":    h.svc.History(),
		"totalViews": h.svc.TotalViews(),
	})
}
