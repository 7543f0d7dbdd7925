// Package dashboard aggregates the derived admin overview. Nothing
// here is persisted; stats are recomputed from the collections on
// every request.
package dashboard

import (
	"github.com/gin-gonic/gin"
	"github.com/msadmin/core/internal/models"
	"github.com/msadmin/core/internal/modules/analytics"
	"github.com/msadmin/core/internal/modules/content"
	"github.com/msadmin/core/internal/modules/trash"
	"github.com/msadmin/core/internal/pkg/response"
	"github.com/msadmin/core/internal/store"
)

// Service computes dashboard statistics.
type Service struct {
	store     *store.Store
	content   *content.Service
	trash     *trash.Service
	analytics *analytics.Service
}

func NewService(st *store.Store, contentSvc *content.Service, trashSvc *trash.Service, analyticsSvc *analytics.Service) *Service {
	return &Service{store: st, content: contentSvc, trash: trashSvc, analytics: analyticsSvc}
}

// Stats recomputes the overview from the live collections, trash,
// analytics, and the store's size accounting.
func (s *Service) Stats() (models.DashboardStats, error) {
	used, err := s.store.UsedBytes()
	if err != nil {
		return models.DashboardStats{}, err
	}
	return models.DashboardStats{
		TotalArticles:    len(s.content.ListArticles(true)),
		TotalCaseStudies: len(s.content.ListCaseStudies(true)),
		TotalViews:       s.analytics.TotalViews(),
		StorageUsedBytes: used,
		StorageQuota:     store.QuotaBytes,
		TrashCount:       len(s.trash.List()),
	}, nil
}

// Handler serves the dashboard overview.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts dashboard routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/dashboard/stats", authMW, h.stats)
}

// stats GET /dashboard/stats
func (h *Handler) stats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, stats)
}
