package content

import (
	"github.com/gin-gonic/gin"
	"github.com/msadmin/core/internal/middleware"
	"github.com/msadmin/core/internal/models"
	"github.com/msadmin/core/internal/modules/markdown"
	"github.com/msadmin/core/internal/modules/trash"
	"github.com/msadmin/core/internal/pkg/response"
)

// Handler handles content HTTP requests for both collections.
type Handler struct {
	svc      *Service
	trashSvc *trash.Service
}

func NewHandler(svc *Service, trashSvc *trash.Service) *Handler {
	return &Handler{svc: svc, trashSvc: trashSvc}
}

// RegisterRoutes mounts article and case-study routes onto the group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	h.mount(rg.Group("/articles"), models.TypeArticle, authMW)
	h.mount(rg.Group("/case-studies"), models.TypeCaseStudy, authMW)
}

func (h *Handler) mount(g *gin.RouterGroup, t models.ContentType, authMW gin.HandlerFunc) {
	g.GET("", func(c *gin.Context) { h.list(c, t) })
	g.GET("/:slug", func(c *gin.Context) { h.getBySlug(c, t) })
	g.GET("/:slug/rendered", func(c *gin.Context) { h.rendered(c, t) })

	authed := g.Group("", authMW)
	authed.POST("", func(c *gin.Context) { h.save(c, t) })
	authed.PUT("/:slug", func(c *gin.Context) { h.save(c, t) }) // slug ignored; body carries id
	authed.DELETE("/id/:id", func(c *gin.Context) { h.delete(c, t) })
}

// list GET /articles | /case-studies
func (h *Handler) list(c *gin.Context, t models.ContentType) {
	includeDrafts := middleware.IsAuthenticated(c)
	if t == models.TypeCaseStudy {
		response.OK(c, h.svc.ListCaseStudies(includeDrafts))
		return
	}
	response.OK(c, h.svc.ListArticles(includeDrafts))
}

// getBySlug GET /articles/:slug
func (h *Handler) getBySlug(c *gin.Context, t models.ContentType) {
	item := h.svc.GetBySlug(t, c.Param("slug"), middleware.IsAuthenticated(c))
	if item == nil {
		response.NotFoundMsg(c, "content not found")
		return
	}
	response.OK(c, item)
}

// rendered GET /articles/:slug/rendered — markdown body rendered to HTML.
func (h *Handler) rendered(c *gin.Context, t models.ContentType) {
	item := h.svc.GetBySlug(t, c.Param("slug"), middleware.IsAuthenticated(c))
	if item == nil {
		response.NotFoundMsg(c, "content not found")
		return
	}
	html, err := markdown.Render(item.Content)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"slug": item.Slug, "title": item.Title, "html": html})
}

// save POST /articles, PUT /articles/:slug
func (h *Handler) save(c *gin.Context, t models.ContentType) {
	var dto SaveContentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, action, err := h.svc.Save(t, dto.toItem(t), currentUserName(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if action == models.ActionCreate {
		response.Created(c, item)
		return
	}
	response.OK(c, item)
}

// delete DELETE /articles/id/:id — soft delete into the trash.
func (h *Handler) delete(c *gin.Context, t models.ContentType) {
	if err := h.trashSvc.SoftDelete(t, c.Param("id"), currentUserName(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func currentUserName(c *gin.Context) string {
	if u, ok := middleware.CurrentUser(c); ok {
		return u.Name
	}
	return "Admin"
}
