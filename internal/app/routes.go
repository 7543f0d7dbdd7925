package app

import (
	"github.com/gin-gonic/gin"
	"github.com/msadmin/core/internal/middleware"
	"github.com/msadmin/core/internal/modules/activity"
	"github.com/msadmin/core/internal/modules/analytics"
	"github.com/msadmin/core/internal/modules/auth"
	"github.com/msadmin/core/internal/modules/content"
	"github.com/msadmin/core/internal/modules/dashboard"
	"github.com/msadmin/core/internal/modules/trash"
	"github.com/msadmin/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	authMW := middleware.Auth(a.signer)
	optionalMW := middleware.OptionalAuth(a.signer)

	r.NoRoute(func(c *gin.Context) { response.NotFound(c) })
	r.NoMethod(func(c *gin.Context) { response.MethodNotAllowed(c) })

	api := r.Group("/api")
	api.Use(optionalMW)

	api.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok"})
	})

	// Services share one store; compound write cycles serialize on its
	// lock.
	activitySvc := activity.NewService(a.store, a.logger)
	contentSvc := content.NewService(a.store, activitySvc, a.logger)
	trashSvc := trash.NewService(a.store, activitySvc, a.logger)
	analyticsSvc := analytics.NewService(a.store, a.logger)
	dashboardSvc := dashboard.NewService(a.store, contentSvc, trashSvc, analyticsSvc)
	authSvc := auth.NewService(a.store, activitySvc, a.signer, a.cfg.Admin, a.cfg.Lockout, a.logger)

	content.NewHandler(contentSvc, trashSvc).RegisterRoutes(api, authMW)
	trash.NewHandler(trashSvc).RegisterRoutes(api, authMW)
	activity.NewHandler(activitySvc).RegisterRoutes(api, authMW)
	analytics.NewHandler(analyticsSvc).RegisterRoutes(api, authMW)
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(api, authMW)
	auth.NewHandler(authSvc).RegisterRoutes(api, authMW, optionalMW)
}
