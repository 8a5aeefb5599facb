package routes

import (
	adminapi "landing-app/internal/api/admin"
	analyticsapi "landing-app/internal/api/analytics"
	authapi "landing-app/internal/api/auth"
	campaignsapi "landing-app/internal/api/campaigns"
	itemsapi "landing-app/internal/api/items"
	leadsapi "landing-app/internal/api/leads"
	pagesapi "landing-app/internal/api/pages"
	pagetypesapi "landing-app/internal/api/pagetypes"
	"landing-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/p/:slug", pagesapi.GetLandingPage)

	// Public writes get input sanitization
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/login", authapi.Login)
	public.POST("/leads", leadsapi.CaptureLead)
	public.POST("/track/view", analyticsapi.TrackPageView)
	public.POST("/track/click", analyticsapi.TrackClick)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))

	admin.GET("/dashboard", adminapi.Dashboard)

	admin.GET("/page-types", pagetypesapi.ListPageTypes)
	admin.GET("/page-types/:code", pagetypesapi.GetPageType)
	admin.POST("/page-types", pagetypesapi.CreatePageType)
	admin.PUT("/page-types/:code", pagetypesapi.UpdatePageType)

	admin.GET("/pages", pagesapi.ListPages)
	admin.GET("/pages/:id", pagesapi.GetPage)
	admin.POST("/pages", pagesapi.CreatePage)
	admin.PUT("/pages/:id", pagesapi.UpdatePage)
	admin.DELETE("/pages/:id", pagesapi.DeletePage)

	admin.POST("/pages/:id/placements", pagesapi.CreatePlacement)
	admin.PUT("/pages/:id/placements/reorder", pagesapi.ReorderPlacements)
	admin.PUT("/placements/:id", pagesapi.UpdatePlacement)
	admin.DELETE("/placements/:id", pagesapi.DeletePlacement)

	admin.GET("/items", itemsapi.ListItems)
	admin.GET("/items/:id", itemsapi.GetItem)
	admin.POST("/items", itemsapi.CreateItem)
	admin.PUT("/items/:id", itemsapi.UpdateItem)
	admin.DELETE("/items/:id", itemsapi.DeleteItem)

	admin.GET("/campaigns", campaignsapi.ListCampaigns)
	admin.POST("/campaigns", campaignsapi.CreateCampaign)
	admin.PUT("/campaigns/:id", campaignsapi.UpdateCampaign)

	admin.GET("/leads", leadsapi.ListLeads)
	admin.PUT("/leads/:id/status", leadsapi.UpdateLeadStatus)
}
