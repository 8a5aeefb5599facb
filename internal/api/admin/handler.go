package admin

import (
	"net/http"

	"landing-app/database"
	"landing-app/internal/domain/analytics"
	"landing-app/internal/domain/leads"
	"landing-app/internal/domain/pages"

	"github.com/gin-gonic/gin"
)

type DashboardStats struct {
	TotalPages    int64            `json:"total_pages"`
	ActivePages   int64            `json:"active_pages"`
	TotalLeads    int64            `json:"total_leads"`
	LeadsByStatus map[string]int64 `json:"leads_by_status"`
	TotalViews    int64            `json:"total_views"`
	TotalClicks   int64            `json:"total_clicks"`
}

// GET /admin/dashboard
func Dashboard(c *gin.Context) {
	stats := DashboardStats{LeadsByStatus: map[string]int64{}}

	if err := database.DB.Model(&pages.LandingPage{}).Count(&stats.TotalPages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	database.DB.Model(&pages.LandingPage{}).Where("is_active = true").Count(&stats.ActivePages)
	database.DB.Model(&leads.Lead{}).Count(&stats.TotalLeads)
	database.DB.Model(&analytics.PageView{}).Count(&stats.TotalViews)
	database.DB.Model(&analytics.ClickEvent{}).Count(&stats.TotalClicks)

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	database.DB.Model(&leads.Lead{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts)
	for _, sc := range counts {
		stats.LeadsByStatus[sc.Status] = sc.Count
	}

	c.JSON(http.StatusOK, stats)
}
