package analyticsapi

import (
	"net/http"

	"landing-app/database"
	"landing-app/internal/domain/analytics"
	"landing-app/internal/domain/pages"

	"github.com/gin-gonic/gin"
)

// POST /track/view
//
// Fire-and-forget page view capture. Unknown pages are dropped silently so a
// stale tracker on a deleted page never surfaces errors to visitors.
func TrackPageView(c *gin.Context) {
	var input struct {
		Page      string `form:"page" json:"page" binding:"required"`
		Referrer  string `form:"referrer" json:"referrer"`
		SessionID string `form:"session_id" json:"session_id"`
	}
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page required"})
		return
	}

	var page pages.LandingPage
	if err := database.DB.Select("id").First(&page, "slug = ?", input.Page).Error; err != nil {
		c.JSON(http.StatusAccepted, gin.H{"status": "ok"})
		return
	}

	view := analytics.PageView{
		PageID:    page.ID,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referrer:  input.Referrer,
		SessionID: input.SessionID,
	}
	if err := database.DB.Create(&view).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record view"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "ok"})
}

// POST /track/click
func TrackClick(c *gin.Context) {
	var input struct {
		Page        string `form:"page" json:"page" binding:"required"`
		ElementID   string `form:"element_id" json:"element_id" binding:"required"`
		ElementType string `form:"element_type" json:"element_type"`
		LeadID      *uint  `form:"lead_id" json:"lead_id"`
	}
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page and element_id required"})
		return
	}

	var page pages.LandingPage
	if err := database.DB.Select("id").First(&page, "slug = ?", input.Page).Error; err != nil {
		c.JSON(http.StatusAccepted, gin.H{"status": "ok"})
		return
	}

	click := analytics.ClickEvent{
		PageID:      page.ID,
		ElementID:   input.ElementID,
		ElementType: input.ElementType,
		LeadID:      input.LeadID,
		IPAddress:   c.ClientIP(),
	}
	if err := database.DB.Create(&click).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record click"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "ok"})
}
