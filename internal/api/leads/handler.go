package leadsapi

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"landing-app/config"
	"landing-app/database"
	"landing-app/internal/domain/leads"
	"landing-app/internal/domain/pages"

	"github.com/gin-gonic/gin"
)

// POST /leads
//
// Form posts are redirected: back to the form on validation failure, to the
// thank-you URL on success. A duplicate signup gets the exact same redirect
// as a fresh one. JSON clients get the same outcomes as JSON bodies.
func CaptureLead(c *gin.Context) {
	var sub Submission
	if err := c.ShouldBind(&sub); err != nil {
		fail(c, http.StatusBadRequest, "Invalid submission")
		return
	}

	var page *pages.LandingPage
	if slug := strings.TrimSpace(sub.PageSlug); slug != "" {
		var p pages.LandingPage
		err := database.DB.First(&p, "slug = ? AND is_active = true", slug).Error
		if err == nil {
			page = &p
		}
		// unknown source slug is not fatal; the lead is still worth keeping
	}

	_, _, err := Submit(database.DB, page, sub)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			fail(c, http.StatusBadRequest, verr.Message)
			return
		}
		fail(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "redirect": config.THANK_YOU_URL})
		return
	}
	c.Redirect(http.StatusSeeOther, config.THANK_YOU_URL)
}

func wantsJSON(c *gin.Context) bool {
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		return true
	}
	return strings.Contains(c.ContentType(), "application/json")
}

// fail reports a submission problem: JSON clients get a status payload, form
// posts bounce back to the originating page with the message in the query.
func fail(c *gin.Context, status int, message string) {
	if wantsJSON(c) {
		c.JSON(status, gin.H{"error": message})
		return
	}

	back := c.GetHeader("Referer")
	if back == "" {
		back = "/"
	}
	u, err := url.Parse(back)
	if err != nil {
		u = &url.URL{Path: "/"}
	}
	q := u.Query()
	q.Set("error", message)
	u.RawQuery = q.Encode()
	c.Redirect(http.StatusSeeOther, u.String())
}

// GET /admin/leads
func ListLeads(c *gin.Context) {
	q := database.DB.Preload("Campaign").Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if pageID := c.Query("page_id"); pageID != "" {
		q = q.Where("page_id = ?", pageID)
	}

	var rows []leads.Lead
	if err := q.Limit(500).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leads"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leads": rows})
}

// PUT /admin/leads/:id/status
func UpdateLeadStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !leads.IsValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown lead status"})
		return
	}

	updates := map[string]interface{}{"status": input.Status}
	if input.Notes != "" {
		updates["notes"] = input.Notes
	}

	res := database.DB.Model(&leads.Lead{}).Where("id = ?", c.Param("id")).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lead"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
