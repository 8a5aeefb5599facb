package campaignsapi

import (
	"errors"
	"net/http"
	"time"

	"landing-app/database"
	"landing-app/internal/domain/campaigns"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /admin/campaigns
func ListCampaigns(c *gin.Context) {
	q := database.DB.Order("created_at DESC")
	if c.Query("active") == "true" {
		q = q.Where("is_active = true")
	}

	var rows []campaigns.Campaign
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load campaigns"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaigns": rows})
}

// POST /admin/campaigns
func CreateCampaign(c *gin.Context) {
	var input struct {
		Name        string     `json:"name" binding:"required"`
		Source      string     `json:"source" binding:"required"`
		UTMSource   string     `json:"utm_source"`
		UTMMedium   string     `json:"utm_medium"`
		UTMCampaign string     `json:"utm_campaign"`
		Budget      *float64   `json:"budget"`
		IsActive    *bool      `json:"is_active"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign := campaigns.Campaign{
		Name:        input.Name,
		Source:      input.Source,
		UTMSource:   input.UTMSource,
		UTMMedium:   input.UTMMedium,
		UTMCampaign: input.UTMCampaign,
		Budget:      input.Budget,
		IsActive:    true,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
	if input.IsActive != nil {
		campaign.IsActive = *input.IsActive
	}

	if err := database.DB.Create(&campaign).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create campaign"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"campaign": campaign})
}

// PUT /admin/campaigns/:id
func UpdateCampaign(c *gin.Context) {
	var campaign campaigns.Campaign
	if err := database.DB.First(&campaign, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load campaign"})
		return
	}

	var input struct {
		Name        *string    `json:"name"`
		Source      *string    `json:"source"`
		UTMSource   *string    `json:"utm_source"`
		UTMMedium   *string    `json:"utm_medium"`
		UTMCampaign *string    `json:"utm_campaign"`
		Budget      *float64   `json:"budget"`
		IsActive    *bool      `json:"is_active"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		campaign.Name = *input.Name
	}
	if input.Source != nil {
		campaign.Source = *input.Source
	}
	if input.UTMSource != nil {
		campaign.UTMSource = *input.UTMSource
	}
	if input.UTMMedium != nil {
		campaign.UTMMedium = *input.UTMMedium
	}
	if input.UTMCampaign != nil {
		campaign.UTMCampaign = *input.UTMCampaign
	}
	if input.Budget != nil {
		campaign.Budget = input.Budget
	}
	if input.IsActive != nil {
		campaign.IsActive = *input.IsActive
	}
	if input.StartDate != nil {
		campaign.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		campaign.EndDate = input.EndDate
	}

	if err := database.DB.Save(&campaign).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update campaign"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}
