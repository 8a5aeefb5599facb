package pagesapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"landing-app/database"
	"landing-app/internal/domain/pages"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /admin/pages
func ListPages(c *gin.Context) {
	var rows []pages.LandingPage
	if err := database.DB.
		Preload("PageType").
		Preload("Campaign").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": rows})
}

// GET /admin/pages/:id
func GetPage(c *gin.Context) {
	var page pages.LandingPage
	err := pageWithComposition(database.DB).First(&page, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page})
}

// POST /admin/pages
func CreatePage(c *gin.Context) {
	var input struct {
		Name            string  `json:"name" binding:"required"`
		Slug            string  `json:"slug"`
		PageTypeID      *string `json:"page_type_id"`
		CampaignID      *string `json:"campaign_id"`
		IsActive        *bool   `json:"is_active"`
		MetaTitle       string  `json:"meta_title"`
		MetaDescription string  `json:"meta_description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page := pages.LandingPage{
		Name:            input.Name,
		Slug:            input.Slug,
		PageTypeID:      input.PageTypeID,
		CampaignID:      input.CampaignID,
		IsActive:        true,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
	}
	if input.IsActive != nil {
		page.IsActive = *input.IsActive
	}
	page.EnsureSlug()

	if err := database.DB.Create(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create page"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"page": page})
}

// PUT /admin/pages/:id
func UpdatePage(c *gin.Context) {
	var page pages.LandingPage
	if err := database.DB.First(&page, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	var input struct {
		Name            *string `json:"name"`
		Slug            *string `json:"slug"`
		PageTypeID      *string `json:"page_type_id"`
		CampaignID      *string `json:"campaign_id"`
		IsActive        *bool   `json:"is_active"`
		MetaTitle       *string `json:"meta_title"`
		MetaDescription *string `json:"meta_description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		page.Name = *input.Name
	}
	if input.Slug != nil {
		page.Slug = *input.Slug
		page.EnsureSlug()
	}
	if input.PageTypeID != nil {
		page.PageTypeID = input.PageTypeID
	}
	if input.CampaignID != nil {
		page.CampaignID = input.CampaignID
	}
	if input.IsActive != nil {
		page.IsActive = *input.IsActive
	}
	if input.MetaTitle != nil {
		page.MetaTitle = *input.MetaTitle
	}
	if input.MetaDescription != nil {
		page.MetaDescription = *input.MetaDescription
	}

	if err := database.DB.Save(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// DELETE /admin/pages/:id
func DeletePage(c *gin.Context) {
	res := database.DB.Delete(&pages.LandingPage{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete page"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /admin/pages/:id/placements
func CreatePlacement(c *gin.Context) {
	pageID := c.Param("id")

	var input struct {
		ItemID       string          `json:"item_id" binding:"required"`
		SectionCode  string          `json:"section_code" binding:"required"`
		Position     int             `json:"position"`
		OverrideText *string         `json:"override_text"`
		OverrideJSON json.RawMessage `json:"override_json"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var page pages.LandingPage
	if err := database.DB.Preload("PageType").First(&page, "id = ?", pageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	placement := pages.Placement{
		PageID:       page.ID,
		ItemID:       input.ItemID,
		SectionCode:  input.SectionCode,
		Position:     input.Position,
		OverrideText: input.OverrideText,
		OverrideJSON: input.OverrideJSON,
	}
	if err := database.DB.Create(&placement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create placement"})
		return
	}

	// A section code the page type does not declare is accepted but will
	// never render; echo the declared codes so editors can spot the mismatch.
	c.JSON(http.StatusCreated, gin.H{
		"placement":     placement,
		"section_codes": page.SectionCodes(),
	})
}

// PUT /admin/placements/:id
func UpdatePlacement(c *gin.Context) {
	var placement pages.Placement
	if err := database.DB.First(&placement, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Placement not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load placement"})
		return
	}

	var input struct {
		ItemID       *string         `json:"item_id"`
		SectionCode  *string         `json:"section_code"`
		Position     *int            `json:"position"`
		OverrideText *string         `json:"override_text"`
		OverrideJSON json.RawMessage `json:"override_json"`
		ClearText    bool            `json:"clear_override_text"`
		ClearJSON    bool            `json:"clear_override_json"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ItemID != nil {
		placement.ItemID = *input.ItemID
	}
	if input.SectionCode != nil {
		placement.SectionCode = *input.SectionCode
	}
	if input.Position != nil {
		placement.Position = *input.Position
	}
	if input.ClearText {
		placement.OverrideText = nil
	} else if input.OverrideText != nil {
		placement.OverrideText = input.OverrideText
	}
	if input.ClearJSON {
		placement.OverrideJSON = nil
	} else if len(input.OverrideJSON) > 0 {
		placement.OverrideJSON = input.OverrideJSON
	}

	if err := database.DB.Save(&placement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update placement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"placement": placement})
}

// DELETE /admin/placements/:id
func DeletePlacement(c *gin.Context) {
	res := database.DB.Delete(&pages.Placement{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete placement"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Placement not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PUT /admin/pages/:id/placements/reorder
//
// Rewrites placement positions within one section to match the given id
// order.
func ReorderPlacements(c *gin.Context) {
	pageID := c.Param("id")

	var req struct {
		SectionCode  string   `json:"section_code" binding:"required"`
		PlacementIDs []string `json:"placement_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.PlacementIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "placement_ids required"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var page pages.LandingPage
		if err := tx.First(&page, "id = ?", pageID).Error; err != nil {
			return err
		}

		for i, placementID := range req.PlacementIDs {
			if err := tx.Model(&pages.Placement{}).
				Where("id = ? AND page_id = ? AND section_code = ?", placementID, page.ID, req.SectionCode).
				Update("position", i).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder placements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
