package pagetypesapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"landing-app/database"
	"landing-app/internal/domain/pages"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /admin/page-types
func ListPageTypes(c *gin.Context) {
	var rows []pages.PageType
	if err := database.DB.Order("name ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page types"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page_types": rows})
}

// GET /admin/page-types/:code
func GetPageType(c *gin.Context) {
	var pt pages.PageType
	if err := database.DB.First(&pt, "code = ?", c.Param("code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page type not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page type"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page_type":     pt,
		"section_codes": pt.SectionCodes(),
	})
}

// POST /admin/page-types
func CreatePageType(c *gin.Context) {
	var input struct {
		Name               string          `json:"name" binding:"required"`
		Code               string          `json:"code" binding:"required"`
		SectionDefinitions json.RawMessage `json:"section_definitions"`
		IsActive           *bool           `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pt := pages.PageType{
		Name:               input.Name,
		Code:               input.Code,
		SectionDefinitions: input.SectionDefinitions,
		IsActive:           true,
	}
	if input.IsActive != nil {
		pt.IsActive = *input.IsActive
	}

	if err := database.DB.Create(&pt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Code already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create page type"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"page_type": pt})
}

// PUT /admin/page-types/:code
//
// The code itself is immutable once pages reference it; only name, sections
// and the active flag can change.
func UpdatePageType(c *gin.Context) {
	var pt pages.PageType
	if err := database.DB.First(&pt, "code = ?", c.Param("code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page type not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page type"})
		return
	}

	var input struct {
		Name               *string         `json:"name"`
		SectionDefinitions json.RawMessage `json:"section_definitions"`
		IsActive           *bool           `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		pt.Name = *input.Name
	}
	if len(input.SectionDefinitions) > 0 {
		pt.SectionDefinitions = input.SectionDefinitions
	}
	if input.IsActive != nil {
		pt.IsActive = *input.IsActive
	}

	if err := database.DB.Save(&pt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page type"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page_type": pt})
}
