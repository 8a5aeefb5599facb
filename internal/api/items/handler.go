package itemsapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"landing-app/database"
	"landing-app/internal/domain/items"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /admin/items
func ListItems(c *gin.Context) {
	q := database.DB.Order("name ASC")

	if itemType := c.Query("type"); itemType != "" {
		q = q.Where("item_type = ?", itemType)
	}
	if c.Query("reusable") == "true" {
		q = q.Where("reusable = true")
	}

	var rows []items.Item
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rows})
}

// GET /admin/items/:id
func GetItem(c *gin.Context) {
	var item items.Item
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// POST /admin/items
func CreateItem(c *gin.Context) {
	var input struct {
		Slug     *string         `json:"slug"`
		Name     string          `json:"name" binding:"required"`
		ItemType string          `json:"item_type" binding:"required"`
		Text     string          `json:"text"`
		JSON     json.RawMessage `json:"json"`
		ImageRef string          `json:"image_ref"`
		FileRef  string          `json:"file_ref"`
		URL      string          `json:"url"`
		Reusable *bool           `json:"reusable"`
		Metadata json.RawMessage `json:"metadata"`
		IsActive *bool           `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !items.IsValidType(input.ItemType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown item type"})
		return
	}

	item := items.Item{
		Slug:     input.Slug,
		Name:     input.Name,
		ItemType: input.ItemType,
		Text:     input.Text,
		JSON:     input.JSON,
		ImageRef: input.ImageRef,
		FileRef:  input.FileRef,
		URL:      input.URL,
		Reusable: true,
		Metadata: input.Metadata,
		IsActive: true,
	}
	if input.Reusable != nil {
		item.Reusable = *input.Reusable
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := database.DB.Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// PUT /admin/items/:id
func UpdateItem(c *gin.Context) {
	var item items.Item
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load item"})
		return
	}

	var input struct {
		Slug     *string         `json:"slug"`
		Name     *string         `json:"name"`
		ItemType *string         `json:"item_type"`
		Text     *string         `json:"text"`
		JSON     json.RawMessage `json:"json"`
		ImageRef *string         `json:"image_ref"`
		FileRef  *string         `json:"file_ref"`
		URL      *string         `json:"url"`
		Reusable *bool           `json:"reusable"`
		Metadata json.RawMessage `json:"metadata"`
		IsActive *bool           `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ItemType != nil {
		if !items.IsValidType(*input.ItemType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown item type"})
			return
		}
		item.ItemType = *input.ItemType
	}
	if input.Slug != nil {
		item.Slug = input.Slug
	}
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Text != nil {
		item.Text = *input.Text
	}
	if len(input.JSON) > 0 {
		item.JSON = input.JSON
	}
	if input.ImageRef != nil {
		item.ImageRef = *input.ImageRef
	}
	if input.FileRef != nil {
		item.FileRef = *input.FileRef
	}
	if input.URL != nil {
		item.URL = *input.URL
	}
	if input.Reusable != nil {
		item.Reusable = *input.Reusable
	}
	if len(input.Metadata) > 0 {
		item.Metadata = input.Metadata
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := database.DB.Save(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DELETE /admin/items/:id
func DeleteItem(c *gin.Context) {
	res := database.DB.Delete(&items.Item{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
