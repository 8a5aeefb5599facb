package pagesapi

import (
	"errors"
	"net/http"

	"landing-app/config"
	"landing-app/database"
	"landing-app/internal/composer"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /p/:slug
//
// Resolves an active landing page into its render-ready composition.
// Unknown or deactivated slugs are a plain 404.
func GetLandingPage(c *gin.Context) {
	slug := c.Param("slug")

	page, err := activePageBySlug(database.DB, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	resp := RenderResponse{
		Page: PageMetaDTO{
			Slug:            page.Slug,
			Name:            page.Name,
			MetaTitle:       page.MetaTitle,
			MetaDescription: page.MetaDescription,
		},
		Tracking: TrackingDTO{
			GTMID:     config.GTM_ID,
			FBPixelID: config.FB_PIXEL_ID,
		},
		Sections: composer.Resolve(page),
	}

	c.JSON(http.StatusOK, resp)
}
