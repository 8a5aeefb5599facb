package pagesapi

import (
	"landing-app/internal/composer"
)

type PageMetaDTO struct {
	Slug            string `json:"slug"`
	Name            string `json:"name"`
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
}

type TrackingDTO struct {
	GTMID     string `json:"gtm_id,omitempty"`
	FBPixelID string `json:"fb_pixel_id,omitempty"`
}

// RenderResponse is the render-ready payload handed to templating: page meta,
// tracking ids and the composed sections in order.
type RenderResponse struct {
	Page     PageMetaDTO          `json:"page"`
	Tracking TrackingDTO          `json:"tracking"`
	Sections composer.Composition `json:"sections"`
}
