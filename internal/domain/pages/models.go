package pages

import (
	"encoding/json"
	"time"

	"landing-app/internal/domain/campaigns"
	"landing-app/internal/domain/items"
)

// PageType defines a category of landing page: which sections it renders and
// in what order. SectionDefinitions is a JSON object whose key order IS the
// render order; values describe the item slots editors are expected to fill
// (metadata only, never enforced).
type PageType struct {
	ID   string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Code string `gorm:"not null;uniqueIndex" json:"code"`

	SectionDefinitions json.RawMessage `gorm:"type:jsonb" json:"section_definitions,omitempty"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LandingPage struct {
	ID   string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"not null;uniqueIndex" json:"slug"`

	PageTypeID *string   `gorm:"type:uuid;index" json:"page_type_id,omitempty"`
	PageType   *PageType `json:"page_type,omitempty"`

	CampaignID *string             `gorm:"type:uuid;index" json:"campaign_id,omitempty"`
	Campaign   *campaigns.Campaign `json:"campaign,omitempty"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `gorm:"type:text" json:"meta_description,omitempty"`

	Placements []Placement `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"placements,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Placement binds one Item into one section of one page. It is owned by the
// page but only references the item, so items stay shared and reusable.
type Placement struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	PageID string `gorm:"type:uuid;not null;index:idx_placements_page_section,priority:1" json:"page_id"`

	ItemID string      `gorm:"type:uuid;not null;index" json:"item_id"`
	Item   *items.Item `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"item,omitempty"`

	SectionCode string `gorm:"not null;index:idx_placements_page_section,priority:2" json:"section_code"`
	Position    int    `gorm:"not null;default:0" json:"position"`

	// Placement-local overrides; the shared item is never mutated.
	OverrideText *string         `gorm:"type:text" json:"override_text,omitempty"`
	OverrideJSON json.RawMessage `gorm:"type:jsonb" json:"override_json,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
