package items

import (
	"encoding/json"
	"time"
)

const (
	TypeText  = "text"
	TypeImage = "image"
	TypeVideo = "video"
	TypeCTA   = "cta"
	TypeLink  = "link"
	TypeHTML  = "html"
	TypeJSON  = "json"
)

// ValidTypes lists every accepted item_type value.
var ValidTypes = []string{TypeText, TypeImage, TypeVideo, TypeCTA, TypeLink, TypeHTML, TypeJSON}

func IsValidType(t string) bool {
	for _, v := range ValidTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Item is a reusable unit of content, independent of any page. One item may
// be placed into many pages/sections; placements reference it, never own it.
type Item struct {
	ID   string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug *string `gorm:"uniqueIndex" json:"slug,omitempty"`
	Name string  `gorm:"not null" json:"name"`

	ItemType string `gorm:"not null;index" json:"item_type"`

	Text string          `gorm:"type:text" json:"text,omitempty"`
	JSON json.RawMessage `gorm:"type:jsonb" json:"json,omitempty"`

	ImageRef string `json:"image_ref,omitempty"`
	FileRef  string `json:"file_ref,omitempty"`
	URL      string `json:"url,omitempty"`

	Reusable bool            `gorm:"not null;default:true" json:"reusable"`
	Metadata json.RawMessage `gorm:"type:jsonb" json:"metadata,omitempty"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RendersMarkup reports whether the item's text field carries renderable
// markup (only html and text items do).
func (i *Item) RendersMarkup() bool {
	return i.ItemType == TypeHTML || i.ItemType == TypeText
}
