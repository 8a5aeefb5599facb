package analytics

import "time"

// PageView is one recorded visit to a landing page.
type PageView struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PageID string `gorm:"type:uuid;not null;index" json:"page_id"`

	IPAddress string `json:"ip_address"`
	UserAgent string `gorm:"type:text" json:"user_agent"`
	Referrer  string `json:"referrer,omitempty"`
	SessionID string `gorm:"index" json:"session_id"`

	CreatedAt time.Time `json:"created_at"`
}

// ClickEvent is one recorded click on a tracked page element, optionally
// tied to the lead the click produced.
type ClickEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PageID      string `gorm:"type:uuid;not null;index" json:"page_id"`
	ElementID   string `gorm:"not null" json:"element_id"`
	ElementType string `json:"element_type"`

	LeadID *uint `gorm:"index" json:"lead_id,omitempty"`

	IPAddress string `json:"ip_address"`

	CreatedAt time.Time `json:"created_at"`
}
