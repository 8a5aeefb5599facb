package campaigns

import "time"

const (
	SourceFacebook = "facebook"
	SourceGoogle   = "google"
	SourceOrganic  = "organic"
	SourceEmail    = "email"
	SourceReferral = "referral"
)

// Campaign is an attribution grouping (traffic source + UTM parameters)
// referenced by pages and leads. It owns nothing.
type Campaign struct {
	ID   string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	Source string `gorm:"not null;index" json:"source"`

	UTMSource   string `gorm:"column:utm_source" json:"utm_source,omitempty"`
	UTMMedium   string `gorm:"column:utm_medium" json:"utm_medium,omitempty"`
	UTMCampaign string `gorm:"column:utm_campaign;index" json:"utm_campaign,omitempty"`

	Budget *float64 `json:"budget,omitempty"`

	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
