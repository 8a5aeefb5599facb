package leads

import (
	"time"

	"landing-app/internal/domain/campaigns"
)

const (
	StatusNew         = "new"
	StatusContacted   = "contacted"
	StatusQualified   = "qualified"
	StatusConverted   = "converted"
	StatusUnqualified = "unqualified"
)

var ValidStatuses = []string{StatusNew, StatusContacted, StatusQualified, StatusConverted, StatusUnqualified}

func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Lead is a prospective customer captured from a form submission.
//
// Uniqueness is scoped to (email, page_id): the same visitor may sign up on
// several landing pages of one multi-page campaign, but re-submitting the
// same form never creates a second row.
type Lead struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email     string `gorm:"not null;uniqueIndex:idx_leads_email_page" json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`

	// Source landing page, when the submission came from one.
	PageID *string `gorm:"type:uuid;uniqueIndex:idx_leads_email_page" json:"page_id,omitempty"`

	CampaignID *string             `gorm:"type:uuid;index" json:"campaign_id,omitempty"`
	Campaign   *campaigns.Campaign `json:"campaign,omitempty"`

	Source string `json:"source,omitempty"`

	Status string `gorm:"not null;default:'new';index" json:"status"`
	Notes  string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
