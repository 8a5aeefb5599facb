package leadsapi

import (
	"errors"
	"regexp"
	"strings"

	"landing-app/config"
	"landing-app/internal/domain/campaigns"
	"landing-app/internal/domain/leads"
	"landing-app/internal/domain/pages"

	"gorm.io/gorm"
)

// ValidationError rejects a submission before anything is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Submission carries the raw form fields of a lead capture post. Accepts
// both "first_name" and the shorter "name" field some forms use.
type Submission struct {
	FirstName string `form:"first_name" json:"first_name"`
	Name      string `form:"name" json:"name"`
	LastName  string `form:"last_name" json:"last_name"`
	Email     string `form:"email" json:"email"`
	Phone     string `form:"phone" json:"phone"`

	PageSlug    string `form:"page" json:"page"`
	UTMCampaign string `form:"utm_campaign" json:"utm_campaign"`
}

// Normalize trims fields, folds the name alias into FirstName and
// lower-cases the email so the uniqueness scope is case-insensitive.
func (s *Submission) Normalize() {
	s.FirstName = strings.TrimSpace(s.FirstName)
	if s.FirstName == "" {
		s.FirstName = strings.TrimSpace(s.Name)
	}
	s.LastName = strings.TrimSpace(s.LastName)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.Phone = strings.TrimSpace(s.Phone)
}

// Validate checks required fields. Phone is optional.
func (s *Submission) Validate() error {
	if s.FirstName == "" {
		return &ValidationError{Field: "first_name", Message: "Name is required"}
	}
	if s.Email == "" {
		return &ValidationError{Field: "email", Message: "Email is required"}
	}
	if !emailPattern.MatchString(s.Email) {
		return &ValidationError{Field: "email", Message: "Invalid email format"}
	}
	return nil
}

// Submit persists a validated submission as a new lead.
//
// A duplicate (same email on the same source page) is NOT an error: the
// existing lead is fetched and returned with created=false, so the caller
// can route the visitor to the same confirmation as a fresh signup without
// leaking "this email already signed up". Any other persistence failure
// comes back as-is and nothing is written.
func Submit(db *gorm.DB, page *pages.LandingPage, sub Submission) (*leads.Lead, bool, error) {
	sub.Normalize()
	if err := sub.Validate(); err != nil {
		return nil, false, err
	}

	lead := leads.Lead{
		Email:     sub.Email,
		FirstName: sub.FirstName,
		LastName:  sub.LastName,
		Phone:     sub.Phone,
		Source:    config.LEAD_SOURCE,
		Status:    leads.StatusNew,
	}
	if page != nil {
		lead.PageID = &page.ID
	}
	lead.CampaignID = resolveCampaignID(db, page, sub.UTMCampaign)

	// NULL page_ids are distinct inside the unique index, so the index never
	// catches page-less duplicates; filter them here before the insert.
	if page == nil {
		existing, err := findExisting(db, nil, sub.Email)
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
	}

	if err := db.Create(&lead).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, ferr := findExisting(db, page, sub.Email)
			if ferr != nil {
				return nil, false, ferr
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	return &lead, true, nil
}

func findExisting(db *gorm.DB, page *pages.LandingPage, email string) (*leads.Lead, error) {
	q := db.Where("email = ?", email)
	if page != nil {
		q = q.Where("page_id = ?", page.ID)
	} else {
		q = q.Where("page_id IS NULL")
	}

	var lead leads.Lead
	if err := q.First(&lead).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// resolveCampaignID picks the campaign a lead is attributed to: an active
// campaign matching the utm_campaign parameter wins, then the source page's
// own campaign, then none.
func resolveCampaignID(db *gorm.DB, page *pages.LandingPage, utmCampaign string) *string {
	utmCampaign = strings.TrimSpace(utmCampaign)
	if utmCampaign != "" && db != nil {
		var c campaigns.Campaign
		err := db.First(&c, "utm_campaign = ? AND is_active = true", utmCampaign).Error
		if err == nil {
			return &c.ID
		}
	}
	if page != nil && page.CampaignID != nil {
		return page.CampaignID
	}
	return nil
}
