package pages

import (
	"regexp"
	"strings"
)

/*
	Slug helpers
	------------
	- Responsible ONLY for generating URL-safe slugs from page names.
	- Uniqueness is enforced by the database index, not here.
*/

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// MakeSlug generates a URL-safe slug from a page name.
// Example: "Webinar Landing" -> "webinar-landing"
func MakeSlug(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "page"
	}
	return base
}

// EnsureSlug fills in the page slug from its name when the editor left it
// blank. Must be called before Create.
func (p *LandingPage) EnsureSlug() {
	if strings.TrimSpace(p.Slug) != "" {
		p.Slug = strings.TrimSpace(p.Slug)
		return
	}
	p.Slug = MakeSlug(p.Name)
}
