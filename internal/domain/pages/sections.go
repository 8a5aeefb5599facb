package pages

import (
	"bytes"
	"encoding/json"
)

// SectionSpec is one declared section of a PageType: its code plus the item
// slots editors are expected to fill in that section.
type SectionSpec struct {
	Code  string
	Items []string
}

// Sections decodes SectionDefinitions preserving the declared key order.
// A plain map would lose it, so the object is walked token by token.
// Absent, null or malformed definitions degrade to an empty list — a page
// type without sections is a valid (empty) composition, not an error.
func (pt *PageType) Sections() []SectionSpec {
	if pt == nil || len(pt.SectionDefinitions) == 0 {
		return []SectionSpec{}
	}

	dec := json.NewDecoder(bytes.NewReader(pt.SectionDefinitions))

	tok, err := dec.Token()
	if err != nil {
		return []SectionSpec{}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return []SectionSpec{}
	}

	specs := []SectionSpec{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return []SectionSpec{}
		}
		code, ok := keyTok.(string)
		if !ok {
			return []SectionSpec{}
		}

		var def struct {
			Items []string `json:"items"`
		}
		if err := dec.Decode(&def); err != nil {
			return []SectionSpec{}
		}

		specs = append(specs, SectionSpec{Code: code, Items: def.Items})
	}

	return specs
}

// SectionCodes returns the section codes of the page type in declared order.
func (pt *PageType) SectionCodes() []string {
	specs := pt.Sections()
	codes := make([]string, 0, len(specs))
	for _, s := range specs {
		codes = append(codes, s.Code)
	}
	return codes
}

// SectionCodes returns the codes declared by the page's type. A page without
// a page type has no sections.
func (p *LandingPage) SectionCodes() []string {
	if p == nil || p.PageType == nil {
		return []string{}
	}
	return p.PageType.SectionCodes()
}
