package pages

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionCodesPreserveDeclaredOrder(t *testing.T) {
	pt := &PageType{
		Name: "Test Landing",
		Code: "test",
		SectionDefinitions: json.RawMessage(`{
			"hero_t1":  {"items": ["title", "subtitle"]},
			"benefits": {"items": ["benefit1", "benefit2", "benefit3"]},
			"cta":      {"items": ["button"]}
		}`),
	}

	assert.Equal(t, []string{"hero_t1", "benefits", "cta"}, pt.SectionCodes())
}

func TestSectionsCarrySlotNames(t *testing.T) {
	pt := &PageType{
		Code:               "landing",
		SectionDefinitions: json.RawMessage(`{"hero": {"items": ["text1"]}}`),
	}

	specs := pt.Sections()
	require.Len(t, specs, 1)
	assert.Equal(t, "hero", specs[0].Code)
	assert.Equal(t, []string{"text1"}, specs[0].Items)
}

func TestSectionCodesEmptyCases(t *testing.T) {
	assert.Empty(t, (&PageType{Code: "bare"}).SectionCodes())
	assert.Empty(t, (&PageType{Code: "null", SectionDefinitions: json.RawMessage(`null`)}).SectionCodes())
	assert.Empty(t, (&PageType{Code: "bad", SectionDefinitions: json.RawMessage(`{"hero": `)}).SectionCodes())
	assert.Empty(t, (&PageType{Code: "arr", SectionDefinitions: json.RawMessage(`["hero"]`)}).SectionCodes())

	var pt *PageType
	assert.Empty(t, pt.SectionCodes())
}

func TestPageSectionCodes(t *testing.T) {
	pt := &PageType{
		Code:               "landing",
		SectionDefinitions: json.RawMessage(`{"hero": {"items": ["text1"]}}`),
	}

	page := &LandingPage{Name: "Test Page", Slug: "test-page", PageType: pt}
	assert.Equal(t, []string{"hero"}, page.SectionCodes())

	// a page without a page type has zero sections
	bare := &LandingPage{Name: "Test Page", Slug: "test-page"}
	assert.Equal(t, []string{}, bare.SectionCodes())
}
