package composer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing-app/internal/domain/items"
	"landing-app/internal/domain/pages"
)

func landingPageType(t *testing.T, defs string) *pages.PageType {
	t.Helper()
	return &pages.PageType{
		ID:                 "pt-1",
		Name:               "Landing Page",
		Code:               "landing",
		SectionDefinitions: json.RawMessage(defs),
	}
}

func strPtr(s string) *string { return &s }

func TestResolveWithoutPageType(t *testing.T) {
	page := &pages.LandingPage{ID: "p-1", Name: "Orphan", Slug: "orphan"}

	comp := Resolve(page)
	assert.Empty(t, comp)

	assert.Empty(t, Resolve(nil))
}

func TestResolveSectionOrderFollowsDeclaration(t *testing.T) {
	pt := landingPageType(t, `{
		"hero":     {"items": ["title", "subtitle"]},
		"benefits": {"items": ["benefit1", "benefit2"]},
		"cta":      {"items": ["button"]}
	}`)
	page := &pages.LandingPage{ID: "p-1", Slug: "webinar", PageType: pt}

	comp := Resolve(page)
	require.Len(t, comp, 3)
	assert.Equal(t, "hero", comp[0].Code)
	assert.Equal(t, "benefits", comp[1].Code)
	assert.Equal(t, "cta", comp[2].Code)

	// declared but unfilled sections stay present, empty
	for _, s := range comp {
		assert.NotNil(t, s.Entries)
		assert.Empty(t, s.Entries)
	}
}

func TestResolveOrdersPlacementsByPosition(t *testing.T) {
	pt := landingPageType(t, `{"benefits": {"items": []}}`)
	item := &items.Item{ID: "i-1", Name: "Benefit", ItemType: items.TypeText, Text: "b"}

	page := &pages.LandingPage{
		ID:       "p-1",
		PageType: pt,
		Placements: []pages.Placement{
			{ID: "pl-a", SectionCode: "benefits", Position: 2, Item: item},
			{ID: "pl-b", SectionCode: "benefits", Position: 0, Item: item},
			{ID: "pl-c", SectionCode: "benefits", Position: 1, Item: item},
		},
	}
	for i := range page.Placements {
		page.Placements[i].ItemID = item.ID
		page.Placements[i].PageID = page.ID
	}

	comp := Resolve(page)
	require.Len(t, comp, 1)
	require.Len(t, comp[0].Entries, 3)

	// positions [2,0,1] come out as [0,1,2]
	got := []string{}
	for _, pl := range sortedPlacements(page.Placements) {
		got = append(got, pl.ID)
	}
	assert.Equal(t, []string{"pl-b", "pl-c", "pl-a"}, got)
}

func TestResolveTieBreakIsCreationOrder(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	placements := []pages.Placement{
		{ID: "z", Position: 0, CreatedAt: base.Add(2 * time.Minute)},
		{ID: "a", Position: 0, CreatedAt: base},
		{ID: "m", Position: 0, CreatedAt: base.Add(time.Minute)},
	}

	got := []string{}
	for _, pl := range sortedPlacements(placements) {
		got = append(got, pl.ID)
	}
	assert.Equal(t, []string{"a", "m", "z"}, got)
}

func TestResolveOverridePrecedence(t *testing.T) {
	pt := landingPageType(t, `{"hero": {"items": ["title"]}}`)
	item := &items.Item{
		ID:       "i-1",
		ItemType: items.TypeJSON,
		JSON:     json.RawMessage(`{"a":1}`),
	}

	page := &pages.LandingPage{
		ID:       "p-1",
		PageType: pt,
		Placements: []pages.Placement{
			{ID: "pl-1", SectionCode: "hero", Item: item, OverrideJSON: json.RawMessage(`{"b":2}`)},
		},
	}

	comp := Resolve(page)
	require.Len(t, comp, 1)
	require.Len(t, comp[0].Entries, 1)
	assert.JSONEq(t, `{"b":2}`, string(comp[0].Entries[0].Data))
}

func TestResolveFallsBackToItemData(t *testing.T) {
	pt := landingPageType(t, `{"hero": {"items": ["title"]}}`)
	item := &items.Item{
		ID:       "i-1",
		ItemType: items.TypeJSON,
		JSON:     json.RawMessage(`{"a":1}`),
	}

	page := &pages.LandingPage{
		ID:         "p-1",
		PageType:   pt,
		Placements: []pages.Placement{{ID: "pl-1", SectionCode: "hero", Item: item}},
	}

	comp := Resolve(page)
	require.Len(t, comp[0].Entries, 1)
	assert.JSONEq(t, `{"a":1}`, string(comp[0].Entries[0].Data))
}

func TestResolveHTMLPrecedence(t *testing.T) {
	pt := landingPageType(t, `{"hero": {"items": []}}`)

	htmlItem := &items.Item{ID: "i-1", ItemType: items.TypeHTML, Text: "<h1>Base</h1>"}
	textItem := &items.Item{ID: "i-2", ItemType: items.TypeText, Text: "plain"}
	ctaItem := &items.Item{ID: "i-3", ItemType: items.TypeCTA, Text: "Buy now"}

	page := &pages.LandingPage{
		ID:       "p-1",
		PageType: pt,
		Placements: []pages.Placement{
			{ID: "pl-1", SectionCode: "hero", Position: 0, Item: htmlItem, OverrideText: strPtr("<h1>Override</h1>")},
			{ID: "pl-2", SectionCode: "hero", Position: 1, Item: textItem},
			{ID: "pl-3", SectionCode: "hero", Position: 2, Item: ctaItem},
		},
	}

	comp := Resolve(page)
	require.Len(t, comp[0].Entries, 3)

	require.NotNil(t, comp[0].Entries[0].HTML)
	assert.Equal(t, "<h1>Override</h1>", *comp[0].Entries[0].HTML)

	require.NotNil(t, comp[0].Entries[1].HTML)
	assert.Equal(t, "plain", *comp[0].Entries[1].HTML)

	// non-markup item types carry no html even with text set
	assert.Nil(t, comp[0].Entries[2].HTML)
}

func TestResolveDropsUndeclaredSections(t *testing.T) {
	pt := landingPageType(t, `{"hero": {"items": []}}`)
	item := &items.Item{ID: "i-1", ItemType: items.TypeText, Text: "stray"}

	page := &pages.LandingPage{
		ID:       "p-1",
		PageType: pt,
		Placements: []pages.Placement{
			{ID: "pl-1", SectionCode: "hero", Item: item},
			{ID: "pl-2", SectionCode: "sidebar", Item: item}, // not declared
		},
	}

	comp := Resolve(page)
	require.Len(t, comp, 1)
	assert.Equal(t, "hero", comp[0].Code)
	assert.Len(t, comp[0].Entries, 1)
}

func TestResolveIsIdempotentAndReadOnly(t *testing.T) {
	pt := landingPageType(t, `{"hero": {"items": []}, "cta": {"items": []}}`)
	item := &items.Item{ID: "i-1", ItemType: items.TypeHTML, Text: "<p>hi</p>", JSON: json.RawMessage(`{"k":"v"}`)}

	page := &pages.LandingPage{
		ID:       "p-1",
		PageType: pt,
		Placements: []pages.Placement{
			{ID: "pl-2", SectionCode: "cta", Position: 1, Item: item},
			{ID: "pl-1", SectionCode: "hero", Position: 0, Item: item, OverrideJSON: json.RawMessage(`{"k":"w"}`)},
		},
	}

	first, err := json.Marshal(Resolve(page))
	require.NoError(t, err)
	second, err := json.Marshal(Resolve(page))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	// input order untouched
	assert.Equal(t, "pl-2", page.Placements[0].ID)
	// shared item never mutated by overrides
	assert.JSONEq(t, `{"k":"v"}`, string(item.JSON))
	assert.Equal(t, "<p>hi</p>", item.Text)
}
