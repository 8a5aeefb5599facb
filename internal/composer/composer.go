// Package composer turns a loaded landing page into the render-ready
// structure consumed by templating: the page type's sections in declared
// order, each holding its placements' effective content.
//
// Resolve is a pure read over rows already loaded by the caller. It never
// touches the database and never mutates its input, so identical stored data
// always yields an identical composition and callers may cache results
// freely.
package composer

import (
	"encoding/json"
	"sort"

	"landing-app/internal/domain/items"
	"landing-app/internal/domain/pages"
)

// Entry is one resolved placement: the shared item plus its effective
// content after placement-local overrides are applied.
type Entry struct {
	Item *items.Item     `json:"item"`
	Data json.RawMessage `json:"data,omitempty"`
	HTML *string         `json:"html,omitempty"`
}

// Section is one declared section with its entries in render order.
// Declared sections with no placements are kept with empty Entries so the
// renderer can decide on fallback content.
type Section struct {
	Code    string  `json:"code"`
	Entries []Entry `json:"entries"`
}

// Composition is the full page, sections in the order the page type
// declares them.
type Composition []Section

// Resolve assembles the composition for a page.
//
// The page must arrive with PageType and Placements (including each
// placement's Item) preloaded. A page without a page type resolves to an
// empty composition. Placements whose section code is not declared by the
// page type are dropped.
func Resolve(page *pages.LandingPage) Composition {
	comp := Composition{}
	if page == nil || page.PageType == nil {
		return comp
	}

	placements := sortedPlacements(page.Placements)

	bySection := make(map[string][]pages.Placement, len(placements))
	for _, pl := range placements {
		bySection[pl.SectionCode] = append(bySection[pl.SectionCode], pl)
	}

	for _, code := range page.PageType.SectionCodes() {
		section := Section{Code: code, Entries: []Entry{}}
		for _, pl := range bySection[code] {
			section.Entries = append(section.Entries, resolveEntry(pl))
		}
		comp = append(comp, section)
	}

	return comp
}

// sortedPlacements returns a sorted copy: position ascending, ties broken by
// creation time then id so re-resolution is deterministic.
func sortedPlacements(in []pages.Placement) []pages.Placement {
	out := make([]pages.Placement, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func resolveEntry(pl pages.Placement) Entry {
	entry := Entry{Item: pl.Item}

	// override beats item, never merged
	if len(pl.OverrideJSON) > 0 {
		entry.Data = pl.OverrideJSON
	} else if pl.Item != nil {
		entry.Data = pl.Item.JSON
	}

	if pl.OverrideText != nil {
		entry.HTML = pl.OverrideText
	} else if pl.Item != nil && pl.Item.RendersMarkup() {
		text := pl.Item.Text
		entry.HTML = &text
	}

	return entry
}
