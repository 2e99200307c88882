package flash

import (
	"fmt"
	"strings"
	"time"
)

// FilterKind names a filter bar entry type.
type FilterKind string

const (
	FilterAll   FilterKind = "all"
	FilterFlash FilterKind = "flash"
	FilterBrand FilterKind = "brand"
)

// Filter is the active filter selection. Brand is only used by FilterBrand.
type Filter struct {
	Kind  FilterKind
	Brand string
}

// All is the default selection.
var All = Filter{Kind: FilterAll}

// ParseFilter reads "all", "flash" or "brand:NAME".
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || strings.EqualFold(s, string(FilterAll)):
		return All, nil
	case strings.EqualFold(s, string(FilterFlash)):
		return Filter{Kind: FilterFlash}, nil
	case len(s) > len("brand:") && strings.EqualFold(s[:len("brand:")], "brand:"):
		return Filter{Kind: FilterBrand, Brand: s[len("brand:"):]}, nil
	}
	return Filter{}, fmt.Errorf("invalid filter %q (expected all, flash, or brand:NAME)", s)
}

// Card is the attribute set a filter decision reads from a card.
type Card struct {
	IsFlash bool
	Brand   string
	Start   string
	End     string
}

// policy is one filter kind's visibility rule. Every policy additionally
// hides flash cards outside their window.
type policy struct {
	kind         FilterKind
	requireFlash bool
	matchBrand   bool
}

// Under "all", expired or not-yet-started flash cards are hidden.
var policies = []policy{
	{kind: FilterAll},
	{kind: FilterFlash, requireFlash: true},
	{kind: FilterBrand, matchBrand: true},
}

// Visible reports whether card is shown under f at now.
func Visible(f Filter, card Card, now time.Time) bool {
	for _, p := range policies {
		if p.kind != f.Kind {
			continue
		}
		if p.requireFlash && !card.IsFlash {
			return false
		}
		if p.matchBrand && card.Brand != f.Brand {
			return false
		}
		return !card.IsFlash || Active(true, card.Start, card.End, now)
	}
	return false
}
