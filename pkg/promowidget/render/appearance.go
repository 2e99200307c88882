// Package render generates the preview and embeddable widget markup.
package render

import (
	"regexp"
	"strings"
)

// Columns is the grid layout: "auto" or a fixed column count.
type Columns string

const (
	ColumnsAuto  Columns = "auto"
	ColumnsTwo   Columns = "2"
	ColumnsThree Columns = "3"
	ColumnsFour  Columns = "4"
)

// Theme selects the light or dark palette.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Corners selects rounded or sharp card corners.
type Corners string

const (
	CornersRounded Corners = "rounded"
	CornersSharp   Corners = "sharp"
)

// DefaultAccentColor is used when no valid accent color is given.
const DefaultAccentColor = "#007bff"

// Appearance controls how a widget looks.
type Appearance struct {
	AccentColor    string
	Columns        Columns
	Theme          Theme
	Corners        Corners
	ShowItemNumber bool
}

// DefaultAppearance returns the default look.
func DefaultAppearance() Appearance {
	return Appearance{
		AccentColor:    DefaultAccentColor,
		Columns:        ColumnsAuto,
		Theme:          ThemeLight,
		Corners:        CornersRounded,
		ShowItemNumber: true,
	}
}

var accentPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,4}|#[0-9a-fA-F]{6}|#[0-9a-fA-F]{8}|(rgb|rgba|hsl|hsla)\(\s*[0-9.]+%?\s*(,\s*[0-9.]+%?\s*){2,3}\)|[a-zA-Z]{3,30})$`)

// ValidAccentColor reports whether s is a color token safe to place in a
// style block.
func ValidAccentColor(s string) bool {
	return accentPattern.MatchString(s)
}

// Normalize replaces unknown or unsafe values with defaults.
func (a Appearance) Normalize() Appearance {
	def := DefaultAppearance()
	a.AccentColor = strings.TrimSpace(a.AccentColor)
	if !ValidAccentColor(a.AccentColor) {
		a.AccentColor = def.AccentColor
	}
	switch a.Columns {
	case ColumnsAuto, ColumnsTwo, ColumnsThree, ColumnsFour:
	default:
		a.Columns = def.Columns
	}
	switch a.Theme {
	case ThemeLight, ThemeDark:
	default:
		a.Theme = def.Theme
	}
	switch a.Corners {
	case CornersRounded, CornersSharp:
	default:
		a.Corners = def.Corners
	}
	return a
}
