package models

import "github.com/shopspring/decimal"

// Prices holds the parsed price columns of a product. Invalid or
// missing prices are not Valid.
type Prices struct {
	MSRP   decimal.NullDecimal
	MAP    decimal.NullDecimal
	Dealer decimal.NullDecimal
	Elite  decimal.NullDecimal
}

// Product is the render-time view of one row. Text fields are raw
// (unescaped) cell text.
type Product struct {
	// Index is the row position; it scopes per-card DOM ids.
	Index        int
	Name         string
	ItemNumber   string
	Description  string
	BrandName    string
	BrandLogoURL string
	// BadgeText is empty when the card has no badge.
	BadgeText string
	// FlashBadge reports whether BadgeText came from the flash columns.
	FlashBadge bool
	IsFlash    bool
	// FlashStart and FlashEnd are YYYY-MM-DD or empty.
	FlashStart string
	FlashEnd   string
	Prices     Prices
	ImageURL   string
	ProductURL string
}

// Brand is one brand filter entry.
type Brand struct {
	Name    string
	LogoURL string
}
