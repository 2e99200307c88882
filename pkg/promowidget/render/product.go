package render

import (
	"strings"
	"time"

	"github.com/ukaji3/promowidget-go/pkg/promowidget/fields"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/flash"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/models"
)

// DefaultFlashBadge labels flash cards without their own badge text.
const DefaultFlashBadge = "FLASH SALE"

// Derive builds the render view of row. Free-text flash dates are read in loc.
func Derive(index int, row models.Row, loc *time.Location) models.Product {
	p := models.Product{
		Index:        index,
		Name:         row.ProductName.String(),
		ItemNumber:   row.ItemNumber.String(),
		Description:  row.Description.String(),
		BrandName:    row.BrandName.String(),
		BrandLogoURL: strings.TrimSpace(row.BrandLogoURL.String()),
		IsFlash:      fields.ParseFlag(row.FlashSale),
		ImageURL:     strings.TrimSpace(row.ImageURL.String()),
		ProductURL:   strings.TrimSpace(row.ProductURL.String()),
		Prices: models.Prices{
			MSRP:   fields.ParsePrice(row.MSRP),
			MAP:    fields.ParsePrice(row.MAP),
			Dealer: fields.ParsePrice(row.DealerPrice),
			Elite:  fields.ParsePrice(row.ElitePrice),
		},
	}

	if p.IsFlash {
		p.FlashStart = fields.NormalizeDateIn(row.FlashStart, loc)
		p.FlashEnd = fields.NormalizeDateIn(row.FlashEnd, loc)
	}

	promo := strings.TrimSpace(row.PromoText.String())
	switch {
	case promo != "":
		p.BadgeText = promo
	case p.IsFlash:
		p.BadgeText = strings.TrimSpace(row.FlashBadge.String())
		if p.BadgeText == "" {
			p.BadgeText = DefaultFlashBadge
		}
		p.FlashBadge = true
	}

	return p
}

// Brands returns one filter entry per brand name that has a logo, in
// first-occurrence order. The first logo seen for a brand is kept.
func Brands(products []models.Product) []models.Brand {
	var brands []models.Brand
	seen := make(map[string]struct{})
	for _, p := range products {
		if p.BrandName == "" || p.BrandLogoURL == "" {
			continue
		}
		if _, ok := seen[p.BrandName]; ok {
			continue
		}
		seen[p.BrandName] = struct{}{}
		brands = append(brands, models.Brand{Name: p.BrandName, LogoURL: p.BrandLogoURL})
	}
	return brands
}

// card returns the attributes a filter decision reads from p's card.
func card(p models.Product) flash.Card {
	return flash.Card{
		IsFlash: p.IsFlash,
		Brand:   p.BrandName,
		Start:   p.FlashStart,
		End:     p.FlashEnd,
	}
}
