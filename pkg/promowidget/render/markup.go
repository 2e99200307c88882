package render

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/shopspring/decimal"

	"github.com/ukaji3/promowidget-go/pkg/promowidget/fields"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/flash"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/models"
)

// SeeMoreThreshold is the description length (UTF-16 code units) above
// which a card gets a "See More" toggle.
const SeeMoreThreshold = 120

// EmptyMessage is shown when no card passes the active filter.
const EmptyMessage = "No promotions to show."

// view is the state shared by the preview and embeddable renderings of
// one widget.
type view struct {
	id         string
	appearance Appearance
	products   []models.Product
	brands     []models.Brand
	hasFlash   bool
	now        time.Time
}

func newView(id string, a Appearance, products []models.Product, now time.Time) *view {
	v := &view{
		id:         id,
		appearance: a,
		products:   products,
		brands:     Brands(products),
		now:        now,
	}
	for _, p := range products {
		if p.IsFlash {
			v.hasFlash = true
			break
		}
	}
	return v
}

// showFilters reports whether the filter bar is rendered.
func (v *view) showFilters() bool {
	return len(v.brands) > 1 || v.hasFlash
}

// offered reports whether f has an entry in the filter bar.
func (v *view) offered(f flash.Filter) bool {
	if !v.showFilters() {
		return f.Kind == flash.FilterAll
	}
	switch f.Kind {
	case flash.FilterAll:
		return true
	case flash.FilterFlash:
		return v.hasFlash
	case flash.FilterBrand:
		for _, b := range v.brands {
			if b.Name == f.Brand {
				return true
			}
		}
	}
	return false
}

// structure renders the root element with styles, filter bar and cards.
// Cards hidden under f carry an inline display:none.
func (v *view) structure(f flash.Filter) (string, error) {
	styles, err := renderStyles(v.id, v.appearance)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div id="%s" class="promo-widget-root" data-theme="%s" data-corners="%s" data-columns="%s">`,
		fields.EscapeText(v.id), v.appearance.Theme, v.appearance.Corners, v.appearance.Columns)
	b.WriteString("\n")
	b.WriteString(styles)
	b.WriteString("\n")
	if v.showFilters() {
		v.writeFilterBar(&b, f)
	}

	b.WriteString(`<div class="promo-widget-container">` + "\n")
	visible := 0
	for _, p := range v.products {
		shown := flash.Visible(f, card(p), v.now)
		if shown {
			visible++
		}
		v.writeCard(&b, p, shown)
	}
	hidden := ""
	if visible > 0 {
		hidden = " hidden"
	}
	fmt.Fprintf(&b, `<p class="promo-empty-message" role="status"%s>%s</p>`+"\n", hidden, EmptyMessage)
	b.WriteString("</div>\n</div>")
	return b.String(), nil
}

func (v *view) writeFilterBar(b *strings.Builder, f flash.Filter) {
	b.WriteString(`<div class="promo-logo-filter-container" role="tablist" aria-label="Promotion Filters">` + "\n")

	writeFilterItem(b, f.Kind == flash.FilterAll, "", `data-filter="all"`, "Show All",
		`<div class="promo-filter-logo-box all-brands">All</div>`, "All")
	if v.hasFlash {
		writeFilterItem(b, f.Kind == flash.FilterFlash, " flash", `data-filter="flash"`, "Show Flash Sales",
			`<div class="promo-filter-logo-box flash">&#9889;</div>`, "Flash Sales")
	}
	for _, brand := range v.brands {
		name := fields.EscapeText(brand.Name)
		logo := fmt.Sprintf(`<div class="promo-filter-logo-box"><img src="%s" alt="%s Logo" class="promo-filter-logo" loading="lazy"></div>`,
			fields.EscapeText(brand.LogoURL), name)
		active := f.Kind == flash.FilterBrand && f.Brand == brand.Name
		writeFilterItem(b, active, "", `data-filter="brand" data-value="`+name+`"`, "Filter by "+name, logo, name)
	}

	b.WriteString("</div>\n")
}

// writeFilterItem writes one tab. attrs, label, logo and name must
// already be escaped.
func writeFilterItem(b *strings.Builder, active bool, class, attrs, label, logo, name string) {
	selected := "false"
	if active {
		class += " active"
		selected = "true"
	}
	fmt.Fprintf(b, `<div class="promo-filter-item%s" %s tabindex="0" role="tab" aria-selected="%s" aria-label="%s">%s<span class="promo-filter-name">%s</span></div>`+"\n",
		class, attrs, selected, label, logo, name)
}

func (v *view) writeCard(b *strings.Builder, p models.Product, shown bool) {
	style := ""
	if !shown {
		style = ` style="display:none"`
	}
	name := fields.EscapeText(p.Name)
	brand := fields.EscapeText(p.BrandName)

	fmt.Fprintf(b, `<div class="promo-product-card" data-brand="%s" data-flash="%t" data-flash-start="%s" data-flash-end="%s"%s>`+"\n",
		brand, p.IsFlash, fields.EscapeText(p.FlashStart), fields.EscapeText(p.FlashEnd), style)

	if p.BadgeText != "" {
		class := "promo-special-badge"
		if p.FlashBadge {
			class += " flash"
		}
		fmt.Fprintf(b, `<div class="%s">%s</div>`+"\n", class, fields.EscapeText(p.BadgeText))
	}

	if p.ImageURL != "" {
		fmt.Fprintf(b, `<div class="promo-image-wrapper"><img src="%s" alt="%s" class="promo-product-image" loading="lazy" onerror="this.style.display='none'"></div>`+"\n",
			fields.EscapeText(p.ImageURL), name)
	}

	b.WriteString(`<div class="promo-product-info">` + "\n")
	b.WriteString(`<div class="promo-product-header">`)
	fmt.Fprintf(b, `<h3 class="promo-product-name">%s</h3>`, name)
	if p.BrandLogoURL != "" {
		fmt.Fprintf(b, `<img src="%s" alt="%s Logo" class="promo-brand-logo" loading="lazy">`,
			fields.EscapeText(p.BrandLogoURL), brand)
	}
	b.WriteString("</div>\n")

	if v.appearance.ShowItemNumber && strings.TrimSpace(p.ItemNumber) != "" {
		fmt.Fprintf(b, `<p class="promo-product-item"># %s</p>`+"\n", fields.EscapeText(p.ItemNumber))
	}

	descID := fields.EscapeText(fmt.Sprintf("promo-desc-%s-%d", v.id, p.Index))
	fmt.Fprintf(b, `<p class="promo-product-description" id="%s">%s</p>`+"\n", descID, fields.EscapeText(p.Description))
	if len(utf16.Encode([]rune(p.Description))) > SeeMoreThreshold {
		fmt.Fprintf(b, `<a href="#" class="promo-description-toggle" data-target="%s" aria-controls="%s" aria-expanded="false">See More</a>`+"\n", descID, descID)
	}

	b.WriteString(`<div class="promo-product-pricing">` + "\n")
	writePrice(b, "MSRP", "", p.Prices.MSRP)
	writePrice(b, "MAP", "", p.Prices.MAP)
	writePrice(b, "Your Price", "dealer-price", p.Prices.Dealer)
	writePrice(b, "Elite Price", "elite-price", p.Prices.Elite)
	b.WriteString("</div>\n")

	if p.ProductURL != "" {
		fmt.Fprintf(b, `<div class="promo-product-cta-container"><a href="%s" target="_blank" rel="noopener noreferrer" class="promo-product-cta">View Deal</a></div>`+"\n",
			fields.EscapeText(p.ProductURL))
	}

	b.WriteString("</div>\n</div>\n")
}

func writePrice(b *strings.Builder, label, class string, price decimal.NullDecimal) {
	if !price.Valid {
		return
	}
	if class != "" {
		class = " " + class
	}
	fmt.Fprintf(b, `<div class="promo-price-item%s"><span class="promo-price-label">%s:</span><span class="promo-price-value">%s</span></div>`+"\n",
		class, label, fields.FormatPrice(price.Decimal))
}
