// Package fields derives typed values from raw spreadsheet cells.
// Every helper is total: bad input yields an absent value, never an error.
package fields

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/models"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeText escapes s for interpolation into HTML text or a quoted attribute.
func EscapeText(s string) string {
	if s == "" {
		return ""
	}
	return htmlEscaper.Replace(s)
}

// EscapeValue escapes the string form of a cell.
func EscapeValue(v models.Value) string {
	return EscapeText(v.String())
}

var truthy = map[string]struct{}{
	"1": {}, "y": {}, "yes": {}, "true": {}, "t": {}, "x": {}, "✓": {}, "✔": {}, "flash": {},
}

// ParseFlag reports whether a cell reads as a yes-ish flag.
func ParseFlag(v models.Value) bool {
	_, ok := truthy[strings.ToLower(strings.TrimSpace(v.String()))]
	return ok
}

var (
	nonPrice    = regexp.MustCompile(`[^0-9.]`)
	pricePrefix = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)`)
)

// ParsePrice strips everything but digits and dots and parses the leading
// decimal number. Empty or non-numeric cells are not Valid.
func ParsePrice(v models.Value) decimal.NullDecimal {
	if f, ok := v.Float(); ok {
		if f < 0 {
			f = -f
		}
		return decimal.NewNullDecimal(decimal.NewFromFloat(f))
	}
	stripped := nonPrice.ReplaceAllString(v.String(), "")
	m := pricePrefix.FindString(stripped)
	if m == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(m, "."))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// FormatPrice renders a price with a leading dollar sign and two decimals.
// Halves round away from zero on the decimal value, so 1.005 is $1.01.
func FormatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
