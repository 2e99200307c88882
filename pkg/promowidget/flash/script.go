package flash

import (
	"fmt"
	"strings"
)

// ActiveJS returns the browser-side equivalent of Active as a function
// isFlashActive(card, now) reading data-flash* attributes.
func ActiveJS() string {
	var b strings.Builder
	b.WriteString(`function parseLocalYMD(ymd) {
    var m = /^(\d{4})-(\d{1,2})-(\d{1,2})$/.exec(ymd);
    if (!m) return new Date(NaN);
    var d = new Date(0);
    d.setFullYear(parseInt(m[1], 10), parseInt(m[2], 10) - 1, parseInt(m[3], 10));
    d.setHours(0, 0, 0, 0);
    return d;
}
function isFlashActive(card, now) {
    if (card.getAttribute('data-flash') !== 'true') return false;
    var startStr = card.getAttribute('data-flash-start') || '';
    var endStr = card.getAttribute('data-flash-end') || '';
    var start = startStr ? parseLocalYMD(startStr) : null;
    var end = endStr ? parseLocalYMD(endStr) : null;
    if (end) end.setHours(23, 59, 59, 999);
`)
	for _, r := range decisionTable {
		fmt.Fprintf(&b, "    if (%s) return %s;\n", presenceJS(r), checksJS(r.checks))
	}
	b.WriteString("    return false;\n}\n")
	return b.String()
}

func presenceJS(r rule) string {
	start, end := "startStr", "endStr"
	if !r.hasStart {
		start = "!" + start
	}
	if !r.hasEnd {
		end = "!" + end
	}
	return start + " && " + end
}

func checksJS(checks []bound) string {
	if len(checks) == 0 {
		return "true"
	}
	parts := make([]string, 0, len(checks))
	for _, c := range checks {
		switch c {
		case onOrAfterStart:
			parts = append(parts, "now >= start")
		case onOrBeforeEnd:
			parts = append(parts, "now <= end")
		}
	}
	return strings.Join(parts, " && ")
}

// VisibleJS returns the browser-side equivalent of Visible as a function
// isCardVisible(type, value, card, now). It calls isFlashActive.
func VisibleJS() string {
	var b strings.Builder
	b.WriteString(`function isCardVisible(type, value, card, now) {
    var isFlash = card.getAttribute('data-flash') === 'true';
    var brand = card.getAttribute('data-brand') || '';
`)
	for _, p := range policies {
		conds := make([]string, 0, 3)
		if p.requireFlash {
			conds = append(conds, "isFlash")
		}
		if p.matchBrand {
			conds = append(conds, "brand === value")
		}
		conds = append(conds, "(!isFlash || isFlashActive(card, now))")
		fmt.Fprintf(&b, "    if (type === '%s') return %s;\n", p.kind, strings.Join(conds, " && "))
	}
	b.WriteString("    return false;\n}\n")
	return b.String()
}
