package render

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

// breakpoint is one max-width step of a fixed column layout. MaxWidth 0
// is the unconditional rule.
type breakpoint struct {
	MaxWidth int
	Count    int
}

type styleData struct {
	Selector    string
	Accent      string
	Dark        bool
	Sharp       bool
	Columns     string
	Breakpoints []breakpoint
}

// The accent color is validated before it reaches this template.
var styleTemplate = template.Must(template.New("styles").Parse(`<style>
  {{.Selector}} { --promo-widget-accent-color: {{.Accent}}; }
  .promo-widget-root { --promo-surface: #fff; --promo-border: #e9ecef; --promo-text: #333; --promo-muted: #6c757d; --promo-subtle: #555; --promo-image-bg: #f8f9fa; --promo-divider: #dee2e6; --promo-radius: 12px; --promo-radius-sm: 8px; }
{{- if .Dark}}
  .promo-widget-root[data-theme="dark"] { --promo-surface: #1f2329; --promo-border: #343a40; --promo-text: #f1f3f5; --promo-muted: #adb5bd; --promo-subtle: #ced4da; --promo-image-bg: #2b3035; --promo-divider: #495057; }
{{- end}}
{{- if .Sharp}}
  .promo-widget-root[data-corners="sharp"] { --promo-radius: 2px; --promo-radius-sm: 2px; }
{{- end}}
  .promo-logo-filter-container { display: flex; flex-wrap: wrap; gap: 16px; align-items: flex-start; margin-bottom: 20px; padding-bottom: 20px; border-bottom: 1px solid var(--promo-divider); }
  .promo-filter-item { display: flex; flex-direction: column; align-items: center; gap: 5px; cursor: pointer; text-align: center; padding: 5px; border: 2px solid transparent; border-radius: var(--promo-radius-sm); transition: all 0.2s ease; }
  .promo-filter-item:hover { transform: translateY(-2px); }
  .promo-filter-item:focus-visible { outline: 2px solid var(--promo-widget-accent-color, #007bff); outline-offset: 2px; }
  .promo-filter-item.active { border-color: var(--promo-widget-accent-color, #007bff); }
  .promo-filter-item.active .promo-filter-name { color: var(--promo-widget-accent-color, #007bff); font-weight: 700; }
  .promo-filter-logo-box { width: 100px; height: 60px; display: flex; justify-content: center; align-items: center; background-color: var(--promo-surface); color: var(--promo-text); border-radius: var(--promo-radius-sm); box-shadow: 0 2px 4px rgba(0,0,0,0.05); overflow: hidden; font-weight: 700; font-size: 1rem; }
  .promo-filter-logo-box.all-brands { border: 2px dashed var(--promo-muted); }
  .promo-filter-logo-box.flash { background: linear-gradient(135deg, #ff6b6b, #feca57); color: #111; }
  .promo-filter-logo { max-width: 100%; max-height: 100%; object-fit: contain; }
  .promo-filter-name { font-size: 0.8em; font-weight: 500; color: var(--promo-muted); width: 100px; white-space: nowrap; overflow: hidden; text-overflow: ellipsis; }
  .promo-widget-container { display: grid; grid-template-columns: repeat(auto-fill, minmax(250px, 1fr)); gap: 25px; font-family: inherit; }
  .promo-product-card { background-color: var(--promo-surface); border: 1px solid var(--promo-border); border-radius: var(--promo-radius); overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.06); transition: transform 0.3s ease, box-shadow 0.3s ease; display: flex; flex-direction: column; position: relative; }
  .promo-product-card:hover { transform: translateY(-5px); box-shadow: 0 8px 25px rgba(0,0,0,0.1); }
  .promo-special-badge { position: absolute; top: 12px; left: -1px; background-color: #dc3545; color: #fff; padding: 5px 12px; font-size: 0.8em; font-weight: 700; border-radius: 0 5px 5px 0; box-shadow: 0 2px 5px rgba(0,0,0,0.2); z-index: 1; }
  .promo-special-badge.flash { background: linear-gradient(135deg, #ff6b6b, #feca57); color: #111; }
  .promo-image-wrapper { display: flex; justify-content: center; align-items: center; aspect-ratio: 4/3; background-color: var(--promo-image-bg); }
  .promo-product-image { width: 100%; height: 100%; object-fit: contain; display: block; }
  .promo-product-info { padding: 20px; flex-grow: 1; display: flex; flex-direction: column; }
  .promo-product-header { display: flex; justify-content: space-between; align-items: flex-start; gap: 10px; margin-bottom: 5px; }
  .promo-product-name { font-size: 1.15em; font-weight: 600; color: var(--promo-text); line-height: 1.3; margin: 0; }
  .promo-brand-logo { width: 50px; height: auto; max-height: 40px; object-fit: contain; flex-shrink: 0; }
  .promo-product-item { font-size: 0.8em; color: var(--promo-muted); margin: 0 0 10px 0; }
  .promo-product-description { font-size: 0.9em; color: var(--promo-subtle); margin: 0 0 5px 0; line-height: 1.5; display: -webkit-box; -webkit-line-clamp: 3; -webkit-box-orient: vertical; overflow: hidden; }
  .promo-product-description.expanded { -webkit-line-clamp: unset; }
  .promo-description-toggle { font-size: 0.85em; font-weight: 600; color: var(--promo-widget-accent-color, #007bff); cursor: pointer; text-decoration: none; margin-bottom: 15px; align-self: flex-start; }
  .promo-product-pricing { margin-bottom: 20px; display: flex; flex-direction: column; gap: 6px; }
  .promo-price-item { display: flex; justify-content: space-between; align-items: baseline; font-size: 0.9em; }
  .promo-price-label { font-weight: 500; color: var(--promo-muted); }
  .promo-price-value { font-weight: 600; color: var(--promo-text); }
  .promo-price-item.dealer-price .promo-price-value { font-weight: 700; color: #d9534f; font-size: 1.5em; }
  .promo-price-item.elite-price .promo-price-value { font-weight: 700; color: #b58900; }
  .promo-product-cta-container { margin-top: auto; padding-top: 10px; }
  .promo-product-cta { display: block; padding: 12px; background-color: var(--promo-widget-accent-color, #007bff); color: #fff; text-align: center; text-decoration: none; border-radius: var(--promo-radius-sm); font-weight: 600; font-size: 1em; transition: filter 0.2s; }
  .promo-product-cta:hover { filter: brightness(0.85); }
  .promo-empty-message { grid-column: 1 / -1; text-align: center; color: var(--promo-muted); padding: 30px 0; margin: 0; }
{{- range .Breakpoints}}
{{- if .MaxWidth}}
  @media (max-width: {{.MaxWidth}}px) { .promo-widget-root[data-columns="{{$.Columns}}"] .promo-widget-container { grid-template-columns: repeat({{.Count}}, minmax(0, 1fr)); } }
{{- else}}
  .promo-widget-root[data-columns="{{$.Columns}}"] .promo-widget-container { grid-template-columns: repeat({{.Count}}, minmax(0, 1fr)); }
{{- end}}
{{- end}}
</style>`))

// columnBreakpoints collapses a fixed grid of n columns on narrower
// screens. Auto layouts need no breakpoints.
func columnBreakpoints(c Columns) []breakpoint {
	n, err := strconv.Atoi(string(c))
	if err != nil || n < 1 {
		return nil
	}
	return []breakpoint{
		{Count: n},
		{MaxWidth: 1024, Count: min(n, 3)},
		{MaxWidth: 768, Count: min(n, 2)},
		{MaxWidth: 480, Count: 1},
	}
}

// renderStyles returns the style block for the widget with id. The accent
// color is set on that widget only.
func renderStyles(id string, a Appearance) (string, error) {
	data := styleData{
		Selector:    "#" + cssIdent(id),
		Accent:      a.AccentColor,
		Dark:        a.Theme == ThemeDark,
		Sharp:       a.Corners == CornersSharp,
		Columns:     string(a.Columns),
		Breakpoints: columnBreakpoints(a.Columns),
	}
	var b strings.Builder
	if err := styleTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// cssIdent escapes s for use as a CSS identifier.
func cssIdent(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9' && (i == 0 || i == 1 && s[0] == '-'):
			fmt.Fprintf(&b, "\\%x ", r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r >= 0x80:
			b.WriteRune(r)
		default:
			fmt.Fprintf(&b, "\\%x ", r)
		}
	}
	return b.String()
}
