package render

import (
	"strings"
	"testing"
)

func TestCSSIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"promo-widget-3f2a", "promo-widget-3f2a"},
		{"w_1", "w_1"},
		{"1abc", `\31 abc`},
		{"-1a", `-\31 a`},
		{`a"b`, `a\22 b`},
		{"a</style>", `a\3c \2f style\3e `},
		{"ünï", "ünï"},
	}
	for _, tt := range tests {
		if got := cssIdent(tt.input); got != tt.expected {
			t.Errorf("cssIdent(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderStylesScopesAccentToWidget(t *testing.T) {
	first, err := renderStyles("promo-widget-a", Appearance{AccentColor: "#ff0000"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := renderStyles("promo-widget-b", Appearance{AccentColor: "#00ff00"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(first, "#promo-widget-a { --promo-widget-accent-color: #ff0000; }") {
		t.Errorf("first widget accent not scoped:\n%s", first)
	}
	if !strings.Contains(second, "#promo-widget-b { --promo-widget-accent-color: #00ff00; }") {
		t.Errorf("second widget accent not scoped:\n%s", second)
	}
	for _, s := range []string{first, second} {
		if strings.Contains(s, ":root") {
			t.Error("accent color set on the document root")
		}
	}
}
