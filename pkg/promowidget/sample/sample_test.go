package sample

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ukaji3/promowidget-go/pkg/promowidget/fields"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/flash"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/models"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/parser"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"xlsx", FormatXLSX, false},
		{" CSV ", FormatCSV, false},
		{"xls", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseFormat(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
	if name := FormatCSV.FileName(); name != "product_template.csv" {
		t.Errorf("FileName() = %q", name)
	}
}

func TestProductsMatchColumns(t *testing.T) {
	n := len(Columns())
	for i, row := range Products(time.Now()) {
		if len(row) != n {
			t.Errorf("product %d has %d cells, expected %d", i, len(row), n)
		}
	}
}

// roundTrip writes a template in format f and normalizes it back.
func roundTrip(t *testing.T, f Format, today time.Time) *parser.Normalized {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, f, today); err != nil {
		t.Fatalf("Write(%s) error = %v", f, err)
	}
	wb, err := parser.ReadWorkbookFrom(f.FileName(), &buf)
	if err != nil {
		t.Fatalf("ReadWorkbookFrom() error = %v", err)
	}
	normalized, err := parser.NewNormalizer(models.ExpectedColumns).Normalize(wb)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	return normalized
}

var writtenOn = time.Date(2025, 9, 16, 9, 0, 0, 0, time.Local)

func TestFlashWindow(t *testing.T) {
	tests := []struct {
		today time.Time
		start string
		end   string
	}{
		{writtenOn, "2025-09-15", "2025-09-22"},
		{time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "2025-02-28", "2025-03-07"},
		{time.Date(2024, 12, 28, 23, 59, 0, 0, time.UTC), "2024-12-27", "2025-01-03"},
		// The calendar date is read in today's own zone.
		{time.Date(2025, 9, 16, 23, 30, 0, 0, time.FixedZone("UTC-8", -8*3600)), "2025-09-15", "2025-09-22"},
	}
	for _, tt := range tests {
		start, end := FlashWindow(tt.today)
		if start != tt.start || end != tt.end {
			t.Errorf("FlashWindow(%v) = %s, %s; expected %s, %s", tt.today, start, end, tt.start, tt.end)
		}
	}
}

func TestTemplateFlashSaleIsLive(t *testing.T) {
	now := time.Now()
	for _, f := range []Format{FormatXLSX, FormatCSV} {
		gadget := roundTrip(t, f, now).Rows[1]
		start := fields.NormalizeDate(gadget.FlashStart)
		end := fields.NormalizeDate(gadget.FlashEnd)
		if !flash.Active(true, start, end, now) {
			t.Errorf("%s template flash sale %s to %s is not live at %v", f, start, end, now)
		}
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatXLSX, FormatCSV} {
		t.Run(string(f), func(t *testing.T) {
			got := roundTrip(t, f, writtenOn)

			if got.HeaderRow != 0 {
				t.Errorf("HeaderRow = %d, expected 0", got.HeaderRow)
			}
			if len(got.Rows) != len(Products(writtenOn)) {
				t.Fatalf("got %d rows, expected %d", len(got.Rows), len(Products(writtenOn)))
			}

			gadget := got.Rows[1]
			if gadget.ProductName.String() != "Synergy Gadget" {
				t.Errorf("product name = %q", gadget.ProductName.String())
			}
			if v, ok := gadget.DealerPrice.Float(); !ok || v != 199.99 {
				t.Errorf("dealer price = %v (number=%v), expected 199.99", v, ok)
			}
			if !gadget.ElitePrice.IsEmpty() {
				t.Errorf("elite price should be empty, got %q", gadget.ElitePrice.String())
			}
			if gadget.FlashBadge.String() != "⚡ Weekly Flash" {
				t.Errorf("flash badge = %q", gadget.FlashBadge.String())
			}
			if gadget.FlashStart.String() != "2025-09-15" {
				t.Errorf("flash start = %q", gadget.FlashStart.String())
			}
			if gadget.FlashEnd.String() != "2025-09-22" {
				t.Errorf("flash end = %q", gadget.FlashEnd.String())
			}
		})
	}
}

func TestWriteCSVLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, writtenOn); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\ufeffProduct name,Item number,") {
		t.Errorf("unexpected start: %q", out[:40])
	}
	if lines := strings.Count(out, "\r\n"); lines != len(Products(writtenOn))+1 {
		t.Errorf("got %d CRLF lines, expected %d", lines, len(Products(writtenOn))+1)
	}
	if !strings.Contains(out, ",75,") {
		t.Error("whole-number price not written compactly")
	}
}
