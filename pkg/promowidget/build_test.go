package promowidget

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/promowidget-go/pkg/promowidget/flash"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/models"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/render"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Generator = &render.Generator{
		IDs: &render.Sequence{Prefix: "t-"},
		Now: func() time.Time { return time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC) },
	}
	return opts
}

// writeWorkbook saves rows to sheet "Products" of a new workbook, after
// a title row and a blank row.
func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("Products"); err != nil {
		t.Fatal(err)
	}
	f.SetCellValue("Products", "A1", "Spring promotions")
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		if err := f.SetSheetRow("Products", cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "promos.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save test file: %v", err)
	}
	return path
}

func header() []any {
	cols := append(append([]string{}, models.ExpectedColumns...), models.FlashColumns...)
	row := make([]any, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	return row
}

func TestBuild(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		header(),
		{"Widget Pro", "WP-100", "Sturdy.", "Acme", "https://cdn.example.com/acme.png", "", 199.99, 179.99, 149.5, 139, "https://cdn.example.com/wp.jpg", "https://shop.example.com/wp"},
		{},
		{"Gadget", "G-7", "Shiny.", "Globex", "https://cdn.example.com/globex.png", "", 49, "", 39, "", "", "", "Yes", "2025-06-14", "2025-06-20", "48 HOURS"},
	})

	result, err := Build(path, testOptions())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if result.BookName != "promos.xlsx" {
		t.Errorf("BookName = %q", result.BookName)
	}
	if result.SheetName != "Products" {
		t.Errorf("SheetName = %q, expected Products", result.SheetName)
	}
	if result.HeaderRow != 3 {
		t.Errorf("HeaderRow = %d, expected 3", result.HeaderRow)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("expected 2 rows (blank row skipped), got %d", len(result.Rows))
	}
	if got := result.Rows[1].FlashBadge.String(); got != "48 HOURS" {
		t.Errorf("flash badge = %q", got)
	}
	if result.Widget.ID != "t-1" {
		t.Errorf("widget id = %q, expected t-1", result.Widget.ID)
	}
	for _, s := range []string{"Widget Pro", "Gadget", "$149.50", `data-flash="true"`, `data-filter="flash"`} {
		if !strings.Contains(result.Widget.Embeddable, s) {
			t.Errorf("embeddable missing %q", s)
		}
	}
}

func TestBuildPreviewFilter(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		header(),
		{"Widget Pro", "WP-100", "", "Acme", "a.png", "", 10, 9, 8, 7, "", ""},
		{"Gadget", "G-7", "", "Globex", "g.png", "", 10, 9, 8, 7, "", ""},
	})

	opts := testOptions()
	opts.Filter = flash.Filter{Kind: flash.FilterBrand, Brand: "Globex"}
	result, err := Build(path, opts)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if n := strings.Count(result.Widget.Preview, `style="display:none"`); n != 1 {
		t.Errorf("expected 1 hidden card in preview, got %d", n)
	}
	if strings.Contains(result.Widget.Embeddable, `style="display:none"`) {
		t.Error("embeddable should start unfiltered")
	}
}

func TestBuildReaderCSV(t *testing.T) {
	input := "Product name,Item number,Brand Name,MSRP,Dealer Price,Product URL\r\n" +
		"Widget Pro,WP-100,Acme,199.99,149.5,https://shop.example.com/wp\r\n"

	opts := testOptions()
	opts.ExpectedColumns = []string{"Product name", "Item number", "Brand Name", "MSRP", "Dealer Price", "Product URL"}
	result, err := BuildReader("promos.csv", strings.NewReader(input), opts)
	if err != nil {
		t.Fatalf("BuildReader() error = %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(result.Rows))
	}
	if result.Rows[0].MSRP.Kind() != models.KindNumber {
		t.Errorf("MSRP kind = %v, expected number", result.Rows[0].MSRP.Kind())
	}
	if !strings.Contains(result.Widget.Preview, "$199.99") {
		t.Error("preview missing MSRP")
	}
}

func TestBuildErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.xlsx")
	if err := os.WriteFile(garbage, []byte("not a zip archive"), 0o644); err != nil {
		t.Fatal(err)
	}
	legacy := filepath.Join(dir, "old.xls")
	if err := os.WriteFile(legacy, []byte{0xD0, 0xCF, 0x11, 0xE0}, 0o644); err != nil {
		t.Fatal(err)
	}
	noHeader := writeWorkbook(t, [][]any{
		{"Name", "Price"},
		{"Widget", 10},
	})

	tests := []struct {
		name     string
		path     string
		expected error
	}{
		{"missing file", filepath.Join(dir, "missing.xlsx"), ErrUnreadableFile},
		{"not a workbook", garbage, ErrUnreadableFile},
		{"legacy format", legacy, ErrUnreadableFile},
		{"no header", noHeader, ErrNoHeaderFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.path, testOptions())
			if !errors.Is(err, tt.expected) {
				t.Fatalf("Build() error = %v, expected %v", err, tt.expected)
			}
		})
	}
}

func TestHeaderNotFoundErrorListsColumns(t *testing.T) {
	path := writeWorkbook(t, [][]any{{"Name", "Price"}})

	_, err := Build(path, testOptions())
	var hnf *HeaderNotFoundError
	if !errors.As(err, &hnf) {
		t.Fatalf("expected *HeaderNotFoundError, got %v", err)
	}
	for _, col := range models.ExpectedColumns {
		if !strings.Contains(err.Error(), col) {
			t.Errorf("error message missing %q: %v", col, err)
		}
	}
}

func TestHeaderOnlySheetIsSkipped(t *testing.T) {
	path := writeWorkbook(t, [][]any{header()})

	_, err := Build(path, testOptions())
	if !errors.Is(err, ErrNoHeaderFound) {
		t.Fatalf("Build() error = %v, expected ErrNoHeaderFound", err)
	}
}
