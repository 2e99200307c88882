package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/promowidget-go/pkg/promowidget/models"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	input := "\ufeffProduct name,MSRP,Notes\r\n\"Widget, Deluxe\",199.99,\r\nGadget,,\"said \"\"hi\"\"\"\r\n"

	wb, err := ReadCSV("products.csv", strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	if len(wb.Sheets) != 1 {
		t.Fatalf("Expected 1 sheet, got %d", len(wb.Sheets))
	}
	rows := wb.Sheets[0].Rows
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != models.Text("Product name") {
		t.Errorf("BOM not stripped: %q", rows[0][0].String())
	}
	if rows[1][0] != models.Text("Widget, Deluxe") {
		t.Errorf("Expected quoted field, got %q", rows[1][0].String())
	}
	if n, ok := rows[1][1].Float(); !ok || n != 199.99 {
		t.Errorf("Expected number 199.99, got %v", rows[1][1])
	}
	if !rows[1][2].IsEmpty() || !rows[2][1].IsEmpty() {
		t.Error("Expected empty fields to be empty values")
	}
	if rows[2][2] != models.Text(`said "hi"`) {
		t.Errorf("Expected escaped quotes, got %q", rows[2][2].String())
	}
}

func TestReadWorkbookKeepsSheetOrder(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "Cover")
	f.SetCellValue("Cover", "A1", "Monthly promotions")
	if _, err := f.NewSheet("Products"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Products", "A1", "Product name")
	if _, err := f.NewSheet("Archive"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "promos.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	wb, err := ReadWorkbook(path)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if wb.BookName != "promos.xlsx" {
		t.Errorf("Expected book name promos.xlsx, got %q", wb.BookName)
	}

	var names []string
	for _, s := range wb.Sheets {
		names = append(names, s.Name)
	}
	if strings.Join(names, ",") != "Cover,Products,Archive" {
		t.Errorf("Unexpected sheet order: %v", names)
	}
}

func TestReadWorkbookRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("this is not a zip archive"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := ReadWorkbook(path); err == nil {
		t.Error("Expected error for non-spreadsheet input")
	}
}
