// Package sample writes starter spreadsheets pre-filled with example
// products, laid out the way the header detector expects.
package sample

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/promowidget-go/pkg/promowidget/models"
)

// SheetName is the worksheet name of the xlsx template.
const SheetName = "Products"

// Format is a template file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat reads "xlsx" or "csv".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatXLSX, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unsupported template format %q (expected xlsx or csv)", s)
}

// FileName is the default file name for a template in format f.
func (f Format) FileName() string {
	return "product_template." + string(f)
}

// Columns returns the template header: the expected columns followed by
// the optional flash columns.
func Columns() []string {
	cols := make([]string, 0, len(models.ExpectedColumns)+len(models.FlashColumns))
	cols = append(cols, models.ExpectedColumns...)
	return append(cols, models.FlashColumns...)
}

// FlashWindow returns the example flash sale window for a template written
// on today: from the day before through six days after, as local
// YYYY-MM-DD calendar dates.
func FlashWindow(today time.Time) (start, end string) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -1).Format(dateLayout), day.AddDate(0, 0, 6).Format(dateLayout)
}

const dateLayout = "2006-01-02"

// Products returns the example rows for a template written on today, in
// Columns order. nil is an empty cell.
func Products(today time.Time) [][]any {
	start, end := FlashWindow(today)
	return [][]any{
		{
			"Performance Widget", "W-001",
			"Experience unparalleled performance and reliability with our next-generation widget, designed for professionals.",
			"Acme Corp", "https://placehold.co/120x60/cccccc/000000?text=ACME", "20% OFF!",
			199.99, 179.99, 149.99, 139.99,
			"https://placehold.co/400x300/007bff/white?text=Product+1", "https://example.com/product1",
			nil, nil, nil, nil,
		},
		{
			"Synergy Gadget", "G-002",
			"Seamlessly integrates with your workflow, boosting productivity and collaboration.",
			"Globex Inc", "https://placehold.co/120x60/28a745/ffffff?text=GLOBEX", nil,
			249.99, 229.99, 199.99, nil,
			"https://placehold.co/400x300/28a745/white?text=Product+2", "https://example.com/product2",
			"Yes", start, end, "⚡ Weekly Flash",
		},
		{
			"Quantum Device", "D-003",
			"Cutting-edge technology in a compact form factor.",
			"Acme Corp", "https://placehold.co/120x60/cccccc/000000?text=ACME", "Free Shipping",
			99.50, 89.50, 75.00, 69.99,
			"https://placehold.co/400x300/6c757d/white?text=Product+3", "https://example.com/product3",
			nil, nil, nil, nil,
		},
	}
}

// Write writes the template in format f. today dates the example flash sale.
func Write(w io.Writer, f Format, today time.Time) error {
	switch f {
	case FormatXLSX:
		return WriteXLSX(w, today)
	case FormatCSV:
		return WriteCSV(w, today)
	}
	return fmt.Errorf("unsupported template format %q", f)
}

// WriteXLSX writes the template as a workbook with a styled header row.
func WriteXLSX(w io.Writer, today time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	cols := Columns()
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	for i, row := range Products(today) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#007BFF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(cols))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyleID); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "A", lastCol, 20); err != nil {
		return err
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	return f.Write(w)
}

// WriteCSV writes the template as UTF-8 CSV with a byte order mark and
// CRLF line endings.
func WriteCSV(w io.Writer, today time.Time) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("\ufeff"); err != nil {
		return err
	}

	cw := csv.NewWriter(bw)
	cw.UseCRLF = true
	if err := cw.Write(Columns()); err != nil {
		return err
	}
	for _, row := range Products(today) {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = csvField(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

func csvField(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
