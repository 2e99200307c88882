package parser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/promowidget-go/pkg/promowidget/models"
	"github.com/xuri/excelize/v2"
)

// csvSheetName is the single sheet name given to CSV input.
const csvSheetName = "Sheet1"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadWorkbook reads a spreadsheet file (.xlsx, .xlsm, .xltx, .csv) into a Workbook.
func ReadWorkbook(path string) (*models.Workbook, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadWorkbookFrom(filepath.Base(path), file)
}

// ReadWorkbookFrom reads a spreadsheet from r. The name's extension selects
// CSV parsing; anything else is opened as an OOXML workbook.
func ReadWorkbookFrom(name string, r io.Reader) (*models.Workbook, error) {
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		return ReadCSV(name, r)
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := &models.Workbook{BookName: name}
	for _, sheetName := range f.GetSheetList() {
		rows, err := ExtractCells(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		wb.Sheets = append(wb.Sheets, models.Sheet{Name: sheetName, Rows: rows})
	}
	return wb, nil
}

// ReadCSV reads comma-separated input as a single-sheet workbook. Numeric
// fields become numbers the same way untyped spreadsheet cells do.
func ReadCSV(name string, r io.Reader) (*models.Workbook, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([][]models.Value, 0, len(records))
	for _, record := range records {
		values := make([]models.Value, len(record))
		for i, field := range record {
			if field == "" {
				continue
			}
			values[i] = parseValue(field)
		}
		rows = append(rows, values)
	}

	return &models.Workbook{
		BookName: name,
		Sheets:   []models.Sheet{{Name: csvSheetName, Rows: rows}},
	}, nil
}
