// Package parser reads spreadsheet files into value grids and locates the
// product header row within them.
package parser

import (
	"math"
	"strconv"

	"github.com/ukaji3/promowidget-go/pkg/promowidget/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells reads every row of a sheet as raw cell values.
// Text cells stay text; numeric and date cells become numbers (dates as
// serials) so later stages can tell them apart.
func ExtractCells(f *excelize.File, sheetName string) ([][]models.Value, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([][]models.Value, 0, len(rows))
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		values := make([]models.Value, len(row))

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			values[colIdx] = typedValue(cellValue, cellType)
		}

		result = append(result, values)
	}

	return result, nil
}

// typedValue converts a raw cell string according to its stored type.
func typedValue(raw string, cellType excelize.CellType) models.Value {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.Text(raw)
	case excelize.CellTypeBool:
		if raw == "1" || raw == "TRUE" || raw == "true" {
			return models.Text("true")
		}
		return models.Text("false")
	case excelize.CellTypeError:
		return models.Value{}
	default:
		return parseValue(raw)
	}
}

// parseValue attempts to parse a string value as a number.
// Returns a number for integers and decimals, or the original text.
func parseValue(s string) models.Value {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return models.Number(f)
	}
	// Return as text
	return models.Text(s)
}
