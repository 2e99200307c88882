package parser

import (
	"github.com/go-logr/logr"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/models"
)

// HeaderParams holds parameters for header row detection.
type HeaderParams struct {
	// ScanRows is how many rows at the top of a sheet are candidates.
	ScanRows int
	// MaxMissing is how many expected columns a header may lack.
	MaxMissing int
	// MinPresent is the floor on matched columns for short expected lists.
	MinPresent int
}

// DefaultHeaderParams returns default header detection parameters.
func DefaultHeaderParams() HeaderParams {
	return HeaderParams{
		ScanRows:   10,
		MaxMissing: 4,
		MinPresent: 3,
	}
}

// Required returns how many of n expected columns a header row must contain.
func (p HeaderParams) Required(n int) int {
	required := n - p.MaxMissing
	if required < p.MinPresent {
		required = p.MinPresent
	}
	if required > n {
		required = n
	}
	if required < 1 {
		required = 1
	}
	return required
}

// Normalized is the outcome of normalizing a workbook.
type Normalized struct {
	// SheetName is the sheet the rows came from.
	SheetName string
	// HeaderRow is the 0-based index of the header row within the sheet.
	HeaderRow int
	// Headers are the normalized keys by column position ("" for blank headers).
	Headers []string
	// Rows are the data rows below the header, in sheet order.
	Rows []models.Row
}

// Normalizer locates the header row of a workbook and turns the rows
// below it into normalized rows.
type Normalizer struct {
	Expected []string
	Params   HeaderParams
	Log      logr.Logger
}

// NewNormalizer returns a Normalizer with default parameters.
func NewNormalizer(expected []string) *Normalizer {
	return &Normalizer{
		Expected: expected,
		Params:   DefaultHeaderParams(),
	}
}

// Normalize scans sheets in order and returns the rows of the first sheet
// with a qualifying header row and at least one data row.
func (n *Normalizer) Normalize(wb *models.Workbook) (*Normalized, error) {
	expected := make(map[string]struct{}, len(n.Expected))
	for _, col := range n.Expected {
		expected[models.NormalizeKey(col)] = struct{}{}
	}
	required := n.Params.Required(len(expected))

	for _, sheet := range wb.Sheets {
		log := n.Log.WithValues("sheet", sheet.Name)

		headerIdx := n.findHeader(sheet.Rows, expected, required)
		if headerIdx < 0 {
			log.V(1).Info("skipping sheet: no header row", "scanRows", n.Params.ScanRows, "required", required)
			continue
		}

		headers := headerKeys(sheet.Rows[headerIdx])
		rows := dataRows(sheet.Rows[headerIdx+1:], headers)
		if len(rows) == 0 {
			log.V(1).Info("skipping sheet: header row has no data below it", "headerRow", headerIdx+1)
			continue
		}

		log.V(1).Info("found header row", "headerRow", headerIdx+1, "rows", len(rows))
		return &Normalized{
			SheetName: sheet.Name,
			HeaderRow: headerIdx,
			Headers:   headers,
			Rows:      rows,
		}, nil
	}

	return nil, NewHeaderNotFoundError(n.Expected)
}

// findHeader returns the index of the first qualifying row within the scan
// window, or -1.
func (n *Normalizer) findHeader(rows [][]models.Value, expected map[string]struct{}, required int) int {
	limit := min(n.Params.ScanRows, len(rows))
	for i := 0; i < limit; i++ {
		found := make(map[string]struct{})
		for _, cell := range rows[i] {
			key := models.NormalizeKey(cell.String())
			if _, ok := expected[key]; ok {
				found[key] = struct{}{}
			}
		}
		if len(found) >= required {
			return i
		}
	}
	return -1
}

func headerKeys(row []models.Value) []string {
	keys := make([]string, len(row))
	for i, cell := range row {
		keys[i] = models.NormalizeKey(cell.String())
	}
	return keys
}

// dataRows maps each non-blank row to a models.Row keyed by header position.
// Cells under blank headers are dropped; for duplicate headers the first
// column with a value wins.
func dataRows(rows [][]models.Value, headers []string) []models.Row {
	var result []models.Row
	for _, cells := range rows {
		var row models.Row
		hasData := false
		for col, v := range cells {
			if v.IsEmpty() || col >= len(headers) || headers[col] == "" {
				continue
			}
			if row.Has(headers[col]) {
				continue
			}
			row.Set(headers[col], v)
			hasData = true
		}
		if hasData {
			result = append(result, row)
		}
	}
	return result
}
