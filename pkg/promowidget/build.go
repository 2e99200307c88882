package promowidget

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/promowidget-go/pkg/promowidget/models"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/parser"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/render"
)

var errLegacyFormat = errors.New("legacy .xls workbooks are not supported; save as .xlsx or .csv")

// Table is a normalized spreadsheet.
type Table struct {
	// BookName is the input file name.
	BookName string
	// SheetName is the sheet the rows came from.
	SheetName string
	// HeaderRow is the 1-based row number of the header.
	HeaderRow int
	Rows      []models.Row
}

// Result is a normalized spreadsheet and the widget generated from it.
type Result struct {
	Table
	Widget render.Widget
}

// Load reads and normalizes a spreadsheet file.
func Load(path string, opts Options) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, NewUnreadableFileError(path, err)
	}
	defer file.Close()

	return LoadReader(filepath.Base(path), file, opts)
}

// LoadReader reads and normalizes a spreadsheet from r. The name's
// extension selects the format.
func LoadReader(name string, r io.Reader, opts Options) (*Table, error) {
	if strings.EqualFold(filepath.Ext(name), ".xls") {
		return nil, NewUnreadableFileError(name, errLegacyFormat)
	}

	wb, err := parser.ReadWorkbookFrom(name, r)
	if err != nil {
		return nil, NewUnreadableFileError(name, err)
	}

	n := parser.NewNormalizer(opts.expectedColumns())
	n.Params = opts.headerParams()
	n.Log = opts.Logger
	normalized, err := n.Normalize(wb)
	if err != nil {
		return nil, err
	}

	opts.Logger.Info("normalized spreadsheet",
		"book", wb.BookName, "sheet", normalized.SheetName,
		"headerRow", normalized.HeaderRow+1, "rows", len(normalized.Rows))

	return &Table{
		BookName:  wb.BookName,
		SheetName: normalized.SheetName,
		HeaderRow: normalized.HeaderRow + 1,
		Rows:      normalized.Rows,
	}, nil
}

// Build reads a spreadsheet file and generates its widget.
func Build(path string, opts Options) (*Result, error) {
	table, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	return generate(table, opts)
}

// BuildReader reads a spreadsheet from r and generates its widget.
func BuildReader(name string, r io.Reader, opts Options) (*Result, error) {
	table, err := LoadReader(name, r, opts)
	if err != nil {
		return nil, err
	}
	return generate(table, opts)
}

func generate(table *Table, opts Options) (*Result, error) {
	w, err := opts.generator().GenerateFiltered(table.Rows, opts.Appearance, opts.Filter)
	if err != nil {
		return nil, err
	}
	opts.Logger.V(1).Info("generated widget", "id", w.ID, "cards", len(table.Rows))
	return &Result{Table: *table, Widget: w}, nil
}
