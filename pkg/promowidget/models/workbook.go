package models

// Sheet is a named grid of cell values in row-major order.
type Sheet struct {
	// Name is the sheet name as it appears in the workbook.
	Name string
	// Rows holds the cells of each row; rows may have different lengths.
	Rows [][]Value
}

// Workbook is an ordered list of sheets read from one file.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Sheets are in workbook order.
	Sheets []Sheet
}
