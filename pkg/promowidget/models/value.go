// Package models defines data structures for spreadsheet rows and generated widgets.
package models

import (
	"math"
	"strconv"
)

// Kind is the shape of a cell value.
type Kind int

const (
	// KindEmpty is an absent or blank cell.
	KindEmpty Kind = iota
	// KindText is a string cell.
	KindText
	// KindNumber is a numeric cell (including date serials).
	KindNumber
)

// Value is a single cell value: text, number, or empty.
// The zero value is an empty cell.
type Value struct {
	kind Kind
	text string
	num  float64
}

// Text returns a text value. The empty string yields an empty value.
func Text(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{kind: KindText, text: s}
}

// Number returns a numeric value. NaN and infinities yield an empty value.
func Number(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{kind: KindNumber, num: f}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsEmpty reports whether the cell is absent or blank.
func (v Value) IsEmpty() bool {
	return v.kind == KindEmpty
}

// Float returns the numeric content and whether the value is a number.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// String stringifies the value. Numbers use the shortest decimal form
// without exponent, empty values yield "".
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}
