// Package promowidget turns product spreadsheets into embeddable promotion
// widgets.
package promowidget

import (
	"github.com/go-logr/logr"

	"github.com/ukaji3/promowidget-go/pkg/promowidget/flash"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/models"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/parser"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/render"
)

// Options configures a build.
type Options struct {
	// Appearance controls the widget look.
	Appearance render.Appearance
	// ExpectedColumns is the header set a sheet is matched against.
	// If empty, models.ExpectedColumns is used.
	ExpectedColumns []string
	// Header tunes header detection.
	Header parser.HeaderParams
	// Filter is applied to the preview only.
	Filter flash.Filter
	// Generator renders the widget. If nil, render.NewGenerator() is used.
	Generator *render.Generator
	// Logger receives progress messages. The zero value discards them.
	Logger logr.Logger
}

// DefaultOptions returns default build options.
func DefaultOptions() Options {
	return Options{
		Appearance:      render.DefaultAppearance(),
		ExpectedColumns: models.ExpectedColumns,
		Header:          parser.DefaultHeaderParams(),
		Filter:          flash.All,
	}
}

func (o Options) expectedColumns() []string {
	if len(o.ExpectedColumns) == 0 {
		return models.ExpectedColumns
	}
	return o.ExpectedColumns
}

func (o Options) headerParams() parser.HeaderParams {
	if o.Header == (parser.HeaderParams{}) {
		return parser.DefaultHeaderParams()
	}
	return o.Header
}

func (o Options) generator() *render.Generator {
	if o.Generator == nil {
		return render.NewGenerator()
	}
	return o.Generator
}
