package render

import (
	"time"

	"github.com/ukaji3/promowidget-go/pkg/promowidget/flash"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/models"
)

const (
	embedStart = "<!-- Start of Promotion Widget -->"
	embedEnd   = "<!-- End of Promotion Widget -->"
)

// Widget is one generated widget instance.
type Widget struct {
	// ID is the instance id shared by both renderings.
	ID string
	// Preview is the static structure for in-page display. It carries no
	// script.
	Preview string
	// Embeddable is the self-contained snippet for third-party pages.
	Embeddable string
}

// Generator renders widgets. The zero value uses UUID ids and the wall
// clock.
type Generator struct {
	IDs IDSource
	Now func() time.Time
}

// NewGenerator returns a Generator with UUID ids and the wall clock.
func NewGenerator() *Generator {
	return &Generator{IDs: UUIDSource{}, Now: time.Now}
}

func (g *Generator) now() time.Time {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return now().Truncate(time.Millisecond)
}

func (g *Generator) newID() string {
	if g.IDs == nil {
		return UUIDSource{}.NewID()
	}
	return g.IDs.NewID()
}

// Generate renders rows with every eligible card shown in the preview.
func (g *Generator) Generate(rows []models.Row, a Appearance) (Widget, error) {
	return g.GenerateFiltered(rows, a, flash.All)
}

// GenerateFiltered renders rows with the preview filtered by f. A filter
// with no entry in the filter bar falls back to flash.All. The embeddable
// snippet always starts unfiltered.
func (g *Generator) GenerateFiltered(rows []models.Row, a Appearance, f flash.Filter) (Widget, error) {
	a = a.Normalize()
	now := g.now()
	id := g.newID()

	products := make([]models.Product, len(rows))
	for i, row := range rows {
		products[i] = Derive(i, row, now.Location())
	}
	v := newView(id, a, products, now)
	if !v.offered(f) {
		f = flash.All
	}

	preview, err := v.structure(f)
	if err != nil {
		return Widget{}, err
	}
	structure := preview
	if f != flash.All {
		if structure, err = v.structure(flash.All); err != nil {
			return Widget{}, err
		}
	}
	script, err := renderScript(id)
	if err != nil {
		return Widget{}, err
	}

	return Widget{
		ID:         id,
		Preview:    preview,
		Embeddable: embedStart + "\n" + structure + "\n" + script + "\n" + embedEnd,
	}, nil
}
