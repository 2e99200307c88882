package render

import (
	"strconv"

	"github.com/google/uuid"
)

// IDPrefix starts every widget instance id.
const IDPrefix = "promo-widget-"

// IDSource produces widget instance ids. Ids must be unique per call so
// several widgets can share one page.
type IDSource interface {
	NewID() string
}

// UUIDSource issues random UUID-based ids.
type UUIDSource struct{}

// NewID implements IDSource.
func (UUIDSource) NewID() string {
	return IDPrefix + uuid.NewString()
}

// Sequence issues predictable ids (prefix + counter). Not safe for
// concurrent use.
type Sequence struct {
	Prefix string
	n      int
}

// NewID implements IDSource.
func (s *Sequence) NewID() string {
	s.n++
	prefix := s.Prefix
	if prefix == "" {
		prefix = IDPrefix
	}
	return prefix + strconv.Itoa(s.n)
}
