package fields

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/models"
)

// DateLayout is the canonical calendar-date form.
const DateLayout = "2006-01-02"

// Spreadsheet serials run from day 1 to 9999-12-31.
const maxSerial = 2958465

var (
	serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	ymdPattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// NormalizeDate converts a cell to YYYY-MM-DD using the local time zone
// for free-text dates. Unparseable cells yield "".
func NormalizeDate(v models.Value) string {
	return NormalizeDateIn(v, time.Local)
}

// NormalizeDateIn is NormalizeDate with an explicit zone for free-text dates.
// Date serials are always read in UTC.
func NormalizeDateIn(v models.Value, loc *time.Location) string {
	if f, ok := v.Float(); ok && f > 0 && f <= maxSerial {
		return SerialToDate(f)
	}
	s := strings.TrimSpace(v.String())
	if s == "" {
		return ""
	}
	if ymdPattern.MatchString(s) {
		return s
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return ""
	}
	return t.In(loc).Format(DateLayout)
}

// SerialToDate converts a spreadsheet date serial to YYYY-MM-DD (UTC).
func SerialToDate(serial float64) string {
	ms := math.Round(serial * 86400000)
	return serialEpoch.Add(time.Duration(ms) * time.Millisecond).Format(DateLayout)
}
