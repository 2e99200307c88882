// Package flash decides whether flash-sale rows are active and which cards a
// filter shows. The decision tables here are the single source for both the
// Go evaluation used by previews and the JavaScript embedded in widgets.
package flash

import (
	"regexp"
	"strconv"
	"time"
)

// bound is one comparison of "now" against a window edge.
type bound int

const (
	// onOrAfterStart holds when now >= start of the start day.
	onOrAfterStart bound = iota
	// onOrBeforeEnd holds when now <= 23:59:59.999 of the end day.
	onOrBeforeEnd
)

// rule is one row of the activity decision table, keyed by which dates are present.
type rule struct {
	hasStart bool
	hasEnd   bool
	checks   []bound
}

var decisionTable = []rule{
	{hasStart: false, hasEnd: false},
	{hasStart: true, hasEnd: true, checks: []bound{onOrAfterStart, onOrBeforeEnd}},
	{hasStart: true, hasEnd: false, checks: []bound{onOrAfterStart}},
	{hasStart: false, hasEnd: true, checks: []bound{onOrBeforeEnd}},
}

var ymd = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)

// localDate builds midnight of a YYYY-MM-DD date in loc. Month and day
// overflow roll forward the same way the browser Date constructor does.
func localDate(s string, loc *time.Location) (time.Time, bool) {
	m := ymd.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	return time.Date(y, time.Month(mo), d, 0, 0, 0, 0, loc), true
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// Active reports whether a flash row is live at now. Dates are YYYY-MM-DD
// local calendar dates in now's location; end is inclusive through the
// last millisecond of its day. Non-flash rows are never active.
func Active(isFlash bool, start, end string, now time.Time) bool {
	if !isFlash {
		return false
	}
	now = now.Truncate(time.Millisecond)
	loc := now.Location()

	for _, r := range decisionTable {
		if r.hasStart != (start != "") || r.hasEnd != (end != "") {
			continue
		}
		for _, c := range r.checks {
			switch c {
			case onOrAfterStart:
				s, ok := localDate(start, loc)
				if !ok || now.Before(s) {
					return false
				}
			case onOrBeforeEnd:
				e, ok := localDate(end, loc)
				if !ok {
					return false
				}
				if now.After(endOfDay(e)) {
					return false
				}
			}
		}
		return true
	}
	return false
}
