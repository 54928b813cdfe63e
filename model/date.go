package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/iand/gdate"
)

const secondsPerDay = 24 * 60 * 60

// Date is a calendar date as read from a source. Only precise day dates can
// take part in longevity arithmetic.
type Date struct {
	Date gdate.Date
}

func UnknownDate() *Date {
	return &Date{
		Date: &gdate.Unknown{},
	}
}

func PreciseDate(y, m, d int) *Date {
	if m < 1 || m > 12 {
		panic("month must be between 1 and 12")
	}
	return &Date{
		Date: &gdate.Precise{Y: y, M: m, D: d},
	}
}

// DateOf returns the calendar date of t in t's location, discarding the time of day.
func DateOf(t time.Time) *Date {
	return PreciseDate(t.Year(), int(t.Month()), t.Day())
}

// IsUnknown reports whether d is an Unknown date
func (d *Date) IsUnknown() bool {
	if d == nil || d.Date == nil {
		return true
	}

	_, ok := d.Date.(*gdate.Unknown)
	return ok
}

// IsPrecise reports whether d identifies a single day.
func (d *Date) IsPrecise() bool {
	if d.IsUnknown() {
		return false
	}
	_, ok := gdate.AsPrecise(d.Date)
	return ok
}

func (d *Date) String() string {
	if d.IsUnknown() {
		return "unknown"
	}

	return d.Date.String()
}

// Format formats a precise date using a time layout. Imprecise dates fall
// back to their textual form.
func (d *Date) Format(layout string) string {
	t, ok := d.Time()
	if !ok {
		return d.String()
	}
	return t.Format(layout)
}

func (d *Date) Year() (int, bool) {
	if d.IsUnknown() {
		return 0, false
	}

	yearer, ok := gdate.AsYear(d.Date)
	if !ok {
		return 0, false
	}

	return yearer.Year(), true
}

func (d *Date) YMD() (int, int, int, bool) {
	if d.IsUnknown() {
		return 0, 0, 0, false
	}

	if p, ok := gdate.AsPrecise(d.Date); ok {
		return p.Y, p.M, p.D, true
	}
	return 0, 0, 0, false
}

// Time returns midnight UTC on the day d represents.
func (d *Date) Time() (time.Time, bool) {
	y, m, dd, ok := d.YMD()
	if !ok {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), dd, 0, 0, 0, 0, time.UTC), true
}

// SortsBefore reports whether d falls on an earlier day than other.
func (d *Date) SortsBefore(other *Date) bool {
	t1, ok := d.Time()
	if !ok {
		return false
	}
	t2, ok := other.Time()
	if !ok {
		return true
	}
	return t1.Before(t2)
}

// DaysUntil returns the number of whole days from d to other. The result is
// negative when other is earlier than d.
func (d *Date) DaysUntil(other *Date) (int, bool) {
	t1, ok := d.Time()
	if !ok {
		return 0, false
	}
	t2, ok := other.Time()
	if !ok {
		return 0, false
	}

	return int((t2.Unix() - t1.Unix()) / secondsPerDay), true
}

// DateLayouts are the time layouts tried, in order, by ParseDate.
var DateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"2006-01-02",
}

// ParseDate parses a human readable day date such as "Feb 22, 1732". Forms not
// matching DateLayouts are handed to a genealogical date parser, so "22 FEB 1732"
// is also accepted. The result is always a precise date.
func ParseDate(s string) (*Date, error) {
	norm := normalizeMonth(s)
	for _, layout := range DateLayouts {
		t, err := time.Parse(layout, norm)
		if err == nil {
			return DateOf(t), nil
		}
	}

	dp := &gdate.Parser{}
	gd, err := dp.Parse(s)
	if err != nil {
		return nil, err
	}
	if _, ok := gdate.AsPrecise(gd); !ok {
		return nil, fmt.Errorf("not a precise date: %q", s)
	}
	return &Date{Date: gd}, nil
}

// normalizeMonth rewrites a leading month abbreviation written as "Sept" or
// with a trailing period ("Feb.") into the three letter form.
func normalizeMonth(s string) string {
	i := strings.IndexByte(s, ' ')
	if i <= 0 {
		return s
	}
	m := strings.TrimSuffix(s[:i], ".")
	if strings.EqualFold(m, "sept") {
		m = m[:3]
	}
	return m + s[i:]
}
