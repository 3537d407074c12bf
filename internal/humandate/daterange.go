// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package humandate

import (
	"strconv"
	"time"

	"github.com/go-playground/locales"

	"texthelpers.app/v2/internal/locale"
)

// Range is a formatted date range. To is empty for a single moment.
type Range struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// String joins both halves with " - ", or returns From alone when there is no
// end.
func (self Range) String() string {
	if self.To == "" {
		return self.From
	}
	return self.From + " - " + self.To
}

// FormatDateRange is DateRange as a single string.
func (self *Formatter) FormatDateRange(localeTag string, start, end any,
) string {
	return self.DateRange(localeTag, start, end).String()
}

// DateRange formats start and an optional end for display, leaving out what
// the reader can infer. The year is shown only when a date is not in the
// current year. An end on the same day as start, and still in the future,
// shows just its clock time. A single moment carries its timezone, a range
// carries it on the end only.
//
// An invalid start gives an empty Range. An invalid or missing end formats
// start as a single moment.
func (self *Formatter) DateRange(localeTag string, startTime, endTime any,
) Range {
	start, ok := self.Parse(startTime)
	if !ok {
		return Range{}
	}
	l := layout{locale.Translator(localeTag)}
	now := self.now()

	end, hasEnd := self.Parse(endTime)
	thisYear := start.Year() == now.Year() && (!hasEnd || end.Year() == now.Year())

	var r Range
	if thisYear {
		r.From = l.dateTime(start, false, !hasEnd)
	} else {
		r.From = l.dateTime(start, true, !hasEnd)
	}

	if !hasEnd {
		return r
	}

	switch {
	case end.Year() != start.Year() && !thisYear:
		r.To = l.dateTime(end, true, true)
	case end.Month() != start.Month() || end.Day() != start.Day() ||
		!end.After(now):
		r.To = l.dateTime(end, false, true)
	default:
		r.To = l.clock(end, true)
	}
	return r
}

// IsInFuture reports whether date is strictly after now. Invalid dates are
// never in the future.
func (self *Formatter) IsInFuture(date any) bool {
	t, ok := self.Parse(date)
	return ok && t.After(self.now())
}

type layout struct {
	trans locales.Translator
}

// dateTime renders "Fri, Mar 1, 6:00 pm", with the year as "Fri, Mar 1, 2019,
// 6:00 pm" and the zone as "... 6:00 pm UTC".
func (self layout) dateTime(t time.Time, year, zone bool) string {
	return self.date(t, year) + ", " + self.clock(t, zone)
}

func (self layout) date(t time.Time, year bool) string {
	weekday := self.trans.WeekdayAbbreviated(t.Weekday())
	if year {
		return weekday + ", " + self.trans.FmtDateMedium(t)
	}
	return weekday + ", " + self.trans.MonthAbbreviated(t.Month()) + " " +
		strconv.Itoa(t.Day())
}

func (self layout) clock(t time.Time, zone bool) string {
	s := self.trans.FmtTimeShort(t)
	if zone {
		s += " " + zoneName(t)
	}
	return s
}

func zoneName(t time.Time) string {
	name, _ := t.Zone()
	if name == "" {
		return t.Format("-07:00")
	}
	return name
}
