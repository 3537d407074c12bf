// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package humandate formats timestamps for people: short relative strings
// like "3m ago" and compact date ranges like "Fri, Mar 1, 6:00 pm - 9:00 pm
// UTC".
package humandate // import "texthelpers.app/v2/internal/humandate"

import (
	"time"

	"texthelpers.app/v2/internal/timezone"
)

// Clock returns the current time.
type Clock func() time.Time

// Formatter holds the clock and location used by every operation. It is
// immutable and safe for concurrent use.
type Formatter struct {
	clock    Clock
	location *time.Location
}

type Option func(*Formatter)

// WithClock replaces time.Now as the source of the current time.
func WithClock(clock Clock) Option {
	return func(f *Formatter) { f.clock = clock }
}

// WithTimezone sets the location dates are displayed in. Unknown names
// resolve to UTC.
func WithTimezone(tz string) Option {
	return func(f *Formatter) { f.location = timezone.Location(tz) }
}

// WithLocation sets the location dates are displayed in.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) { f.location = loc }
}

// New returns a Formatter using time.Now and the local timezone, unless
// changed by opts.
func New(opts ...Option) *Formatter {
	f := &Formatter{clock: time.Now, location: time.Local}
	for _, fn := range opts {
		fn(f)
	}
	return f
}

func (self *Formatter) now() time.Time { return self.clock().In(self.location) }

// Location returns the location dates are displayed in.
func (self *Formatter) Location() *time.Location { return self.location }

// Parse normalizes date into a time in the formatter location.
func (self *Formatter) Parse(date any) (time.Time, bool) {
	t, ok := parseTimestamp(date, self.location)
	if !ok {
		return time.Time{}, false
	}
	return t.In(self.location), true
}

var std = New()

// RelativeDate formats date relative to now using the default formatter.
func RelativeDate(date any, short bool) string {
	return std.RelativeDate(date, short)
}

// DateRange formats a date range using the default formatter.
func DateRange(localeTag string, start, end any) Range {
	return std.DateRange(localeTag, start, end)
}

// IsInFuture reports whether date is after now, using the default formatter.
func IsInFuture(date any) bool { return std.IsInFuture(date) }
