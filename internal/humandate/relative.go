// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package humandate

import (
	"regexp"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// Seconds elapsed from which a long form relative date reads "1m ago" instead
// of "just now".
const justNowSeconds = 50

type Unit int

const (
	Second Unit = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
)

const day = 24 * time.Hour

var unitNames = [...]string{"second", "minute", "hour", "day", "week", "month",
	"year"}

func (self Unit) String() string { return unitNames[self] }

// Elapsed is the time passed since a moment, in the largest unit that fits.
type Elapsed struct {
	Magnitude int64
	Unit      Unit
}

// Since returns the time elapsed between t and now. Moments after now count
// as zero seconds.
func Since(t, now time.Time) Elapsed {
	d := max(now.Sub(t), 0)
	days := int64(d / day)

	switch {
	case d < time.Minute:
		return Elapsed{int64(d / time.Second), Second}
	case d < time.Hour:
		return Elapsed{int64(d / time.Minute), Minute}
	case d < day:
		return Elapsed{int64(d / time.Hour), Hour}
	case days < 7:
		return Elapsed{days, Day}
	case days < 30:
		return Elapsed{days / 7, Week}
	case days < 365:
		return Elapsed{days / 30, Month}
	}
	return Elapsed{days / 365, Year}
}

// Long returns the abbreviated form with an " ago" suffix. Less than 50
// seconds reads "just now", the rest of the first minute reads "1m ago".
func (self Elapsed) Long() string {
	if self.Unit == Second {
		if self.Magnitude >= justNowSeconds {
			return "1m ago"
		}
		return "just now"
	}
	return self.Short() + " ago"
}

// Short returns the abbreviated form without suffix: "30s", "5m", "2h", "3d",
// "1w", "4 mos", "2 years".
func (self Elapsed) Short() string {
	n := strconv.FormatInt(self.Magnitude, 10)
	switch self.Unit {
	case Second:
		return n + "s"
	case Minute:
		return n + "m"
	case Hour:
		return n + "h"
	case Day:
		return n + "d"
	case Week:
		return n + "w"
	case Month:
		return n + " mo" + self.plural()
	}
	return n + " year" + self.plural()
}

func (self Elapsed) plural() string {
	if self.Magnitude == 1 {
		return ""
	}
	return "s"
}

// Verbose returns the unabbreviated phrase, like "5 minutes ago".
func (self Elapsed) Verbose() string {
	return strconv.FormatInt(self.Magnitude, 10) + " " + self.Unit.String() +
		self.plural() + " ago"
}

// RelativeDate returns how long ago date was, like "5m ago" or "just now". With
// short the " ago" suffix is left out and seconds are shown as is. Invalid
// dates give an empty string.
func (self *Formatter) RelativeDate(date any, short bool) string {
	t, ok := self.Parse(date)
	if !ok {
		return ""
	}

	elapsed := Since(t, self.now())
	if short {
		return elapsed.Short()
	}
	return elapsed.Long()
}

// VerboseDate returns the unabbreviated relative phrase for date, like
// "5 minutes ago" or "2 hours from now".
func (self *Formatter) VerboseDate(date any) string {
	t, ok := self.Parse(date)
	if !ok {
		return ""
	}
	return humanize.RelTime(t, self.now(), "ago", "from now")
}

// AbbreviatedDate returns VerboseDate shortened by Abbreviate, like "5m ago"
// or "3 mos ago".
func (self *Formatter) AbbreviatedDate(date any) string {
	return Abbreviate(self.VerboseDate(date))
}

var abbreviations = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(` minutes?`), "m"},
	{regexp.MustCompile(` hours?`), "h"},
	{regexp.MustCompile(` days?`), "d"},
	{regexp.MustCompile(` weeks?`), "w"},
	{regexp.MustCompile(` month(s?)`), " mo$1"},
}

// Abbreviate shortens the first unit word of a verbose relative phrase, so
// "5 minutes ago" becomes "5m ago" and "3 months ago" becomes "3 mos ago".
func Abbreviate(s string) string {
	for _, a := range abbreviations {
		loc := a.re.FindStringSubmatchIndex(s)
		if loc == nil {
			continue
		}
		var b []byte
		b = a.re.ExpandString(b, a.repl, s, loc)
		s = s[:loc[0]] + string(b) + s[loc[1]:]
	}
	return s
}
