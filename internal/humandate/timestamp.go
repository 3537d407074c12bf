// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package humandate

import (
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseTimestamp normalizes a timestamp given as epoch milliseconds, a date
// string or a time.Time. Zero values and unparseable strings are not valid.
func ParseTimestamp(v any) (time.Time, bool) {
	return parseTimestamp(v, time.UTC)
}

func parseTimestamp(v any, loc *time.Location) (time.Time, bool) {
	switch v := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case string:
		return parseString(v, loc)
	case int:
		return fromMillis(int64(v))
	case int32:
		return fromMillis(int64(v))
	case int64:
		return fromMillis(v)
	case uint:
		return fromUnsignedMillis(uint64(v))
	case uint32:
		return fromMillis(int64(v))
	case uint64:
		return fromUnsignedMillis(v)
	case float32:
		return fromFloatMillis(float64(v))
	case float64:
		return fromFloatMillis(v)
	}
	return time.Time{}, false
}

func parseString(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	t, err := dateparse.ParseIn(s, loc)
	if err != nil || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

func fromMillis(ms int64) (time.Time, bool) {
	if ms == 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

// fromUnsignedMillis rejects values not fitting int64 milliseconds.
func fromUnsignedMillis(ms uint64) (time.Time, bool) {
	if ms > math.MaxInt64 {
		return time.Time{}, false
	}
	return fromMillis(int64(ms))
}

func fromFloatMillis(ms float64) (time.Time, bool) {
	if ms == 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, false
	}
	sec, frac := math.Modf(ms / 1000)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))), true
}
