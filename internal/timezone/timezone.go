// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package timezone // import "texthelpers.app/v2/internal/timezone"

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// In returns t expressed in the given timezone.
func In(tz string, t time.Time) time.Time {
	if t.Location().String() == tz {
		return t
	}
	return t.In(Location(tz))
}

// Now returns the current time in the given timezone.
func Now(tz string) time.Time { return time.Now().In(Location(tz)) }

// Location returns the location for tz. Unknown names resolve to UTC and an
// empty name resolves to time.Local.
func Location(tz string) *time.Location { return locations.Location(tz) }

// Valid reports whether tz names a loadable location.
func Valid(tz string) bool {
	_, err := time.LoadLocation(tz)
	return err == nil
}

var locations = newLocationCache()

func newLocationCache() *locationCache {
	return &locationCache{locations: make(map[string]*time.Location)}
}

type locationCache struct {
	mu        sync.RWMutex
	locations map[string]*time.Location
	sg        singleflight.Group
}

func (self *locationCache) Location(tz string) *time.Location {
	if tz == "" {
		return time.Local
	}

	self.mu.RLock()
	loc, ok := self.locations[tz]
	self.mu.RUnlock()
	if ok {
		return loc
	}

	v, _, _ := self.sg.Do(tz, func() (any, error) {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			loc = time.UTC
		}
		self.mu.Lock()
		self.locations[tz] = loc
		self.mu.Unlock()
		return loc, nil
	})
	return v.(*time.Location)
}
