// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sanitizer

import (
	"slices"
	"strings"
	"sync/atomic"

	"github.com/dsh2dsh/bluemonday/v2"
)

var (
	allowSchemes = []string{"mailto", "http", "https"}

	textPolicy    = bluemonday.StrictPolicy()
	defaultPolicy atomic.Pointer[bluemonday.Policy]
)

func init() {
	l := DefaultAllowList()
	defaultPolicy.Store(newPolicy(&l))
}

func newPolicy(l *AllowList) *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes(allowSchemes...)

	p.AllowElements(l.Tags...)
	for elem, attrs := range l.Attributes {
		// OnElements allows the element too, only extend what is already
		// allowed.
		if len(attrs) != 0 && slices.Contains(l.Tags, elem) {
			p.AllowAttrs(attrs...).OnElements(elem)
		}
	}
	return p
}

// Sanitize removes every element and attribute of s not on the allow-list,
// keeping the text content of removed elements.
func Sanitize(s string, opts ...Option) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	c := newConfig(opts...)
	if !c.custom {
		return defaultPolicy.Load().Sanitize(s)
	}
	return newPolicy(&c.AllowList).Sanitize(s)
}

// StripTags removes all the markup from s. Entities stay escaped.
func StripTags(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return textPolicy.Sanitize(s)
}
