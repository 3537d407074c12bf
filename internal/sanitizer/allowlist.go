// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sanitizer // import "texthelpers.app/v2/internal/sanitizer"

import (
	"maps"
	"slices"
	"sync/atomic"
)

var (
	defaultTags = []string{
		"a", "br", "em", "p", "s", "strong",
		"li", "ol", "ul",
		"div", "iframe", "mark", "span",
		"blockquote", "code", "hr", "pre",
		"h1", "h2", "h3", "h4", "h5", "h6",
	}

	// Attributes carried by mention and topic markup.
	entityAttrs = []string{
		"class", "target", "href",
		"data-type", "data-id", "data-label",
		"data-user-id", "data-entity-type", "data-search",
	}

	defaultAttributes = map[string][]string{
		"a":    entityAttrs,
		"span": entityAttrs,
		"code": {"class"},
		"iframe": {
			"src", "title", "frameborder", "height", "width",
			"allow", "allowfullscreen",
		},
		"div": {"class"},
	}

	defaultList atomic.Pointer[AllowList]
)

// AllowList names the elements and the attributes per element kept by
// Sanitize. Everything else is stripped, keeping the text content.
type AllowList struct {
	Tags       []string            `yaml:"allowed_tags" validate:"dive,required"`
	Attributes map[string][]string `yaml:"allowed_attributes" validate:"dive,keys,required,endkeys,dive,required"`
}

// DefaultAllowList returns a copy of the allow-list used when Sanitize is
// called without options.
func DefaultAllowList() AllowList {
	if l := defaultList.Load(); l != nil {
		return l.clone()
	}
	return AllowList{Tags: defaultTags, Attributes: defaultAttributes}.clone()
}

// SetDefaultAllowList replaces the default allow-list. Empty fields of l keep
// their built-in values.
func SetDefaultAllowList(l AllowList) {
	merged := AllowList{Tags: defaultTags, Attributes: defaultAttributes}.
		Merge(l)
	defaultList.Store(&merged)
	defaultPolicy.Store(newPolicy(&merged))
}

// Merge returns self with the non empty fields of other replacing its own.
func (self AllowList) Merge(other AllowList) AllowList {
	l := self.clone()
	if len(other.Tags) != 0 {
		l.Tags = slices.Clone(other.Tags)
	}
	if len(other.Attributes) != 0 {
		l.Attributes = maps.Clone(other.Attributes)
	}
	return l
}

func (self AllowList) clone() AllowList {
	return AllowList{
		Tags:       slices.Clone(self.Tags),
		Attributes: maps.Clone(self.Attributes),
	}
}
