// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package validator // import "texthelpers.app/v2/internal/validator"

import (
	"net/url"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"texthelpers.app/v2/internal/sanitizer"
)

var (
	validate = validator.New()

	urlSchemes = []string{"http", "https", "ftp"}
)

type URLConfig struct {
	StripTracking bool
}

type URLOption func(*URLConfig)

// WithoutTracking removes tracking parameters from sanitized URLs.
func WithoutTracking() URLOption {
	return func(c *URLConfig) { c.StripTracking = true }
}

// IsValidURL reports whether s is an absolute http, https or ftp URL.
func IsValidURL(s string) bool {
	if validate.Var(s, "required,url") != nil {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return slices.Contains(urlSchemes, strings.ToLower(u.Scheme)) &&
		u.Host != ""
}

// SanitizeURL returns s when it is a valid URL, s prefixed with https:// when
// that makes a valid URL with a fully qualified host name, and an empty string
// otherwise.
func SanitizeURL(s string, opts ...URLOption) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var c URLConfig
	for _, fn := range opts {
		fn(&c)
	}

	if IsValidURL(s) {
		return c.finish(s)
	}

	withScheme := "https://" + s
	if !IsValidURL(withScheme) {
		return ""
	}

	u, err := url.Parse(withScheme)
	if err != nil || validate.Var(u.Hostname(), "fqdn") != nil {
		return ""
	}
	return c.finish(withScheme)
}

func (self *URLConfig) finish(s string) string {
	if !self.StripTracking {
		return s
	}

	u, err := url.Parse(s)
	if err != nil {
		return s
	}

	if sanitizer.StripTracking(u) {
		return u.String()
	}
	return s
}
