// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package template // import "texthelpers.app/v2/internal/template"

import (
	"html/template"

	"texthelpers.app/v2/internal/htmltext"
	"texthelpers.app/v2/internal/humandate"
	"texthelpers.app/v2/internal/markdown"
	"texthelpers.app/v2/internal/markup"
	"texthelpers.app/v2/internal/sanitizer"
	"texthelpers.app/v2/internal/validator"
)

const defaultTruncateLength = 200

type funcMap struct {
	dates          *humandate.Formatter
	locale         string
	truncateLength int
	autolink       bool
	stripTracking  bool
}

func newFuncMap() *funcMap {
	return &funcMap{
		dates:          humandate.New(),
		truncateLength: defaultTruncateLength,
		autolink:       true,
	}
}

// Map returns a map of template functions, which are compiled during template
// parsing.
func (self *funcMap) Map() template.FuncMap {
	return template.FuncMap{
		"humanDate": func(date any) string {
			return self.dates.RelativeDate(date, false)
		},
		"shortDate": func(date any) string {
			return self.dates.RelativeDate(date, true)
		},
		"verboseDate": self.dates.VerboseDate,
		"abbrevDate":  self.dates.AbbreviatedDate,
		"dateRange": func(start, end any) string {
			return self.dates.FormatDateRange(self.locale, start, end)
		},
		"inFuture": self.dates.IsInFuture,

		"markdown": func(src string) template.HTML {
			//nolint:gosec // sanitized by markdown.Render
			return template.HTML(markdown.Render(src,
				markdown.WithAutolinks(self.autolink)))
		},
		"sanitize": func(s string) template.HTML {
			return template.HTML(sanitizer.Sanitize(s)) //nolint:gosec // sanitized
		},
		"truncateHTML": func(s string, n ...int) template.HTML {
			//nolint:gosec // sanitized by TruncateHTML
			return template.HTML(sanitizer.TruncateHTML(s, self.maxLen(n)))
		},
		"truncateText": func(s string, n ...int) string {
			return sanitizer.TruncateText(s, self.maxLen(n))
		},
		"htmlToText": func(s string) string { return htmltext.ToText(s) },
		"safeURL":    self.safeURL,

		"mention": func(id, name string) template.HTML {
			return template.HTML(markup.MentionHTML(id, name)) //nolint:gosec // escaped
		},
		"topic": func(name string) template.HTML {
			return template.HTML(markup.TopicHTML(name)) //nolint:gosec // escaped
		},
	}
}

func (self *funcMap) maxLen(n []int) int {
	if len(n) > 0 {
		return n[0]
	}
	return self.truncateLength
}

func (self *funcMap) safeURL(s string) template.URL {
	var opts []validator.URLOption
	if self.stripTracking {
		opts = append(opts, validator.WithoutTracking())
	}
	//nolint:gosec // validated by SanitizeURL
	return template.URL(validator.SanitizeURL(s, opts...))
}
