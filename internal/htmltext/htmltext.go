// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package htmltext renders HTML as plain text for previews and length checks.
package htmltext // import "texthelpers.app/v2/internal/htmltext"

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"texthelpers.app/v2/internal/sanitizer"
)

const blockElements = "p, div, li, tr, blockquote, pre, " +
	"h1, h2, h3, h4, h5, h6, ul, ol, table, hr"

type Config struct {
	Truncate int
}

type Option func(*Config)

// WithTruncate shortens the text to maxLen characters on a word boundary.
func WithTruncate(maxLen int) Option {
	return func(c *Config) { c.Truncate = maxLen }
}

// ToText returns the text content of s. Links render as their text only,
// line breaks and block elements as new lines.
func ToText(s string, opts ...Option) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	var c Config
	for _, fn := range opts {
		fn(&c)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return sanitizer.StripTags(s)
	}

	doc.Find("script, style, template").Remove()
	doc.Find("br").ReplaceWithNodes(newline())
	doc.Find(blockElements).AppendNodes(newline())

	text := normalize(doc.Text())
	if c.Truncate > 0 {
		text = sanitizer.TruncateText(text, c.Truncate)
	}
	return text
}

func newline() *html.Node { return &html.Node{Type: html.TextNode, Data: "\n"} }

// TextLength returns the number of characters of the text content of s.
func TextLength(s string) int { return utf8.RuneCountInString(ToText(s)) }

// normalize collapses white space inside lines and keeps at most one empty
// line between paragraphs.
func normalize(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	blank := true
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
