// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package markdown renders GitHub flavored markdown to sanitized HTML.
package markdown // import "texthelpers.app/v2/internal/markdown"

import (
	"bytes"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"texthelpers.app/v2/internal/sanitizer"
)

var (
	autolinking = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)

	// GFM without Linkify.
	plain = goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
		),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
)

type Config struct {
	DisableAutolinks bool
	Sanitize         []sanitizer.Option
}

type Option func(*Config)

// WithoutAutolinks leaves bare URLs as text.
func WithoutAutolinks() Option {
	return func(c *Config) { c.DisableAutolinks = true }
}

// WithAutolinks turns bare URL linking on or off.
func WithAutolinks(enabled bool) Option {
	return func(c *Config) { c.DisableAutolinks = !enabled }
}

// WithSanitizer passes opts to the sanitizer applied to the rendered HTML.
func WithSanitizer(opts ...sanitizer.Option) Option {
	return func(c *Config) { c.Sanitize = append(c.Sanitize, opts...) }
}

// Render converts src to HTML. Line breaks inside paragraphs become <br>,
// bare URLs become links unless disabled, and raw HTML in src is dropped.
func Render(src string, opts ...Option) string {
	if src == "" {
		return ""
	}

	var c Config
	for _, fn := range opts {
		fn(&c)
	}

	md := autolinking
	if c.DisableAutolinks {
		md = plain
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		slog.Warn("unable render markdown", slog.Any("error", err))
		return sanitizer.Sanitize(src, c.Sanitize...)
	}
	return sanitizer.Sanitize(buf.String(), c.Sanitize...)
}
