// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package template // import "texthelpers.app/v2/internal/template"

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"

	"texthelpers.app/v2/internal/humandate"
)

// Engine renders html/template templates with text helpers available as
// template functions.
type Engine struct {
	funcMap *funcMap
}

type Option func(*funcMap)

// WithFormatter sets the formatter of date functions.
func WithFormatter(f *humandate.Formatter) Option {
	return func(m *funcMap) { m.dates = f }
}

// WithLocale sets the locale of dateRange.
func WithLocale(tag string) Option {
	return func(m *funcMap) { m.locale = tag }
}

// WithTruncateLength sets the length truncate functions use, when called
// without explicit length.
func WithTruncateLength(n int) Option {
	return func(m *funcMap) { m.truncateLength = n }
}

func WithAutolinks(enabled bool) Option {
	return func(m *funcMap) { m.autolink = enabled }
}

func WithStripTracking(enabled bool) Option {
	return func(m *funcMap) { m.stripTracking = enabled }
}

// NewEngine returns a new template engine.
func NewEngine(opts ...Option) *Engine {
	m := newFuncMap()
	for _, fn := range opts {
		fn(m)
	}
	return &Engine{funcMap: m}
}

// FuncMap returns template functions of the engine.
func (self *Engine) FuncMap() template.FuncMap { return self.funcMap.Map() }

// Parse parses src as a template named name.
func (self *Engine) Parse(name, src string) (*template.Template, error) {
	slog.Debug("Parsing template", slog.String("template_name", name))
	tpl, err := template.New(name).Funcs(self.FuncMap()).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("template: failed parse %q: %w", name, err)
	}
	return tpl, nil
}

// Render parses src and executes it with data.
func (self *Engine) Render(name, src string, data any) ([]byte, error) {
	tpl, err := self.Parse(name, src)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	if err := tpl.Execute(&b, data); err != nil {
		return nil, fmt.Errorf("template: failed execute %q: %w", name, err)
	}
	return b.Bytes(), nil
}

var std = NewEngine()

// FuncMap returns template functions with default settings.
func FuncMap() template.FuncMap { return std.FuncMap() }
