// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config // import "texthelpers.app/v2/internal/config"

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"texthelpers.app/v2/internal/locale"
	"texthelpers.app/v2/internal/sanitizer"
)

const (
	defaultLocale         = locale.Default
	defaultTimezone       = "UTC"
	defaultTruncateLength = 200
)

// Option contains a key to value map of a single option. It may be used to
// output debug strings.
type Option struct {
	Key   string
	Value any
}

// Options contains configuration options.
type Options struct {
	Sanitize sanitizer.AllowList `yaml:"sanitize"`

	env EnvOptions
}

type EnvOptions struct {
	LogFile          string `env:"LOG_FILE" validate:"required"`
	LogDateTime      bool   `env:"LOG_DATE_TIME"`
	LogFormat        string `env:"LOG_FORMAT" validate:"required,oneof=human json text"`
	LogLevel         string `env:"LOG_LEVEL" validate:"required,oneof=debug info warning error"`
	Logging          []Log  `envPrefix:"LOG" validate:"dive,required"`
	Locale           string `env:"LOCALE" validate:"required"`
	Timezone         string `env:"TIMEZONE" validate:"required,timezone"`
	TruncateLength   int    `env:"TRUNCATE_LENGTH" validate:"min=1"`
	MarkdownAutolink bool   `env:"MARKDOWN_AUTOLINK"`
	StripTracking    bool   `env:"STRIP_TRACKING"`
}

type Log struct {
	LogFile     string `env:"FILE" validate:"required"`
	LogDateTime bool   `env:"DATE_TIME"`
	LogFormat   string `env:"FORMAT" validate:"required,oneof=human json text"`
	LogLevel    string `env:"LEVEL" validate:"required,oneof=debug info warning error"`
}

// NewOptions returns Options with default values.
func NewOptions() *Options {
	return &Options{
		env: EnvOptions{
			LogFile:          "stderr",
			LogFormat:        "text",
			LogLevel:         "info",
			Locale:           defaultLocale,
			Timezone:         defaultTimezone,
			TruncateLength:   defaultTruncateLength,
			MarkdownAutolink: true,
		},
	}
}

func (o *Options) init() error {
	if err := o.validate(); err != nil {
		return err
	}

	if !locale.Supported(o.env.Locale) {
		slog.Warn("LOCALE not supported, falling back to "+defaultLocale,
			slog.String("locale", o.env.Locale))
	}
	return nil
}

func (o *Options) validate() error {
	if err := Validator().Struct(&o.env); err != nil {
		return fmt.Errorf("config: failed validate: %w", err)
	}
	return nil
}

func (o *Options) LogFile() string { return o.env.LogFile }

// LogDateTime returns true if the date/time should be displayed in log
// messages.
func (o *Options) LogDateTime() bool { return o.env.LogDateTime }

// LogFormat returns the log format.
func (o *Options) LogFormat() string { return o.env.LogFormat }

// LogLevel returns the log level.
func (o *Options) LogLevel() string { return o.env.LogLevel }

// SetLogLevel sets the log level.
func (o *Options) SetLogLevel(level string) { o.env.LogLevel = level }

// Locale returns the locale dates are formatted for.
func (o *Options) Locale() string { return o.env.Locale }

// Timezone returns the name of the timezone dates are displayed in.
func (o *Options) Timezone() string { return o.env.Timezone }

// TruncateLength returns the default number of visible characters kept by
// truncation.
func (o *Options) TruncateLength() int { return o.env.TruncateLength }

func (o *Options) MarkdownAutolink() bool { return o.env.MarkdownAutolink }

func (o *Options) StripTracking() bool { return o.env.StripTracking }

// AllowList returns the sanitizer allow-list from the YAML configuration.
// Empty fields mean the built-in defaults.
func (o *Options) AllowList() sanitizer.AllowList { return o.Sanitize }

func (o *Options) Logging() []Log {
	if len(o.env.Logging) == 0 {
		return []Log{{
			LogFile:     o.LogFile(),
			LogDateTime: o.LogDateTime(),
			LogFormat:   o.LogFormat(),
			LogLevel:    o.LogLevel(),
		}}
	}
	return slices.Clone(o.env.Logging)
}

// SortedOptions returns options as a list of key value pairs, sorted by keys.
func (o *Options) SortedOptions() []Option {
	keyValues := map[string]any{
		"LOCALE":            o.Locale(),
		"LOG_DATE_TIME":     o.LogDateTime(),
		"LOG_FILE":          o.LogFile(),
		"LOG_FORMAT":        o.LogFormat(),
		"LOG_LEVEL":         o.LogLevel(),
		"MARKDOWN_AUTOLINK": o.MarkdownAutolink(),
		"SANITIZE_TAGS":     strings.Join(o.Sanitize.Tags, ","),
		"STRIP_TRACKING":    o.StripTracking(),
		"TIMEZONE":          o.Timezone(),
		"TRUNCATE_LENGTH":   o.TruncateLength(),
	}

	sortedKeys := slices.Sorted(maps.Keys(keyValues))
	sortedOptions := make([]Option, len(sortedKeys))
	for i, key := range sortedKeys {
		sortedOptions[i] = Option{Key: key, Value: keyValues[key]}
	}
	return sortedOptions
}

func (o *Options) String() string {
	var builder strings.Builder
	for _, option := range o.SortedOptions() {
		fmt.Fprintf(&builder, "%s=%v\n", option.Key, option.Value)
	}
	return builder.String()
}
