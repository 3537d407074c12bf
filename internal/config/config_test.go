// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config // import "texthelpers.app/v2/internal/config"

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseEnvironmentVariables(t *testing.T) *Options {
	t.Helper()
	parser := NewParser()
	opts, err := parser.ParseEnvironmentVariables()
	require.NoError(t, err)
	require.NotNil(t, opts)
	return opts
}

func TestDefaultValues(t *testing.T) {
	os.Clearenv()
	opts := parseEnvironmentVariables(t)
	assert.Equal(t, "stderr", opts.LogFile())
	assert.Equal(t, "en", opts.Locale())
	assert.Equal(t, "UTC", opts.Timezone())
	assert.Equal(t, 200, opts.TruncateLength())
	assert.True(t, opts.MarkdownAutolink())
	assert.False(t, opts.StripTracking())
}

func TestLogFileWithCustomFilename(t *testing.T) {
	os.Clearenv()
	const want = "foobar.log"
	t.Setenv("LOG_FILE", want)
	opts := parseEnvironmentVariables(t)
	assert.Equal(t, want, opts.LogFile())
}

func TestLogFileWithEmptyValue(t *testing.T) {
	os.Clearenv()
	t.Setenv("LOG_FILE", "")
	opts := parseEnvironmentVariables(t)
	assert.Equal(t, NewOptions().env.LogFile, opts.LogFile())
}

func TestLogLevelWithCustomValue(t *testing.T) {
	os.Clearenv()
	const want = "warning"
	t.Setenv("LOG_LEVEL", want)
	opts := parseEnvironmentVariables(t)
	assert.Equal(t, want, opts.LogLevel())
}

func TestLogLevelWithInvalidValue(t *testing.T) {
	os.Clearenv()
	t.Setenv("LOG_LEVEL", "invalid")
	_, err := NewParser().ParseEnvironmentVariables()
	require.ErrorContains(t, err, "oneof")
}

func TestLogDateTimeWithInvalidValue(t *testing.T) {
	os.Clearenv()
	t.Setenv("LOG_DATE_TIME", "invalid")
	_, err := NewParser().ParseEnvironmentVariables()
	t.Log(err)
	require.ErrorContains(t, err, "invalid syntax")
}

func TestLogFormatWithInvalidValue(t *testing.T) {
	os.Clearenv()
	t.Setenv("LOG_FORMAT", "invalid")
	_, err := NewParser().ParseEnvironmentVariables()
	t.Log(err)
	require.ErrorContains(t, err, "failed on the 'oneof' tag")
}

func TestLogging(t *testing.T) {
	os.Clearenv()
	t.Setenv("LOG_0_FILE", "stdout")
	t.Setenv("LOG_0_FORMAT", "json")
	t.Setenv("LOG_0_LEVEL", "debug")
	t.Setenv("LOG_1_FILE", "stderr")
	t.Setenv("LOG_1_FORMAT", "human")
	t.Setenv("LOG_1_LEVEL", "error")

	opts := parseEnvironmentVariables(t)
	assert.Equal(t, []Log{
		{LogFile: "stdout", LogFormat: "json", LogLevel: "debug"},
		{LogFile: "stderr", LogFormat: "human", LogLevel: "error"},
	}, opts.Logging())
}

func TestLogging_single(t *testing.T) {
	os.Clearenv()
	opts := parseEnvironmentVariables(t)
	assert.Equal(t, []Log{{
		LogFile:   opts.LogFile(),
		LogFormat: opts.LogFormat(),
		LogLevel:  opts.LogLevel(),
	}}, opts.Logging())
}

func TestTimezone(t *testing.T) {
	os.Clearenv()
	t.Setenv("TIMEZONE", "America/New_York")
	opts := parseEnvironmentVariables(t)
	assert.Equal(t, "America/New_York", opts.Timezone())

	t.Setenv("TIMEZONE", "Nowhere/Town")
	_, err := NewParser().ParseEnvironmentVariables()
	require.ErrorContains(t, err, "timezone")
}

func TestTruncateLengthWithInvalidValue(t *testing.T) {
	os.Clearenv()
	t.Setenv("TRUNCATE_LENGTH", "0")
	_, err := NewParser().ParseEnvironmentVariables()
	require.ErrorContains(t, err, "min")
}

func TestMarkdownAutolink(t *testing.T) {
	os.Clearenv()
	t.Setenv("MARKDOWN_AUTOLINK", "false")
	opts := parseEnvironmentVariables(t)
	assert.False(t, opts.MarkdownAutolink())
}

func TestUnsupportedLocale(t *testing.T) {
	os.Clearenv()
	t.Setenv("LOCALE", "tlh")
	opts := parseEnvironmentVariables(t)
	assert.Equal(t, "tlh", opts.Locale())
}

func TestParseEnvFile(t *testing.T) {
	os.Clearenv()
	opts, err := NewParser().ParseEnvFile("testdata/settings.env")
	require.NoError(t, err)
	assert.Equal(t, "fr", opts.Locale())
	assert.Equal(t, "Europe/Paris", opts.Timezone())
	assert.Equal(t, 80, opts.TruncateLength())

	_, err = NewParser().ParseEnvFile("testdata/notfound.env")
	require.Error(t, err)
}

func TestLoadYAML(t *testing.T) {
	require.Error(t, LoadYAML("testdata/notfound.yaml", ""))
	require.Error(t, LoadYAML("", "testdata/notfound.env"))
	require.Error(t, LoadYAML("testdata/invalid.yaml", ""))

	os.Clearenv()
	require.NoError(t, LoadYAML("", ""))
	assert.Empty(t, Opts.AllowList().Tags)

	require.NoError(t, LoadYAML("testdata/sanitize.yaml",
		"testdata/settings.env"))
	assert.Equal(t, []string{"p", "a", "em"}, Opts.AllowList().Tags)
	assert.Equal(t, map[string][]string{"a": {"href", "title"}},
		Opts.AllowList().Attributes)
	assert.Equal(t, "fr", Opts.Locale())
}

func TestLoad(t *testing.T) {
	os.Clearenv()
	require.NoError(t, Load("testdata/settings.env"))
	assert.Equal(t, 80, Opts.TruncateLength())
}

func TestString(t *testing.T) {
	os.Clearenv()
	opts := parseEnvironmentVariables(t)
	s := opts.String()
	assert.Contains(t, s, "LOCALE=en\n")
	assert.Contains(t, s, "TIMEZONE=UTC\n")
	assert.Contains(t, s, "TRUNCATE_LENGTH=200\n")
}
