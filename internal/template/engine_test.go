// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"texthelpers.app/v2/internal/humandate"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine(opts ...Option) *Engine {
	f := humandate.New(
		humandate.WithClock(func() time.Time { return testNow }),
		humandate.WithLocation(time.UTC))
	return NewEngine(append([]Option{WithFormatter(f)}, opts...)...)
}

func TestEngine_Render(t *testing.T) {
	data := map[string]any{
		"Created": testNow.Add(-5 * time.Minute),
		"Start":   testNow.Add(time.Hour),
		"End":     nil,
		"Text":    "hello brave new world",
		"HTML":    `<p onclick="x()">ok</p><script>bad()</script>`,
		"URL":     "example.org/page?utm_source=feed&id=1",
	}

	tests := []struct {
		name string
		src  string
		opts []Option
		want string
	}{
		{name: "humanDate", src: `{{humanDate .Created}}`, want: "5m ago"},
		{name: "shortDate", src: `{{shortDate .Created}}`, want: "5m"},
		{
			name: "verboseDate",
			src:  `{{verboseDate .Created}}`,
			want: "5 minutes ago",
		},
		{
			name: "abbrevDate",
			src:  `{{abbrevDate .Created}}`,
			want: "5m ago",
		},
		{
			name: "inFuture",
			src:  `{{if inFuture .Start}}upcoming{{else}}past{{end}}`,
			want: "upcoming",
		},
		{
			name: "inFuture past",
			src:  `{{if inFuture .Created}}upcoming{{else}}past{{end}}`,
			want: "past",
		},
		{
			name: "sanitize",
			src:  `{{sanitize .HTML}}`,
			want: "<p>ok</p>",
		},
		{
			name: "sanitize escaped without func",
			src:  `{{.HTML}}`,
			want: "&lt;p onclick=&#34;x()&#34;&gt;ok&lt;/p&gt;&lt;script&gt;bad()&lt;/script&gt;",
		},
		{
			name: "truncateText",
			src:  `{{truncateText .Text 10}}`,
			want: "hello …",
		},
		{
			name: "truncateText default length",
			src:  `{{truncateText .Text}}`,
			opts: []Option{WithTruncateLength(15)},
			want: "hello brave new …",
		},
		{
			name: "truncateHTML",
			src:  `{{truncateHTML "<p>hello <em>brave</em> world</p>" 11}}`,
			want: "<p>hello <em>brave</em></p> …",
		},
		{
			name: "htmlToText",
			src:  `{{htmlToText "<p>hello <b>world</b></p>"}}`,
			want: "hello world",
		},
		{
			name: "safeURL",
			src:  `<a href="{{safeURL .URL}}">link</a>`,
			want: `<a href="https://example.org/page?utm_source=feed&amp;id=1">link</a>`,
		},
		{
			name: "safeURL without tracking",
			src:  `<a href="{{safeURL .URL}}">link</a>`,
			opts: []Option{WithStripTracking(true)},
			want: `<a href="https://example.org/page?id=1">link</a>`,
		},
		{
			name: "mention",
			src:  `{{mention "42" "Ann & Bob"}}`,
			want: `<span data-type="mention" class="mention" data-id="42" data-label="Ann &amp; Bob">Ann &amp; Bob</span>`,
		},
		{
			name: "topic",
			src:  `{{topic "#golang"}}`,
			want: `<span data-type="topic" class="topic" data-id="golang" data-label="#golang">golang</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := newTestEngine(tt.opts...).Render(tt.name, tt.src, data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}

func TestEngine_Render_dateRange(t *testing.T) {
	e := newTestEngine(WithLocale("en"))
	b, err := e.Render("range", `{{dateRange .Start .End}}`, map[string]any{
		"Start": testNow.Add(time.Hour),
		"End":   testNow.Add(3 * time.Hour),
	})
	require.NoError(t, err)
	assert.Contains(t, string(b), "Sat, Jun 15, ")
	assert.Contains(t, string(b), " - ")
	assert.Contains(t, string(b), "UTC")

	b, err = e.Render("point", `{{dateRange .Start nil}}`, map[string]any{
		"Start": testNow.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.NotContains(t, string(b), " - ")
}

func TestEngine_Render_markdown(t *testing.T) {
	src := `{{markdown .}}`
	b, err := newTestEngine().Render("md", src, "**hi** https://example.org")
	require.NoError(t, err)
	assert.Contains(t, string(b), "<strong>hi</strong>")
	assert.Contains(t, string(b), `<a href="https://example.org"`)

	b, err = newTestEngine(WithAutolinks(false)).Render("md", src,
		"https://example.org")
	require.NoError(t, err)
	assert.NotContains(t, string(b), "<a ")
}

func TestEngine_Render_errors(t *testing.T) {
	e := newTestEngine()
	_, err := e.Render("broken", `{{humanDate`, nil)
	require.ErrorContains(t, err, `failed parse "broken"`)

	_, err = e.Render("unknown", `{{nosuchfunc .}}`, nil)
	require.Error(t, err)

	_, err = e.Render("exec", `{{truncateText .Missing.Field}}`,
		map[string]any{})
	require.ErrorContains(t, err, `failed execute "exec"`)
}

func TestFuncMap(t *testing.T) {
	m := FuncMap()
	for _, name := range []string{
		"humanDate", "shortDate", "verboseDate", "abbrevDate", "dateRange",
		"inFuture",
		"markdown", "sanitize", "truncateHTML", "truncateText", "htmlToText",
		"safeURL", "mention", "topic",
	} {
		assert.Contains(t, m, name)
	}
}
