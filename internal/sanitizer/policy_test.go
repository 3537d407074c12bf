// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "plain text",
			title: "Foo bar baz",
			want:  "Foo bar baz",
		},
		{
			name:  "with html",
			title: "Foo <strong>bar</strong> baz",
			want:  "Foo bar baz",
		},
		{
			name:  "with spaces",
			title: " Foo bar <b>baz</b>",
			want:  "Foo bar baz",
		},
		{
			name:  "with entities",
			title: "&amp;Foo &lt; bar &gt; baz",
			want:  "&amp;Foo &lt; bar &gt; baz",
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.title))
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []Option
		expected string
	}{
		{
			name: "empty",
		},
		{
			name:     "plain text",
			input:    "foo",
			expected: "foo",
		},
		{
			name:     "allowed markup",
			input:    `<p>Some <strong>bold</strong> and <em>italic</em> text</p>`,
			expected: `<p>Some <strong>bold</strong> and <em>italic</em> text</p>`,
		},
		{
			name:     "script removed with content",
			input:    `<script>alert(1)</script><p>ok</p>`,
			expected: `<p>ok</p>`,
		},
		{
			name:     "tag not on the allow-list",
			input:    `<p>My <table>tag</table></p>`,
			expected: `<p>My tag</p>`,
		},
		{
			name:     "attribute not on the allow-list",
			input:    `<p class="lead" onclick="run()">Hi</p>`,
			expected: `<p>Hi</p>`,
		},
		{
			name:     "link",
			input:    `<a href="https://example.com/" class="link" style="color: red">Example</a>`,
			expected: `<a href="https://example.com/" class="link">Example</a>`,
		},
		{
			name:     "mention",
			input:    `<span data-type="mention" class="mention" data-id="42" data-label="Ann">Ann</span>`,
			expected: `<span data-type="mention" class="mention" data-id="42" data-label="Ann">Ann</span>`,
		},
		{
			name:     "custom tags",
			input:    `Wombats are great.<em>So great.</em><div>They poop square.</div>`,
			opts:     []Option{WithAllowedTags("div")},
			expected: `Wombats are great.So great.<div>They poop square.</div>`,
		},
		{
			name:  "custom attributes",
			input: `<p id="wombat-data" class="main-wombat">Wombats are great.</p>`,
			opts: []Option{
				WithAllowedTags("p"),
				WithAllowedAttributes(map[string][]string{"p": {"id"}}),
			},
			expected: `<p id="wombat-data">Wombats are great.</p>`,
		},
		{
			name:  "attributes of a tag not allowed",
			input: `<p><em class="x">Hi</em></p>`,
			opts: []Option{WithAllowList(AllowList{
				Tags:       []string{"p"},
				Attributes: map[string][]string{"em": {"class"}},
			})},
			expected: `<p>Hi</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input, tt.opts...))
		})
	}
}

func TestSanitize_unsafeURL(t *testing.T) {
	got := Sanitize(`<a href="javascript:alert(1)">click</a>`)
	assert.NotContains(t, got, "javascript")
	assert.Contains(t, got, "click")
}

func TestSetDefaultAllowList(t *testing.T) {
	t.Cleanup(func() { SetDefaultAllowList(AllowList{}) })

	const input = `<p>Hello <mark>world</mark></p>`
	assert.Equal(t, input, Sanitize(input))

	SetDefaultAllowList(AllowList{Tags: []string{"mark"}})
	assert.Equal(t, "Hello <mark>world</mark>", Sanitize(input))
	assert.Equal(t, []string{"mark"}, DefaultAllowList().Tags)
	assert.Equal(t, defaultAttributes, DefaultAllowList().Attributes)

	SetDefaultAllowList(AllowList{})
	assert.Equal(t, input, Sanitize(input))
	assert.Equal(t, defaultTags, DefaultAllowList().Tags)
}

func TestAllowList_Merge(t *testing.T) {
	base := AllowList{
		Tags:       []string{"p"},
		Attributes: map[string][]string{"p": {"class"}},
	}

	got := base.Merge(AllowList{Tags: []string{"div"}})
	assert.Equal(t, []string{"div"}, got.Tags)
	assert.Equal(t, base.Attributes, got.Attributes)

	got.Tags[0] = "span"
	assert.Equal(t, []string{"p"}, base.Tags)
}
