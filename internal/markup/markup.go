// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package markup builds the HTML fragments used for mentions and topics in
// rich text.
package markup // import "texthelpers.app/v2/internal/markup"

import (
	"html"
	"strings"
)

// MentionHTML returns the span marking a mention of the person with the
// given id and name.
func MentionHTML(id, name string) string {
	name = html.EscapeString(name)
	var b strings.Builder
	b.WriteString(`<span data-type="mention" class="mention" data-id="`)
	b.WriteString(html.EscapeString(id))
	b.WriteString(`" data-label="`)
	b.WriteString(name)
	b.WriteString(`">`)
	b.WriteString(name)
	b.WriteString("</span>")
	return b.String()
}

// TopicHTML returns the span marking a reference to a topic. A leading "#"
// in name is ignored.
func TopicHTML(name string) string {
	name = html.EscapeString(strings.TrimPrefix(name, "#"))
	var b strings.Builder
	b.WriteString(`<span data-type="topic" class="topic" data-id="`)
	b.WriteString(name)
	b.WriteString(`" data-label="#`)
	b.WriteString(name)
	b.WriteString(`">`)
	b.WriteString(name)
	b.WriteString("</span>")
	return b.String()
}
