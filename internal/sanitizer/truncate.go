// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const ellipsis = " …"

// TruncateText shortens text to at most maxLen characters, cutting at a word
// boundary and appending " …". Text that fits, or a maxLen < 1, leaves text
// unchanged.
func TruncateText(text string, maxLen int) string {
	runes := []rune(text)
	n, ok := cutWords(runes, maxLen)
	if !ok {
		return text
	}
	return string(runes[:n]) + ellipsis
}

// cutWords returns how many leading runes to keep so the result fits in
// maxLen and ends on a word boundary. It returns false when nothing needs to
// be cut.
func cutWords(runes []rune, maxLen int) (int, bool) {
	if maxLen < 1 || len(runes) <= maxLen {
		return len(runes), false
	}

	n := 0
	for i := maxLen; i > 0; i-- {
		if unicode.IsSpace(runes[i]) {
			n = i
			break
		}
	}

	for n > 0 && unicode.IsSpace(runes[n-1]) {
		n--
	}

	// A single word longer than maxLen.
	if n == 0 {
		n = maxLen
	}
	return n, true
}

// TruncateHTML sanitizes s with opts and shortens its visible text to at most
// maxLen characters the way TruncateText does, keeping the markup around the
// text that remains. Block element boundaries count as one white space
// character. Elements left open by the cut are closed.
func TruncateHTML(s string, maxLen int, opts ...Option) string {
	s = Sanitize(s, opts...)
	tokens := tokenize(s)
	n, ok := cutWords(visibleText(tokens), maxLen)
	if !ok {
		return s
	}
	return truncateMarkup(tokens, n) + ellipsis
}

type textToken struct {
	html.Token

	// lineBreak is set on block element tags separating text.
	lineBreak bool
}

func tokenize(s string) []textToken {
	var tokens []textToken
	space := true
	z := html.NewTokenizer(strings.NewReader(s))
	for z.Next() != html.ErrorToken {
		tok := textToken{Token: z.Token()}
		switch tok.Type {
		case html.TextToken:
			if r, size := utf8.DecodeLastRuneInString(tok.Data); size > 0 {
				space = unicode.IsSpace(r)
			}
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			if !space && blockElement(tok.Data) {
				tok.lineBreak = true
				space = true
			}
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// visibleText returns the text of tokens without trailing white space.
func visibleText(tokens []textToken) []rune {
	var runes []rune
	for i := range tokens {
		if tokens[i].lineBreak {
			runes = append(runes, '\n')
		} else if tokens[i].Type == html.TextToken {
			runes = append(runes, []rune(tokens[i].Data)...)
		}
	}

	n := len(runes)
	for n > 0 && unicode.IsSpace(runes[n-1]) {
		n--
	}
	return runes[:n]
}

func truncateMarkup(tokens []textToken, n int) string {
	var b strings.Builder
	var open []string

	for i := 0; i < len(tokens) && n > 0; i++ {
		tok := &tokens[i]
		switch tok.Type {
		case html.StartTagToken:
			b.WriteString(tok.String())
			if !voidElement(tok.Data) {
				open = append(open, tok.Data)
			}
		case html.SelfClosingTagToken:
			b.WriteString(tok.String())
		case html.EndTagToken:
			if k := lastIndex(open, tok.Data); k >= 0 {
				for j := len(open) - 1; j >= k; j-- {
					b.WriteString("</" + open[j] + ">")
				}
				open = open[:k]
			}
		case html.TextToken:
			runes := []rune(tok.Data)
			if len(runes) > n {
				runes = runes[:n]
			}
			b.WriteString(html.EscapeString(string(runes)))
			n -= len(runes)
		}

		if tok.lineBreak {
			n--
		}
	}

	for i := len(open) - 1; i >= 0; i-- {
		b.WriteString("</" + open[i] + ">")
	}
	return b.String()
}

func lastIndex(items []string, s string) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i] == s {
			return i
		}
	}
	return -1
}

func voidElement(name string) bool {
	switch name {
	case "area", "base", "br", "col", "embed", "hr", "img", "input", "link",
		"meta", "source", "track", "wbr":
		return true
	}
	return false
}

func blockElement(name string) bool {
	switch name {
	case "address", "article", "aside", "blockquote", "br", "dd", "div", "dl",
		"dt", "figcaption", "figure", "footer", "h1", "h2", "h3", "h4", "h5",
		"h6", "header", "hr", "li", "main", "nav", "ol", "p", "pre", "section",
		"table", "td", "th", "tr", "ul":
		return true
	}
	return false
}
