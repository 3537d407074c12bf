// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package locale resolves locale tags to CLDR translators providing weekday
// and month names and clock formats.
package locale // import "texthelpers.app/v2/internal/locale"

import (
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

const Default = "en"

var universal = ut.New(en.New(),
	en.New(),
	en_GB.New(),
	de.New(),
	es.New(),
	fr.New(),
	it.New(),
	nl.New(),
	pt.New(),
	pt_BR.New(),
)

// Translator returns the translator for a BCP 47 or POSIX style locale tag,
// like "en-GB", "pt_BR" or "fr". The region specific translator wins over the
// language one. Unknown tags fall back to English.
func Translator(tag string) locales.Translator {
	for _, name := range candidates(tag) {
		if trans, found := universal.FindTranslator(name); found {
			return trans
		}
	}
	trans, _ := universal.FindTranslator(Default)
	return trans
}

// Supported reports whether tag resolves to a translator other than the
// fallback one.
func Supported(tag string) bool {
	for _, name := range candidates(tag) {
		if _, found := universal.FindTranslator(name); found {
			return true
		}
	}
	return false
}

func candidates(tag string) []string {
	tag = strings.TrimSpace(strings.ReplaceAll(tag, "_", "-"))
	if tag == "" {
		return nil
	}

	t, err := language.Parse(tag)
	if err != nil {
		return nil
	}

	base, _ := t.Base()
	names := make([]string, 0, 2)
	if region, conf := t.Region(); conf == language.Exact {
		names = append(names, base.String()+"_"+region.String())
	}
	return append(names, base.String())
}
