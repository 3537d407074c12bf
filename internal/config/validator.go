// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config // import "texthelpers.app/v2/internal/config"

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validatorOnce = sync.OnceValue(newValidator)

// Validator returns validator, which reports field names the way they are
// configured: env name for environment options, yaml name for YAML sections.
func Validator() *validator.Validate { return validatorOnce() }

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := tagName(fld, "env"); name != "" {
			return name
		}
		return tagName(fld, "yaml")
	})
	return v
}

func tagName(fld reflect.StructField, key string) string {
	name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
	if name == "-" {
		return ""
	}
	return name
}
