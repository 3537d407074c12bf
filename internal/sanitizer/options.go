// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sanitizer

type Config struct {
	AllowList AllowList

	custom bool
}

type Option func(*Config)

// WithAllowedTags replaces the allowed elements.
func WithAllowedTags(tags ...string) Option {
	return func(c *Config) {
		c.AllowList = c.AllowList.Merge(AllowList{Tags: tags})
		c.custom = true
	}
}

// WithAllowedAttributes replaces the allowed attributes of every element.
func WithAllowedAttributes(attrs map[string][]string) Option {
	return func(c *Config) {
		c.AllowList = c.AllowList.Merge(AllowList{Attributes: attrs})
		c.custom = true
	}
}

// WithAllowList replaces the non empty fields of the allow-list.
func WithAllowList(l AllowList) Option {
	return func(c *Config) {
		c.AllowList = c.AllowList.Merge(l)
		c.custom = true
	}
}

func newConfig(opts ...Option) *Config {
	c := &Config{AllowList: DefaultAllowList()}
	for _, fn := range opts {
		fn(c)
	}
	return c
}
