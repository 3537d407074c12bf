// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config // import "texthelpers.app/v2/internal/config"

// Opts holds parsed configuration options.
var Opts = NewOptions()

// Load loads configuration values from a local .env file (if filename isn't
// empty) and from environment variables after that.
func Load(filename string) error { return LoadYAML("", filename) }

// LoadYAML loads configuration values from a YAML file (if yamlFile isn't
// empty), from a local .env file (if envFile isn't empty) and from
// environment variables after that.
func LoadYAML(yamlFile, envFile string) error {
	p := NewParser()
	if yamlFile != "" {
		if err := p.ParseYAML(yamlFile); err != nil {
			return err
		}
	}

	var opts *Options
	var err error
	if envFile != "" {
		opts, err = p.ParseEnvFile(envFile)
	} else {
		opts, err = p.ParseEnvironmentVariables()
	}
	if err != nil {
		return err
	}
	Opts = opts
	return nil
}
