// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v4"

	"texthelpers.app/v2/internal/config"
	"texthelpers.app/v2/internal/logging"
	"texthelpers.app/v2/internal/template"
)

var flagData string

var renderCmd = cobra.Command{
	Use:   "render TEMPLATE",
	Short: "Render html/template file with text helpers as functions",
	Long: `Render html/template file with text helpers as functions.

Available functions: humanDate, shortDate, verboseDate, abbrevDate, dateRange,
inFuture, markdown, sanitize, truncateHTML, truncateText, htmlToText, safeURL, mention,
topic. Template data is loaded from YAML or JSON file given by --data.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed read template: %w", err)
		}

		data, err := loadTemplateData(flagData)
		if err != nil {
			return err
		}

		f, err := newFormatter()
		if err != nil {
			return err
		}

		engine := template.NewEngine(
			template.WithFormatter(f),
			template.WithLocale(config.Opts.Locale()),
			template.WithTruncateLength(config.Opts.TruncateLength()),
			template.WithAutolinks(config.Opts.MarkdownAutolink()),
			template.WithStripTracking(config.Opts.StripTracking()))

		name := filepath.Base(args[0])
		b, err := engine.Render(name, string(src), data)
		if err != nil {
			return err
		}

		logging.FromContext(cmd.Context()).Debug("rendered template",
			slog.String("template_name", name), slog.Int("size", len(b)))
		if _, err := cmd.OutOrStdout().Write(b); err != nil {
			return fmt.Errorf("failed write output: %w", err)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&flagData, "data", "",
		"Path to YAML or JSON file with template data")
	renderCmd.Flags().StringVar(&flagNow, "now", "",
		"Use this date as the current time")
}

func loadTemplateData(filename string) (map[string]any, error) {
	data := map[string]any{}
	if filename == "" {
		return data, nil
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed read template data: %w", err)
	} else if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("failed parse template data %q: %w", filename, err)
	}
	return data, nil
}
