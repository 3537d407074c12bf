// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"texthelpers.app/v2/internal/config"
	"texthelpers.app/v2/internal/htmltext"
	"texthelpers.app/v2/internal/logging"
	"texthelpers.app/v2/internal/markdown"
	"texthelpers.app/v2/internal/markup"
	"texthelpers.app/v2/internal/sanitizer"
	"texthelpers.app/v2/internal/validator"
)

var (
	flagLength        int
	flagPlain         bool
	flagNoAutolink    bool
	flagStripTracking bool
)

var sanitizeCmd = cobra.Command{
	Use:   "sanitize [HTML...]",
	Short: "Remove everything but allowed tags and attributes from HTML",

	RunE: func(cmd *cobra.Command, args []string) error {
		return transformInput(cmd, args, func(s string) string {
			return sanitizer.Sanitize(s)
		})
	},
}

var truncateCmd = cobra.Command{
	Use:   "truncate [TEXT...]",
	Short: "Truncate HTML or plain text at a word boundary",

	RunE: func(cmd *cobra.Command, args []string) error {
		n := flagLength
		if n == 0 {
			n = config.Opts.TruncateLength()
		}
		return transformInput(cmd, args, func(s string) string {
			if flagPlain {
				return sanitizer.TruncateText(s, n)
			}
			return sanitizer.TruncateHTML(s, n)
		})
	},
}

var textCmd = cobra.Command{
	Use:   "text [HTML...]",
	Short: "Convert HTML to plain text",

	RunE: func(cmd *cobra.Command, args []string) error {
		return transformInput(cmd, args, func(s string) string {
			return htmltext.ToText(s, htmltext.WithTruncate(flagLength))
		})
	},
}

var markdownCmd = cobra.Command{
	Use:   "markdown [MARKDOWN...]",
	Short: "Render markdown as sanitized HTML",

	RunE: func(cmd *cobra.Command, args []string) error {
		autolink := config.Opts.MarkdownAutolink() && !flagNoAutolink
		return transformInput(cmd, args, func(s string) string {
			return markdown.Render(s, markdown.WithAutolinks(autolink))
		})
	},
}

var urlCmd = cobra.Command{
	Use:   "url URL...",
	Short: "Print URLs normalized with https:// scheme, or empty lines for invalid ones",
	Args:  cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []validator.URLOption
		if flagStripTracking || config.Opts.StripTracking() {
			opts = append(opts, validator.WithoutTracking())
		}

		log := logging.FromContext(cmd.Context())
		w := cmd.OutOrStdout()
		for _, arg := range args {
			u := validator.SanitizeURL(arg, opts...)
			if u == "" {
				log.Warn("invalid URL", slog.String("url", arg))
			}
			fmt.Fprintln(w, u)
		}
		return nil
	},
}

var mentionCmd = cobra.Command{
	Use:   "mention ID NAME",
	Short: "Print HTML markup of a mention",
	Args:  cobra.ExactArgs(2),

	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), markup.MentionHTML(args[0], args[1]))
	},
}

var topicCmd = cobra.Command{
	Use:   "topic NAME",
	Short: "Print HTML markup of a topic",
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), markup.TopicHTML(args[0]))
	},
}

func init() {
	truncateCmd.Flags().IntVarP(&flagLength, "length", "n", 0,
		"Maximum number of visible characters (default TRUNCATE_LENGTH)")
	truncateCmd.Flags().BoolVar(&flagPlain, "plain", false,
		"Input is plain text, not HTML")

	textCmd.Flags().IntVarP(&flagLength, "length", "n", 0,
		"Truncate text to this number of characters")

	markdownCmd.Flags().BoolVar(&flagNoAutolink, "no-autolink", false,
		"Don't turn bare URLs into links")

	urlCmd.Flags().BoolVar(&flagStripTracking, "strip-tracking", false,
		"Remove tracking parameters, like utm_source")
}

func transformInput(cmd *cobra.Command, args []string,
	fn func(s string) string,
) error {
	s, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	out := fn(s)
	logging.FromContext(cmd.Context()).Debug("transformed input",
		slog.Int("input_length", len(s)),
		slog.Int("output_length", len(out)))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	if err != nil {
		return fmt.Errorf("failed write output: %w", err)
	}
	return nil
}
