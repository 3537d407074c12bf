// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"texthelpers.app/v2/internal/config"
	"texthelpers.app/v2/internal/humandate"
	"texthelpers.app/v2/internal/logging"
)

var (
	flagNow     string
	flagShort   bool
	flagVerbose bool
	flagAbbrev  bool
	flagLocale  string
	flagJSON    bool
)

var humanDateCmd = cobra.Command{
	Use:   "humandate [DATE...]",
	Short: "Print dates relative to now, like \"3h ago\"",
	Long: `Print dates relative to now, like "3h ago".

DATE is milliseconds since epoch or a date string, like 2024-06-15T12:00:00Z.
Without arguments dates are read from stdin, one per line.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		dates, err := readLines(cmd, args)
		if err != nil {
			return err
		}

		f, err := newFormatter()
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, date := range dates {
			var s string
			switch {
			case flagVerbose:
				s = f.VerboseDate(timestampArg(date))
			case flagAbbrev:
				s = f.AbbreviatedDate(timestampArg(date))
			default:
				s = f.RelativeDate(timestampArg(date), flagShort)
			}
			if s == "" {
				logging.FromContext(cmd.Context()).Warn("invalid date",
					slog.String("date", date))
			}
			fmt.Fprintln(w, s)
		}
		return nil
	},
}

var dateRangeCmd = cobra.Command{
	Use:   "daterange START [END]",
	Short: "Print a compact date range, like \"Fri, Mar 1, 6:00 pm - 9:00 pm UTC\"",
	Args:  cobra.RangeArgs(1, 2),

	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := newFormatter()
		if err != nil {
			return err
		}

		start := timestampArg(args[0])
		if _, ok := f.Parse(start); !ok {
			return fmt.Errorf("invalid start date: %q", args[0])
		}

		var end any
		if len(args) > 1 {
			end = timestampArg(args[1])
		}

		localeTag := flagLocale
		if localeTag == "" {
			localeTag = config.Opts.Locale()
		}

		r := f.DateRange(localeTag, start, end)
		if !flagJSON {
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		}

		if err := json.NewEncoder(cmd.OutOrStdout()).Encode(r); err != nil {
			return fmt.Errorf("failed encode date range: %w", err)
		}
		return nil
	},
}

var inFutureCmd = cobra.Command{
	Use:   "infuture DATE",
	Short: "Print true if DATE is after now, false otherwise",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := newFormatter()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), f.IsInFuture(timestampArg(args[0])))
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{
		&humanDateCmd, &dateRangeCmd, &inFutureCmd,
	} {
		cmd.Flags().StringVar(&flagNow, "now", "",
			"Use this date as the current time")
	}

	humanDateCmd.Flags().BoolVarP(&flagShort, "short", "s", false,
		"Print short form, like \"3h\"")
	humanDateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"Print unabbreviated form, like \"3 hours ago\"")
	humanDateCmd.Flags().BoolVarP(&flagAbbrev, "abbrev", "a", false,
		"Print abbreviated form of verbose phrase, like \"3h ago\" or \"2h from now\"")
	humanDateCmd.MarkFlagsMutuallyExclusive("short", "verbose", "abbrev")

	dateRangeCmd.Flags().StringVarP(&flagLocale, "locale", "l", "",
		"Locale of weekday and month names (default LOCALE)")
	dateRangeCmd.Flags().BoolVar(&flagJSON, "json", false,
		"Print the range as JSON object")
}

// timestampArg returns s as epoch milliseconds, if it's a number, or s
// itself.
func timestampArg(s string) any {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ms
	}
	return s
}

func newFormatter() (*humandate.Formatter, error) {
	opts := []humandate.Option{humandate.WithTimezone(config.Opts.Timezone())}
	if flagNow == "" {
		return humandate.New(opts...), nil
	}

	now, ok := humandate.ParseTimestamp(timestampArg(flagNow))
	if !ok {
		return nil, fmt.Errorf("invalid --now date: %q", flagNow)
	}
	opts = append(opts, humandate.WithClock(func() time.Time { return now }))
	return humandate.New(opts...), nil
}
