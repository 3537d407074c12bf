// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cli // import "texthelpers.app/v2/internal/cli"

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"texthelpers.app/v2/internal/cli/logger"
	"texthelpers.app/v2/internal/config"
	"texthelpers.app/v2/internal/logging"
	"texthelpers.app/v2/internal/sanitizer"
	"texthelpers.app/v2/internal/version"
)

var (
	flagConfigFile string
	flagConfigYAML string
	flagDebugMode  bool

	logCloser io.Closer
)

var Cmd = cobra.Command{
	Use:     "texthelpers",
	Short:   "Format dates, sanitize HTML and render markdown for display.",
	Version: version.Version,

	PersistentPreRunE: persistentPreRunE,

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
			logCloser = nil
		}
	},
}

func init() {
	Cmd.PersistentFlags().StringVarP(&flagConfigFile, "config-file", "c", "",
		"Path to .env configuration file")
	Cmd.PersistentFlags().StringVarP(&flagConfigYAML, "config-yaml", "", "",
		"Path to YAML configuration file")
	Cmd.PersistentFlags().BoolVarP(&flagDebugMode, "debug", "d", false,
		"Show debug logs")

	Cmd.AddCommand(&configDumpCmd)
	Cmd.AddCommand(&dateRangeCmd)
	Cmd.AddCommand(&humanDateCmd)
	Cmd.AddCommand(&inFutureCmd)
	Cmd.AddCommand(&infoCmd)
	Cmd.AddCommand(&markdownCmd)
	Cmd.AddCommand(&mentionCmd)
	Cmd.AddCommand(&renderCmd)
	Cmd.AddCommand(&sanitizeCmd)
	Cmd.AddCommand(&textCmd)
	Cmd.AddCommand(&topicCmd)
	Cmd.AddCommand(&truncateCmd)
	Cmd.AddCommand(&urlCmd)
}

func persistentPreRunE(cmd *cobra.Command, args []string) error {
	// Don't show usage on app errors.
	// https://github.com/spf13/cobra/issues/340#issuecomment-378726225
	cmd.SilenceUsage = true

	if err := config.LoadYAML(flagConfigYAML, flagConfigFile); err != nil {
		return err
	} else if flagDebugMode {
		config.Opts.SetLogLevel("debug")
	}

	closer, err := logger.InitializeDefaultLogger()
	if err != nil {
		return err
	}
	logCloser = closer

	sanitizer.SetDefaultAllowList(config.Opts.AllowList())
	cmd.SetContext(logging.With(cmd.Context(),
		slog.String("command", cmd.Name())))
	return nil
}

func Execute() {
	if err := Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
