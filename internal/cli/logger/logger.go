// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package logger // import "texthelpers.app/v2/internal/cli/logger"

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"texthelpers.app/v2/internal/config"
)

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// InitializeDefaultLogger configures slog.Default from LOG_* options. The
// returned closer closes log files opened for it.
func InitializeDefaultLogger() (io.Closer, error) {
	l, closer, err := New(config.Opts.Logging())
	if err != nil {
		return nil, err
	}
	slog.SetDefault(l)
	return closer, nil
}

// New returns a logger, which writes every record to all configured
// destinations.
func New(logs []config.Log) (*slog.Logger, io.Closer, error) {
	if len(logs) == 0 {
		return nil, nil, errors.New("logger: no log destinations")
	}

	var files closers
	handlers := make([]slog.Handler, len(logs))
	for i := range logs {
		h, f, err := handlerFromConfig(&logs[i])
		if err != nil {
			_ = files.Close()
			return nil, nil, err
		} else if f != nil {
			files = append(files, f)
		}
		handlers[i] = h
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0]), files, nil
	}
	return slog.New(NewMultiHandler(handlers)), files, nil
}

func handlerFromConfig(c *config.Log) (slog.Handler, io.Closer, error) {
	w, f, err := openLogFile(c.LogFile)
	if err != nil {
		return nil, nil, err
	}
	return newHandler(w, c.LogFormat, c.LogLevel, c.LogDateTime), f, nil
}

func openLogFile(logFile string) (io.Writer, io.Closer, error) {
	switch logFile {
	case "stdout":
		return os.Stdout, nil, nil
	case "stderr":
		return os.Stderr, nil, nil
	}

	f, err := NewLogFile(logFile)
	if err != nil {
		return nil, nil, fmt.Errorf(
			"logger: unable to open log file %q: %w", logFile, err)
	}
	return f, f, nil
}

func hideTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}

func newHandler(w io.Writer, format, level string, logTime bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: levels[level]}
	if !logTime {
		opts.ReplaceAttr = hideTime
	}

	switch format {
	case "human":
		return NewHumanTextHandler(w, opts, logTime)
	case "json":
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

type closers []io.Closer

func (self closers) Close() error {
	errs := make([]error, 0, len(self))
	for _, c := range self {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
