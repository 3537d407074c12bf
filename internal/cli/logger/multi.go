// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// NewMultiHandler returns a handler, which fans out records to all handlers.
// When some of them fail, the error is reported through the first handler.
func NewMultiHandler(handlers []slog.Handler) *MultiHandler {
	return &MultiHandler{
		all:   slog.NewMultiHandler(handlers...),
		first: handlers[0],
	}
}

type MultiHandler struct {
	all   slog.Handler
	first slog.Handler
}

var _ slog.Handler = (*MultiHandler)(nil)

func (self *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return self.all.Enabled(ctx, level)
}

func (self *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	err := self.all.Handle(ctx, r)
	if err == nil {
		return nil
	}

	err = fmt.Errorf("logger: one of handlers failed: %w", err)
	self.reportErr(ctx, err)
	return err
}

func (self *MultiHandler) reportErr(ctx context.Context, err error) {
	if !self.first.Enabled(ctx, slog.LevelError) {
		return
	}

	r := slog.NewRecord(time.Now(), slog.LevelError, "unable log message", 0)
	r.AddAttrs(slog.Any("error", err))
	_ = self.first.Handle(ctx, r)
}

func (self *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &MultiHandler{
		all:   self.all.WithAttrs(attrs),
		first: self.first.WithAttrs(attrs),
	}
}

func (self *MultiHandler) WithGroup(name string) slog.Handler {
	return &MultiHandler{
		all:   self.all.WithGroup(name),
		first: self.first.WithGroup(name),
	}
}
