// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

const humanTimeLayout = "2006/01/02 15:04:05"

var bufPool = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, 1024)) },
}

func getBuffer() *bytes.Buffer { return bufPool.Get().(*bytes.Buffer) }

func putBuffer(b *bytes.Buffer) {
	// To reduce peak allocation, return only smaller buffers to the pool.
	const maxBufferSize = 16 << 10
	if b.Cap() <= maxBufferSize {
		b.Reset()
		bufPool.Put(b)
	}
}

// NewHumanTextHandler returns a handler, which writes records like
//
//	2024/06/15 12:00:00 INFO Rendered markdown length=42
//
// Time prefix is written only if logTime is true. Attributes are formatted by
// slog.TextHandler.
func NewHumanTextHandler(w io.Writer, opts *slog.HandlerOptions,
	logTime bool,
) *HumanTextHandler {
	self := &HumanTextHandler{logTime: logTime, w: w, mu: new(sync.Mutex)}
	if opts != nil {
		self.opts = *opts
	}

	textOpts := self.opts
	textOpts.ReplaceAttr = self.replace
	self.attrs = &handlerBuffer{}
	self.h = slog.NewTextHandler(self.attrs, &textOpts)
	return self
}

type HumanTextHandler struct {
	logTime bool
	w       io.Writer

	h     slog.Handler
	attrs *handlerBuffer
	opts  slog.HandlerOptions

	mu *sync.Mutex
}

var _ slog.Handler = (*HumanTextHandler)(nil)

// handlerBuffer is the destination of slog.TextHandler. It points to the
// buffer of the record currently handled.
type handlerBuffer struct {
	b *bytes.Buffer
}

func (self *handlerBuffer) Write(p []byte) (int, error) {
	return self.b.Write(p)
}

func (self *HumanTextHandler) replace(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 {
		switch a.Key {
		case slog.TimeKey, slog.LevelKey, slog.MessageKey:
			return slog.Attr{}
		}
	}
	if self.opts.ReplaceAttr != nil {
		return self.opts.ReplaceAttr(groups, a)
	}
	return a
}

func (self *HumanTextHandler) Enabled(ctx context.Context, level slog.Level,
) bool {
	return self.h.Enabled(ctx, level)
}

func (self *HumanTextHandler) Handle(ctx context.Context, r slog.Record) error {
	self.mu.Lock()
	defer self.mu.Unlock()

	b := getBuffer()
	defer putBuffer(b)
	self.attrs.b = b
	defer func() { self.attrs.b = nil }()

	if self.logTime {
		t := r.Time
		if t.IsZero() {
			t = time.Now()
		}
		b.WriteString(t.Format(humanTimeLayout))
		b.WriteByte(' ')
	}
	b.WriteString(r.Level.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteByte(' ')

	if err := self.h.Handle(ctx, r); err != nil {
		return fmt.Errorf("logger: failed slog handler: %w", err)
	}

	// Discard trailing '\n', added by slog.TextHandler, and trailing ' ' added
	// after the message.
	b.Truncate(len(bytes.TrimRight(b.Bytes(), " \n")))
	b.WriteByte('\n')
	if _, err := b.WriteTo(self.w); err != nil {
		return fmt.Errorf("logger: failed write formatted entry: %w", err)
	}
	return nil
}

func (self *HumanTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h := *self
	h.h = self.h.WithAttrs(attrs)
	return &h
}

func (self *HumanTextHandler) WithGroup(name string) slog.Handler {
	h := *self
	h.h = self.h.WithGroup(name)
	return &h
}
