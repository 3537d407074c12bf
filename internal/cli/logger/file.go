// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// NewLogFile opens filename for appending. The file is reopened when it was
// removed or replaced, like after log rotation.
func NewLogFile(filename string) (*LogFile, error) {
	f := &LogFile{filename: filename}
	if err := f.open(); err != nil {
		return nil, err
	}
	return f, nil
}

type LogFile struct {
	filename string

	mu sync.Mutex
	f  *os.File
}

func (self *LogFile) open() (err error) {
	self.f, err = os.OpenFile(self.filename,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	return nil
}

func (self *LogFile) Write(p []byte) (int, error) {
	self.mu.Lock()
	defer self.mu.Unlock()

	if err := self.reopenIfRotated(); err != nil {
		return 0, fmt.Errorf("reopen file %q: %w", self.filename, err)
	}

	n, err := self.f.Write(p)
	if err != nil {
		return n, fmt.Errorf("write to %q: %w", self.filename, err)
	}
	return n, nil
}

func (self *LogFile) reopenIfRotated() error {
	if ok, err := self.rotated(); err != nil {
		return err
	} else if !ok {
		return nil
	}

	if err := self.f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", self.filename, err)
	}
	return self.open()
}

func (self *LogFile) rotated() (bool, error) {
	opened, err := self.f.Stat()
	if err != nil {
		return false, fmt.Errorf("stat of %q: %w", self.filename, err)
	}

	current, err := os.Stat(self.filename)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	} else if err != nil {
		return false, fmt.Errorf("stat of %q: %w", self.filename, err)
	}
	return !os.SameFile(opened, current), nil
}

func (self *LogFile) Close() error {
	self.mu.Lock()
	defer self.mu.Unlock()
	if err := self.f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", self.filename, err)
	}
	return nil
}
