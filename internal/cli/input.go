// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoInput = errors.New("no input: pass it as arguments or pipe it to stdin")

// readInput returns args joined by spaces or, without args, everything read
// from stdin. An interactive stdin isn't read.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	r, err := stdin(cmd)
	if err != nil {
		return "", err
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed read stdin: %w", err)
	}
	return string(b), nil
}

// readLines returns args or, without args, not empty lines read from stdin.
func readLines(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	r, err := stdin(cmd)
	if err != nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed read stdin: %w", err)
	} else if len(lines) == 0 {
		return nil, errNoInput
	}
	return lines, nil
}

func stdin(cmd *cobra.Command) (io.Reader, error) {
	r := cmd.InOrStdin()
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errNoInput
	}
	return r, nil
}
