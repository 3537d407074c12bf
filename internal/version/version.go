// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package version // import "texthelpers.app/v2/internal/version"

import (
	"fmt"
	"io"
	"runtime"
)

const devVersion = "Development Version"

// Variables populated at build time when using LD_FLAGS.
var (
	Commit    = "Unknown (built outside VCS)"
	BuildDate = "Unknown (built outside VCS)"
	Version   = devVersion
)

// Development reports whether the binary was built without a release
// version.
func Development() bool { return Version == devVersion }

// Fprint writes build information to w.
func Fprint(w io.Writer) error {
	_, err := fmt.Fprintf(w, `Version: %s
Commit: %s
Build Date: %s
Go Version: %s
Compiler: %s
Arch: %s
OS: %s
`, Version, Commit, BuildDate, runtime.Version(), runtime.Compiler,
		runtime.GOARCH, runtime.GOOS)
	if err != nil {
		return fmt.Errorf("version: failed write build info: %w", err)
	}
	return nil
}
