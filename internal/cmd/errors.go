// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
)

// ErrHelp is returned if help or version output was requested.
var ErrHelp = flag.ErrHelp

var (
	ErrReadBuildInfo = errors.New("failed to read build info")
	ErrEmptyFilePath = errors.New("file path must not be empty")
)
