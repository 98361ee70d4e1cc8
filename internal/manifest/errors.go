// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package manifest

import "errors"

// ErrNoProjectRoot is returned if no directory containing a manifest file is
// found.
var ErrNoProjectRoot = errors.New("no " + FileName + " found in any parent directory")
