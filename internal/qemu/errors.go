// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "errors"

var (
	// ErrNonZeroExitStatus is returned if QEMU terminated with a non-zero
	// exit status. For a run that reached the guest application, this is
	// the status the application terminated with.
	ErrNonZeroExitStatus = errors.New("non-zero exit status")

	// ErrArgumentCollision is returned if two [Argument]s are considered
	// equal.
	ErrArgumentCollision = errors.New("colliding args")
)
