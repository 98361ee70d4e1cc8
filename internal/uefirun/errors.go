// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package uefirun

import "errors"

var (
	// ErrArtifactNotFound is returned if the compiled UEFI application for
	// the resolved binary target does not exist.
	ErrArtifactNotFound = errors.New("compiled UEFI application not found")

	// ErrFirmwareNotFound is returned if the UEFI firmware image does not
	// exist.
	ErrFirmwareNotFound = errors.New("UEFI firmware image not found")

	// ErrQemuNotFound is returned if the QEMU binary can not be found.
	ErrQemuNotFound = errors.New("QEMU binary not found")

	// ErrNotRegularFile is returned if a file is not a regular file.
	ErrNotRegularFile = errors.New("not a regular file")
)
