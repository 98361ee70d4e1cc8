// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu provides utilities for composing and running QEMU system
// virtualization commands as needed by uefirun. It expects the required QEMU
// binary to be present on the system.
//
// The guest boots from a UEFI firmware image attached as pflash drive. The
// firmware discovers the application via the removable media boot path on a
// raw FAT drive that is backed by a local directory. The command's stdio
// streams are passed to QEMU unchanged, so the guest's default serial
// console can be used interactively. Additional serial consoles can be
// captured into local files.
package qemu
