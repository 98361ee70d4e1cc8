// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package uefirun provides the main utilities to run a compiled UEFI
// application of a cargo project in a short lived QEMU guest. The QEMU
// binary, a UEFI firmware image, and the compiled application must be
// provided by the user.
//
// The application is resolved from the project manifest and staged into a
// local directory following the UEFI removable media layout. The directory
// is attached to QEMU as raw FAT drive, so the firmware boots the
// application without any disk image being built.
package uefirun
