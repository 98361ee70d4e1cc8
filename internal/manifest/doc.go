// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package manifest resolves binary targets from Cargo manifest files.
//
// Only the manifest fields that matter for binary target resolution are
// read: the package name, explicit [[bin]] declarations, and workspace
// members. Everything else in a manifest is ignored, so manifests written
// for much newer cargo versions still resolve.
//
// Resolution follows cargo's precedence: workspace members are expanded
// recursively and shadow the root manifest's own targets, [[bin]]
// declarations shadow the implicit target named after the package.
package manifest
