// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package manifest

import (
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the name of the project manifest file.
const FileName = "Cargo.toml"

// Manifest is a project manifest, reduced to the fields needed for binary
// target resolution. Unknown fields are ignored.
type Manifest struct {
	Package   *Package   `toml:"package"`
	Bins      []Bin      `toml:"bin"`
	Workspace *Workspace `toml:"workspace"`
}

// Package is the package section of a manifest.
type Package struct {
	Name string `toml:"name"`
}

// Bin is a single binary target declaration.
type Bin struct {
	Name string `toml:"name"`
}

// Workspace is the workspace section of a manifest.
type Workspace struct {
	Members []string `toml:"members"`
}

// Load reads and parses the manifest file at the given path.
//
// Read errors are returned wrapped. Invalid TOML is returned as
// [ParseError].
func Load(fsys fs.FS, path string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var manifest Manifest

	err = toml.Unmarshal(data, &manifest)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &manifest, nil
}
