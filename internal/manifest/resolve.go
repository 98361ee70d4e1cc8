// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package manifest

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
)

// FindRoot walks up from the given directory and returns the first directory
// containing a manifest file. If dir is empty, the current working directory
// is used.
//
// It returns [ErrNoProjectRoot] if there is no manifest file all the way up
// to the file system root.
func FindRoot(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	for {
		stat, err := os.Stat(filepath.Join(dir, FileName))
		if err == nil && stat.Mode().IsRegular() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProjectRoot
		}

		dir = parent
	}
}

// Resolve returns the binary target candidates declared by the project
// rooted at dir within fsys.
//
// If the manifest declares workspace members, the members are resolved
// recursively and their candidates shadow the root manifest's own targets.
// Members that do not resolve, because their manifest is missing or broken,
// are skipped. Within a single manifest, binary target declarations shadow
// the implicit target named after the package.
//
// The returned names are unique and in declaration order.
func Resolve(fsys fs.FS, dir string) ([]string, error) {
	names, err := resolve(fsys, dir, map[string]bool{})
	if err != nil {
		return nil, err
	}

	unique := make([]string, 0, len(names))

	for _, name := range names {
		if !slices.Contains(unique, name) {
			unique = append(unique, name)
		}
	}

	return unique, nil
}

func resolve(fsys fs.FS, dir string, visited map[string]bool) ([]string, error) {
	visited[dir] = true

	manifest, err := Load(fsys, path.Join(dir, FileName))
	if err != nil {
		return nil, err
	}

	if manifest.Workspace != nil {
		names := resolveMembers(fsys, dir, manifest.Workspace.Members, visited)
		if len(names) > 0 {
			return names, nil
		}
	}

	names := make([]string, 0, len(manifest.Bins))

	for _, bin := range manifest.Bins {
		if bin.Name != "" {
			names = append(names, bin.Name)
		}
	}

	if len(names) > 0 {
		return names, nil
	}

	if manifest.Package != nil && manifest.Package.Name != "" {
		names = append(names, manifest.Package.Name)
	}

	return names, nil
}

func resolveMembers(
	fsys fs.FS,
	dir string,
	members []string,
	visited map[string]bool,
) []string {
	names := []string{}

	for _, member := range members {
		// Members must be relative paths that stay inside the file system.
		// Already visited directories are skipped so that self or mutually
		// referencing workspaces terminate.
		if !fs.ValidPath(member) {
			continue
		}

		memberDir := path.Join(dir, member)
		if visited[memberDir] {
			continue
		}

		memberNames, err := resolve(fsys, memberDir, visited)
		if err != nil {
			continue
		}

		names = append(names, memberNames...)
	}

	return names
}
