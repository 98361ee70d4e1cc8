// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package manifest_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/aibor/uefirun/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manifestFile(content string) *fstest.MapFile {
	return &fstest.MapFile{
		Data: []byte(content),
	}
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	subDir := filepath.Join(root, "src", "bin")
	require.NoError(t, os.MkdirAll(subDir, 0o755))

	err := os.WriteFile(
		filepath.Join(root, manifest.FileName),
		[]byte("[package]\nname = \"efi-app\"\n"),
		0o644,
	)
	require.NoError(t, err)

	dirManifest := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dirManifest, manifest.FileName), 0o755))

	tests := []struct {
		name        string
		dir         string
		expected    string
		expectedErr error
	}{
		{
			name:     "manifest in start dir",
			dir:      root,
			expected: root,
		},
		{
			name:     "manifest in ancestor",
			dir:      subDir,
			expected: root,
		},
		{
			name:        "no manifest",
			dir:         t.TempDir(),
			expectedErr: manifest.ErrNoProjectRoot,
		},
		{
			name:        "directory named like manifest",
			dir:         dirManifest,
			expectedErr: manifest.ErrNoProjectRoot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := manifest.FindRoot(tt.dir)
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		fsys        fstest.MapFS
		expected    []string
		expectedErr error
	}{
		{
			name: "package name only",
			fsys: fstest.MapFS{
				"Cargo.toml": manifestFile(`[package]
name = "efi-app"
`),
			},
			expected: []string{"efi-app"},
		},
		{
			name: "bin shadows package name",
			fsys: fstest.MapFS{
				"Cargo.toml": manifestFile(`[package]
name = "efi-app"

[[bin]]
name = "boot-shell"
`),
			},
			expected: []string{"boot-shell"},
		},
		{
			name: "bins in declaration order",
			fsys: fstest.MapFS{
				"Cargo.toml": manifestFile(`[[bin]]
name = "boot-shell"

[[bin]]
name = "boot-demo"
`),
			},
			expected: []string{"boot-shell", "boot-demo"},
		},
		{
			name: "bin without name ignored",
			fsys: fstest.MapFS{
				"Cargo.toml": manifestFile(`[package]
name = "efi-app"

[[bin]]
path = "src/bin/extra.rs"
`),
			},
			expected: []string{"efi-app"},
		},
		{
			name: "no targets",
			fsys: fstest.MapFS{
				"Cargo.toml": manifestFile("[dependencies]\n"),
			},
			expected: []string{},
		},
		{
			name: "workspace members shadow root targets",
			fsys: fstest.MapFS{
				"Cargo.toml": manifestFile(`[package]
name = "efi-app"

[[bin]]
name = "root-bin"

[workspace]
members = ["apps/loader", "apps/shell"]
`),
				"apps/loader/Cargo.toml": manifestFile(`[package]
name = "loader"
`),
				"apps/shell/Cargo.toml": manifestFile(`[package]
name = "shell"
`),
			},
			expected: []string{"loader", "shell"},
		},
		{
			name: "missing member skipped",
			fsys: fstest.MapFS{
				"Cargo.toml": manifestFile(`[workspace]
members = ["apps/loader", "apps/shell"]
`),
				"apps/loader/Cargo.toml": manifestFile(`[package]
name = "loader"
`),
			},
			expected: []string{"loader"},
		},
		{
			name: "broken member skipped",
			fsys: fstest.MapFS{
				"Cargo.toml": manifestFile(`[workspace]
members = ["apps/loader", "apps/shell"]
`),
				"apps/loader/Cargo.toml": manifestFile("[package\n"),
				"apps/shell/Cargo.toml": manifestFile(`[package]
name = "shell"
`),
			},
			expected: []string{"shell"},
		},
		{
			name: "no resolvable members falls back to own targets",
			fsys: fstest.MapFS{
				"Cargo.toml": manifestFile(`[package]
name = "efi-app"

[workspace]
members = ["apps/loader"]
`),
			},
			expected: []string{"efi-app"},
		},
		{
			name: "nested workspaces",
			fsys: fstest.MapFS{
				"Cargo.toml": manifestFile(`[workspace]
members = ["apps"]
`),
				"apps/Cargo.toml": manifestFile(`[workspace]
members = ["loader", "shell"]
`),
				"apps/loader/Cargo.toml": manifestFile(`[package]
name = "loader"
`),
				"apps/shell/Cargo.toml": manifestFile(`[[bin]]
name = "shell"
`),
			},
			expected: []string{"loader", "shell"},
		},
		{
			name: "duplicate names unique",
			fsys: fstest.MapFS{
				"Cargo.toml": manifestFile(`[workspace]
members = ["apps/loader", "apps/shell"]
`),
				"apps/loader/Cargo.toml": manifestFile(`[[bin]]
name = "boot"
`),
				"apps/shell/Cargo.toml": manifestFile(`[[bin]]
name = "boot"
`),
			},
			expected: []string{"boot"},
		},
		{
			name: "self referencing member terminates",
			fsys: fstest.MapFS{
				"Cargo.toml": manifestFile(`[package]
name = "efi-app"

[workspace]
members = ["."]
`),
			},
			expected: []string{"efi-app"},
		},
		{
			name: "escaping member skipped",
			fsys: fstest.MapFS{
				"Cargo.toml": manifestFile(`[workspace]
members = ["../outside", "/abs/path", "apps/loader"]
`),
				"apps/loader/Cargo.toml": manifestFile(`[package]
name = "loader"
`),
			},
			expected: []string{"loader"},
		},
		{
			name:        "missing manifest",
			fsys:        fstest.MapFS{},
			expectedErr: fs.ErrNotExist,
		},
		{
			name: "invalid manifest",
			fsys: fstest.MapFS{
				"Cargo.toml": manifestFile("[package\n"),
			},
			expectedErr: &manifest.ParseError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := manifest.Resolve(tt.fsys, ".")
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expected, actual)
		})
	}
}
