// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package uefirun

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// Name of the boot drive directory in the temp directory.
	bootTreeDirName = "UEFI"

	// Boot file name the firmware probes for on removable media.
	bootFileName = "BOOTX64.EFI"
)

// bootFileDir is the removable media boot path, relative to the drive root.
var bootFileDir = filepath.Join("EFI", "BOOT")

// BootTree describes the boot drive directory to stage.
type BootTree struct {
	// Path to the compiled UEFI application. It is staged as the default
	// boot file EFI/BOOT/BOOTX64.EFI.
	Artifact string

	// Additional files staged into the root of the tree.
	ExtraFiles []string

	// Directory to stage the tree in. If empty, the system temp directory
	// is used.
	TempDir string
}

// BuildBootTree stages the boot drive directory and returns its path.
//
// The directory is created in the temp directory and reused on subsequent
// runs. Staged files are overwritten.
func BuildBootTree(tree BootTree) (string, error) {
	tempDir := tree.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	root := filepath.Join(tempDir, bootTreeDirName)
	bootDir := filepath.Join(root, bootFileDir)

	err := os.MkdirAll(bootDir, 0o755)
	if err != nil {
		return "", fmt.Errorf("create boot dir: %w", err)
	}

	err = copyFile(tree.Artifact, filepath.Join(bootDir, bootFileName))
	if err != nil {
		return "", fmt.Errorf("stage boot file: %w", err)
	}

	for _, file := range tree.ExtraFiles {
		err = copyFile(file, filepath.Join(root, filepath.Base(file)))
		if err != nil {
			return "", fmt.Errorf("stage extra file: %w", err)
		}
	}

	return root, nil
}

func copyFile(srcPath, dstPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}

	_, err = io.Copy(dst, src)
	if err != nil {
		_ = dst.Close()
		return fmt.Errorf("copy: %w", err)
	}

	err = dst.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}
