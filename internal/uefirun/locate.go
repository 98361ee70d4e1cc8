// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package uefirun

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

const (
	// Firmware image expected in the project root.
	firmwareFileName = "OVMF.fd"

	// QEMU system binary used if none is given.
	defaultQemuExecutable = "qemu-system-x86_64"

	// File extension of compiled UEFI applications.
	artifactSuffix = ".efi"
)

// artifactDir is cargo's build output directory for the UEFI target,
// relative to the project root.
var artifactDir = filepath.Join("target", "x86_64-unknown-uefi", "debug")

// findArtifact returns the path to the compiled UEFI application for the
// given binary target name.
func findArtifact(root, name string) (string, error) {
	path := filepath.Join(root, artifactDir, name+artifactSuffix)

	err := validateRegularFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
	}

	return path, nil
}

// findFirmware returns the path to the UEFI firmware image to boot with.
func findFirmware(root, override string) (string, error) {
	path := override
	if path == "" {
		path = filepath.Join(root, firmwareFileName)
	}

	err := validateRegularFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrFirmwareNotFound, path)
	}

	return path, nil
}

// findQemu returns the path to the QEMU binary to use.
func findQemu(override string) (string, error) {
	name := override
	if name == "" {
		name = defaultQemuExecutable
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrQemuNotFound, name)
	}

	return path, nil
}

func validateRegularFile(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !stat.Mode().IsRegular() {
		return ErrNotRegularFile
	}

	return nil
}
