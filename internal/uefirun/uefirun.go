// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package uefirun

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/uefirun/internal/manifest"
	"github.com/aibor/uefirun/internal/qemu"
)

// Spec describes a single [Run].
type Spec struct {
	// Name of the binary target to run. May be empty if the project
	// declares only a single binary target.
	Binary string

	// Path to the UEFI firmware image to boot with. If empty, the file
	// OVMF.fd in the project root is used.
	Firmware string

	// QEMU binary to use. If empty, qemu-system-x86_64 from PATH is used.
	QemuExecutable string

	// Files receiving guest serial console output.
	SerialFiles []string

	// Additional files staged into the root of the boot drive.
	ExtraFiles []string

	// Extra arguments passed to QEMU verbatim.
	QemuArgs []string

	// Directory the project root discovery starts from. If empty, the
	// current working directory is used.
	Dir string

	// Directory the boot drive is staged in. If empty, the system temp
	// directory is used.
	TempDir string
}

// Run runs the compiled UEFI application selected by the given [Spec] in
// QEMU.
//
// The project root is discovered by walking up from [Spec.Dir]. The binary
// target is resolved from the project manifest and its compiled artifact is
// staged into the boot drive directory. The application must have been
// built before. The guest's exit status is returned as [qemu.CommandError]
// wrapping [qemu.ErrNonZeroExitStatus].
func Run(
	ctx context.Context,
	spec *Spec,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	root, err := manifest.FindRoot(spec.Dir)
	if err != nil {
		return err
	}

	slog.Debug("Found project root", slog.String("path", root))

	candidates, err := manifest.Resolve(os.DirFS(root), ".")
	if err != nil {
		return err
	}

	slog.Debug("Resolved target candidates", slog.Any("names", candidates))

	name, err := manifest.Select(candidates, spec.Binary)
	if err != nil {
		return err
	}

	slog.Debug("Resolved binary target", slog.String("name", name))

	artifact, err := findArtifact(root, name)
	if err != nil {
		return err
	}

	firmware, err := findFirmware(root, spec.Firmware)
	if err != nil {
		return err
	}

	executable, err := findQemu(spec.QemuExecutable)
	if err != nil {
		return err
	}

	driveDir, err := BuildBootTree(BootTree{
		Artifact:   artifact,
		ExtraFiles: spec.ExtraFiles,
		TempDir:    spec.TempDir,
	})
	if err != nil {
		return err
	}

	slog.Debug("Staged boot drive", slog.String("path", driveDir))

	cmd, err := qemu.NewCommand(qemu.CommandSpec{
		Executable:  executable,
		Firmware:    firmware,
		DriveDir:    driveDir,
		SerialFiles: spec.SerialFiles,
		ExtraArgs:   spec.QemuArgs,
	})
	if err != nil {
		return err
	}

	slog.Debug("QEMU command", slog.String("command", cmd.String()))

	return cmd.Run(ctx, stdin, stdout, stderr)
}
