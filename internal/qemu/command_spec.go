// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
)

const minAdditionalFileDescriptor = 3

// CommandSpec defines the parameters for a [Command].
type CommandSpec struct {
	// Path to the qemu-system binary.
	Executable string

	// Path to the UEFI firmware image. It is attached as read-only pflash
	// drive, so the guest boots right into the firmware.
	Firmware string

	// Path to a local directory that is attached as raw FAT drive. The
	// firmware discovers the boot file in it via the removable media path
	// EFI/BOOT/BOOTX64.EFI.
	DriveDir string

	// Files receiving guest serial console output. For each file an
	// additional serial port is set up that writes to a file descriptor
	// provided via [exec.Cmd.ExtraFiles].
	SerialFiles []string

	// ExtraArgs are extra arguments that are passed to the QEMU command
	// verbatim, after the arguments compiled from the fields above.
	ExtraArgs []string
}

// Validate checks that all required fields are set.
func (s *CommandSpec) Validate() error {
	if s.Executable == "" {
		return &ArgumentError{"executable must not be empty"}
	}

	if s.Firmware == "" {
		return &ArgumentError{"firmware must not be empty"}
	}

	if s.DriveDir == "" {
		return &ArgumentError{"drive directory must not be empty"}
	}

	return nil
}

// arguments compiles the argument list for the QEMU command.
func (s *CommandSpec) arguments() []Argument {
	args := []Argument{
		RepeatableArg("drive",
			"if=pflash", "format=raw", "readonly=on", "file="+s.Firmware),
		RepeatableArg("drive", "format=raw", "file=fat:rw:"+s.DriveDir),
	}

	// Write serial console output to file descriptors. Those are provided
	// by [exec.Cmd.ExtraFiles].
	for idx := range s.SerialFiles {
		// FDs 0, 1, 2 are standard in, out, err, so start at 3.
		path := fdPath(minAdditionalFileDescriptor + idx)
		id := fmt.Sprintf("con%d", idx)
		args = append(args,
			RepeatableArg("chardev", "file", "id="+id, "path="+path),
			RepeatableArg("serial", "chardev:"+id),
		)
	}

	return args
}

func fdPath(fd int) string {
	return fmt.Sprintf("/dev/fd/%d", fd)
}
