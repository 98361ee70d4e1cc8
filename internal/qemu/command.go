// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Command is a QEMU command ready to run.
type Command struct {
	name        string
	args        []string
	serialFiles []string
}

// NewCommand validates the given spec and compiles it into a [Command].
func NewCommand(spec CommandSpec) (*Command, error) {
	err := spec.Validate()
	if err != nil {
		return nil, err
	}

	args, err := BuildArgumentStrings(spec.arguments())
	if err != nil {
		return nil, err
	}

	args = append(args, spec.ExtraArgs...)

	cmd := &Command{
		name:        spec.Executable,
		args:        args,
		serialFiles: spec.SerialFiles,
	}

	return cmd, nil
}

// String implements [fmt.Stringer].
func (c *Command) String() string {
	return c.name + " " + strings.Join(c.args, " ")
}

// Args returns the argument strings the command runs with.
func (c *Command) Args() []string {
	return slices.Clone(c.args)
}

// Run starts the QEMU command and waits until it terminates.
//
// The given streams are passed to the QEMU process unchanged. Guest serial
// console output is copied into the configured serial files with carriage
// returns stripped. If QEMU terminates with a non-zero exit status, a
// [CommandError] wrapping [ErrNonZeroExitStatus] is returned that carries
// the exit status.
func (c *Command) Run(
	ctx context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	cmd := exec.CommandContext(ctx, c.name, c.args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	processors := errgroup.Group{}
	writePipes := make([]*os.File, 0, len(c.serialFiles))

	closePipes := func() {
		for _, writePipe := range writePipes {
			_ = writePipe.Close()
		}
	}

	for _, path := range c.serialFiles {
		processor, writePipe, err := newConsoleProcessor(path)
		if err != nil {
			closePipes()
			_ = processors.Wait()

			return fmt.Errorf("console %s: %w", path, err)
		}

		writePipes = append(writePipes, writePipe)
		cmd.ExtraFiles = append(cmd.ExtraFiles, writePipe)

		processors.Go(processor)
	}

	err := cmd.Start()
	if err != nil {
		closePipes()
		_ = processors.Wait()

		return fmt.Errorf("start: %w", err)
	}

	waitErr := cmd.Wait()

	// Close our copies of the write pipes. QEMU's copies are gone once it
	// terminated, so the processors run into EOF and terminate as well.
	closePipes()

	processorErr := processors.Wait()

	if waitErr != nil {
		return commandError(waitErr)
	}

	if processorErr != nil {
		return fmt.Errorf("console: %w", processorErr)
	}

	return nil
}

func commandError(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.Exited() {
		return &CommandError{
			Err:      ErrNonZeroExitStatus,
			ExitCode: exitErr.ExitCode(),
		}
	}

	return fmt.Errorf("wait: %w", err)
}
