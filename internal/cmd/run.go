// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/uefirun/internal/qemu"
	"github.com/aibor/uefirun/internal/uefirun"
)

const localConfigFile = ".uefirun-args"

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func setupLogging(writer io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(
		writer,
		&slog.HandlerOptions{
			Level: level,
		},
	)))
}

func parseArgs(args []string, cfg IO) (*flags, error) {
	mergedArgs, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags := newFlags(cfg.Stderr)

	err = flags.ParseArgs(mergedArgs[1:])
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

func handleRunError(err error, stdErr io.Writer) int {
	if err == nil {
		return 0
	}

	// [ErrHelp] is returned when help or version output is requested. So
	// exit without error in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	exitCode := -1

	var cmdErr *qemu.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.ExitCode != 0 {
			exitCode = cmdErr.ExitCode
		}
	}

	// ParseArgs already prints errors, so we just exit without printing.
	if errors.Is(err, &ParseArgsError{}) {
		return exitCode
	}

	// Do not print the error in case the application terminated properly
	// with a non-zero exit status. The status is the result of the run.
	if errors.Is(err, qemu.ErrNonZeroExitStatus) {
		return exitCode
	}

	fmt.Fprintf(stdErr, "Error [%s]: %v\n", name, err)

	return exitCode
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	flags, err := parseArgs(args, cfg)
	if err != nil {
		return handleRunError(err, cfg.Stderr)
	}

	setupLogging(cfg.Stderr, flags.debug)

	err = uefirun.Run(ctx, &flags.spec, cfg.Stdin, cfg.Stdout, cfg.Stderr)

	return handleRunError(err, cfg.Stderr)
}
