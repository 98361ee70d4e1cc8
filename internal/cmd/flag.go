// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/aibor/uefirun/internal/uefirun"
)

const (
	name = "uefirun"

	usageMessage = `Usage of 'uefirun':
    uefirun [flags...] [-- qemuargs...]

Run the project's compiled UEFI application in QEMU:
    uefirun

Select a binary target and pass additional QEMU arguments:
    uefirun -bin=my-app -- -nographic

All uefirun flags can also be provided via environment variable UEFIRUN_ARGS:
    UEFIRUN_ARGS="-firmware=/path/to/OVMF.fd" uefirun

All uefirun flags can also be provided via file ./.uefirun-args, with one
argument per line.
`
)

type flags struct {
	spec    uefirun.Spec
	flagSet *flag.FlagSet

	version bool
	debug   bool
}

func newFlags(output io.Writer) *flags {
	flags := &flags{}

	flags.initFlagset(output)

	return flags
}

func (f *flags) ParseArgs(args []string) error {
	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.version {
		err := f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: err}
	}

	// All remaining arguments are passed to QEMU verbatim.
	f.spec.QemuArgs = f.flagSet.Args()

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.StringVar(
		&f.spec.Binary,
		"bin",
		f.spec.Binary,
		"name of the binary target to run (default is the only declared one)",
	)

	flagSet.Var(
		(*FilePath)(&f.spec.Firmware),
		"firmware",
		"path to the UEFI firmware image to boot with "+
			"(default is OVMF.fd in the project root)",
	)

	flagSet.StringVar(
		&f.spec.QemuExecutable,
		"qemu-bin",
		f.spec.QemuExecutable,
		"QEMU binary to use (default: qemu-system-x86_64)",
	)

	flagSet.Var(
		(*FilePathList)(&f.spec.SerialFiles),
		"serial-log",
		"file to write an additional guest serial console to. Flag may be "+
			"used more than once. Empty value clears the list.",
	)

	flagSet.Var(
		(*FilePathList)(&f.spec.ExtraFiles),
		"add-file",
		"file to add to the root of the boot drive. Flag may be used more "+
			"than once. Empty value clears the list.",
	)

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "Version: %s\n", buildInfo.Main.Version)

	return ErrHelp
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}
