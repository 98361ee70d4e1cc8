// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// consoleProcessor copies console output from src to dst line by line.
//
// QEMU serial consoles emit CRLF line breaks. The carriage returns are
// stripped by [bufio.ScanLines], so dst receives plain LF line breaks.
type consoleProcessor struct {
	dst io.Writer
	src io.Reader
}

func (p *consoleProcessor) run() error {
	scanner := bufio.NewScanner(p.src)
	for scanner.Scan() {
		err := writeLn(p.dst, scanner.Bytes())
		if err != nil {
			return err
		}
	}

	return scanner.Err()
}

// newConsoleProcessor creates the console output file at the given path and
// returns a processor function that copies scrubbed console output into it,
// along with the write end of the pipe the output is read from.
//
// The processor terminates once the write pipe has been closed by all
// owners. It closes the output file and the read end of the pipe when done.
func newConsoleProcessor(path string) (func() error, *os.File, error) {
	dst, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create: %w", err)
	}

	readPipe, writePipe, err := os.Pipe()
	if err != nil {
		_ = dst.Close()
		return nil, nil, fmt.Errorf("pipe: %w", err)
	}

	processor := func() error {
		defer dst.Close()
		defer readPipe.Close()

		p := consoleProcessor{
			dst: dst,
			src: readPipe,
		}

		return p.run()
	}

	return processor, writePipe, nil
}

func writeLn(dst io.Writer, data []byte) error {
	_, err := dst.Write(data)
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	_, err = dst.Write([]byte("\n"))
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}
