package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// openInput resolves the diagram source: a file path argument, or stdin
// when the argument is missing or "-". The returned close func is a
// no-op for stdin.
func openInput(args []string, stdin io.Reader) (io.Reader, func() error, bool, error) {
	if len(args) == 0 || args[0] == "-" {
		return stdin, func() error { return nil }, true, nil
	}
	// #nosec G304 -- the input path is user-provided by design.
	file, err := os.Open(args[0])
	if err != nil {
		return nil, nil, false, fmt.Errorf("open %s: %w", args[0], err)
	}
	return file, file.Close, false, nil
}

// confirm prints the prompt on out and reads a y/N answer from in.
// Anything but y/yes declines.
func confirm(in io.Reader, out io.Writer, dirs, files int, root string) (bool, error) {
	fmt.Fprintf(out, "This will create %d directories and %d files under %s. Continue? [y/N] ", dirs, files, root)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
