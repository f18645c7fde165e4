// ABOUTME: Terminal helpers for password prompts and TTY detection
// ABOUTME: Thin wrapper over golang.org/x/term; falls back to line reads off a pipe

package termio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ReadPassword prompts on stderr and reads a password from stdin without
// echo. When stdin is not a terminal (piped input), a plain line read is
// used instead so scripted invocations keep working.
func ReadPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	if !IsTerminal(os.Stdin) {
		return readLine(os.Stdin)
	}

	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(b), nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
