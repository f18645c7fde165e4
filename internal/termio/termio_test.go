// ABOUTME: Tests for terminal detection and piped password reads
// ABOUTME: Uses in-memory readers and os.Pipe; no real TTY required

package termio

import (
	"os"
	"strings"
	"testing"
)

func TestIsTerminal_Pipe(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if IsTerminal(r) {
		t.Error("pipe should not be a terminal")
	}
}

func TestReadLine(t *testing.T) {
	t.Parallel()

	got, err := readLine(strings.NewReader("hunter2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "hunter2" {
		t.Errorf("got %q, want %q", got, "hunter2")
	}
}

func TestReadLine_NoTrailingNewline(t *testing.T) {
	t.Parallel()

	got, err := readLine(strings.NewReader("hunter2"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "hunter2" {
		t.Errorf("got %q, want %q", got, "hunter2")
	}
}

func TestReadLine_CRLF(t *testing.T) {
	t.Parallel()

	got, err := readLine(strings.NewReader("hunter2\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "hunter2" {
		t.Errorf("got %q, want %q", got, "hunter2")
	}
}
