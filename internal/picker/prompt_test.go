// ABOUTME: Tests for the numeric selection prompt loop
// ABOUTME: Feeds canned stdin lines and checks reprompting behavior

package picker

import (
	"errors"
	"strings"
	"testing"
)

func TestPromptNumber_Valid(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	got, err := promptNumber(strings.NewReader("2\n"), &out, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("got index %d, want 1", got)
	}
	if !strings.Contains(out.String(), "Which entry?") {
		t.Error("missing prompt text")
	}
}

func TestPromptNumber_RepromptsUntilValid(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	got, err := promptNumber(strings.NewReader("zero\n0\n9\n3\n"), &out, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("got index %d, want 2", got)
	}
	if n := strings.Count(out.String(), "Which entry?"); n != 4 {
		t.Errorf("prompted %d times, want 4", n)
	}
}

func TestPromptNumber_EOF(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	_, err := promptNumber(strings.NewReader(""), &out, 3)
	if !errors.Is(err, ErrAborted) {
		t.Errorf("err = %v, want ErrAborted", err)
	}
}

func TestPromptNumber_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	got, err := promptNumber(strings.NewReader("  1 \n"), &out, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("got index %d, want 0", got)
	}
}
