// ABOUTME: Plain numeric selection prompt for non-interactive terminals
// ABOUTME: Loops until a 1..n choice is read; EOF aborts

package picker

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// promptNumber asks "Which entry?" on w and reads 1-based choices from r
// until one is in range. The returned index is 0-based.
func promptNumber(r io.Reader, w io.Writer, n int) (int, error) {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "Which entry? ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("reading selection: %w", err)
			}
			return 0, ErrAborted
		}
		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || choice < 1 || choice > n {
			continue
		}
		return choice - 1, nil
	}
}
