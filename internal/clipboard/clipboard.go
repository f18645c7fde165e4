// ABOUTME: Cross-platform clipboard write using pbcopy, wl-copy, or xclip
// ABOUTME: Pipes text to the platform clipboard command via stdin

package clipboard

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Write copies text to the system clipboard.
func Write(text string) error {
	cmd, args := clipboardCmd()
	if cmd == "" {
		return fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}

	c := exec.Command(cmd, args...)
	c.Stdin = strings.NewReader(text)
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}
	return nil
}

// clipboardCmd returns the clipboard command and arguments for the current
// OS. Wayland sessions get wl-copy; other Linux sessions get xclip.
func clipboardCmd() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "pbcopy", nil
	case "linux":
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			return "wl-copy", nil
		}
		return "xclip", []string{"-selection", "clipboard"}
	default:
		return "", nil
	}
}
