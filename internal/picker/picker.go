// ABOUTME: Disambiguation between multiple resolved entries
// ABOUTME: Interactive fuzzy picker on a TTY, numeric prompt otherwise

package picker

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/kp-go/internal/termio"
	"github.com/mauromedda/kp-go/internal/vault"
)

// ErrAborted is returned when the user cancels the selection.
var ErrAborted = errors.New("selection aborted")

// Choose asks the user to pick one of the candidates and returns its index
// within the candidates slice. With a terminal attached, an interactive
// filterable list is shown; otherwise a plain "Which entry?" prompt reads
// a 1-based number from stdin.
func Choose(candidates []vault.Entry) (int, error) {
	if len(candidates) == 0 {
		return 0, errors.New("no candidates to choose from")
	}
	if len(candidates) == 1 {
		return 0, nil
	}
	if termio.IsTerminal(os.Stdin) && termio.IsTerminal(os.Stderr) {
		return chooseInteractive(candidates)
	}
	return promptNumber(os.Stdin, os.Stderr, len(candidates))
}

func chooseInteractive(candidates []vault.Entry) (int, error) {
	items := make([]item, len(candidates))
	for i, e := range candidates {
		items[i] = item{
			label: e.Title,
			desc:  fmt.Sprintf("%s  (%s)", e.UserName(), e.Group),
			index: i,
		}
	}

	p := tea.NewProgram(newModel(items), tea.WithOutput(os.Stderr))
	out, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("bubble tea: %w", err)
	}

	final, ok := out.(model)
	if !ok || final.aborted || final.choice < 0 {
		return 0, ErrAborted
	}
	return final.choice, nil
}
