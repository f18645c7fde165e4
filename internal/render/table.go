// ABOUTME: Table rendering for entry listings using lipgloss
// ABOUTME: Entries shows title/user/group; Candidates adds a 1-based index and URL

package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mauromedda/kp-go/internal/vault"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// Entries renders the listing table: Title, UserName, Group.
func Entries(entries []vault.Entry) string {
	t := newTable("Title", "UserName", "Group")
	for _, e := range entries {
		t.Row(e.Title, e.UserName(), e.Group)
	}
	return t.Render()
}

// Candidates renders resolver output for disambiguation, numbering rows
// from 1 to match the selection prompt.
func Candidates(entries []vault.Entry) string {
	t := newTable("#", "Title", "UserName", "URL")
	for i, e := range entries {
		t.Row(strconv.Itoa(i+1), e.Title, e.UserName(), e.URL())
	}
	return t.Render()
}
