// ABOUTME: Tests for table output of listings and candidate views
// ABOUTME: Asserts on cell contents, not on border drawing details

package render

import (
	"strings"
	"testing"

	"github.com/mauromedda/kp-go/internal/vault"
)

func sample() []vault.Entry {
	return []vault.Entry{
		{
			Title: "Gmail",
			Group: "Internet",
			Fields: []vault.Field{
				{Key: "UserName", Value: "jo"},
				{Key: "URL", Value: "https://mail.google.com"},
			},
		},
		{
			Title:  "Work VPN",
			Group:  "Work",
			Fields: []vault.Field{{Key: "UserName", Value: "jo@corp"}},
		},
	}
}

func TestEntries(t *testing.T) {
	t.Parallel()

	out := Entries(sample())

	for _, want := range []string{"Title", "UserName", "Group", "Gmail", "Internet", "Work VPN", "jo@corp"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCandidates_Numbered(t *testing.T) {
	t.Parallel()

	out := Candidates(sample())

	for _, want := range []string{"#", "URL", "1", "2", "https://mail.google.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEntries_Empty(t *testing.T) {
	t.Parallel()

	out := Entries(nil)
	if !strings.Contains(out, "Title") {
		t.Errorf("empty table should still carry headers:\n%s", out)
	}
}
