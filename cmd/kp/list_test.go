// ABOUTME: Tests for the full-listing sort order
// ABOUTME: Verifies lowercased title sort and that the store slice is untouched

package main

import (
	"testing"

	"github.com/mauromedda/kp-go/internal/vault"
)

func TestSortedByTitle(t *testing.T) {
	t.Parallel()

	store := []vault.Entry{
		{Title: "gmail"},
		{Title: "AWS"},
		{Title: "GitHub"},
	}

	sorted := sortedByTitle(store)

	want := []string{"AWS", "GitHub", "gmail"}
	for i := range sorted {
		if sorted[i].Title != want[i] {
			t.Errorf("sorted[%d] = %q, want %q", i, sorted[i].Title, want[i])
		}
	}

	// The input keeps store order.
	if store[0].Title != "gmail" {
		t.Error("sortedByTitle mutated its input")
	}
}

func TestSortedByTitle_Empty(t *testing.T) {
	t.Parallel()

	if got := sortedByTitle(nil); len(got) != 0 {
		t.Errorf("got %d entries, want 0", len(got))
	}
}
