// ABOUTME: Staged fuzzy resolution of database entries by approximate title
// ABOUTME: Escalates exact -> case-insensitive -> substring -> edit similarity

package search

import (
	"fmt"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/mauromedda/kp-go/internal/log"
	"github.com/mauromedda/kp-go/internal/vault"
)

// similarityCutoff is the minimum normalized edit similarity for the
// approximate stage to keep a title.
const similarityCutoff = 0.7

// DefaultExcludedGroups are the groups the list and get flows hide unless a
// caller asks for something else. KeePass keeps old copies of entries in a
// Backup group, which is never what a lookup wants.
var DefaultExcludedGroups = []string{"Backup"}

// NotFoundError reports that no matching stage produced a result for a term.
type NotFoundError struct {
	Term string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find an entry for: %s", e.Term)
}

// Resolve finds the entries best matching term by title, trying
// progressively looser stages and stopping at the first stage that yields
// anything after group exclusion:
//
//  1. exact title match
//  2. case-insensitive title match
//  3. term contained in title, case-insensitively
//  4. titles within edit similarity 0.7 of the term
//
// A stage whose matches all fall in excluded groups counts as empty and
// escalation continues. Results keep the store order of entries; the
// approximate stage keeps first-appearance order of distinct lowercased
// titles, store order within each title. Only the title is ever matched.
// Returns *NotFoundError when every stage comes up empty.
func Resolve(term string, entries []vault.Entry, excludedGroups []string) ([]vault.Entry, error) {
	if kept := FilterExcluded(exactMatches(term, entries), excludedGroups); len(kept) > 0 {
		log.Debug("search: %q matched %d entries exactly", term, len(kept))
		return kept, nil
	}

	lower := strings.ToLower(term)

	if kept := FilterExcluded(foldedMatches(lower, entries), excludedGroups); len(kept) > 0 {
		log.Debug("search: %q matched %d entries case-insensitively", term, len(kept))
		return kept, nil
	}

	if kept := FilterExcluded(substringMatches(lower, entries), excludedGroups); len(kept) > 0 {
		log.Debug("search: %q matched %d entries by substring", term, len(kept))
		return kept, nil
	}

	// Misspellings land here.
	if kept := FilterExcluded(closeMatches(lower, entries), excludedGroups); len(kept) > 0 {
		log.Debug("search: %q matched %d entries approximately", term, len(kept))
		return kept, nil
	}

	return nil, &NotFoundError{Term: term}
}

// FilterExcluded returns the candidates whose group is not in
// excludedGroups, preserving relative order. An empty exclusion set passes
// the input through unchanged.
func FilterExcluded(candidates []vault.Entry, excludedGroups []string) []vault.Entry {
	if len(excludedGroups) == 0 {
		return candidates
	}
	excluded := make(map[string]struct{}, len(excludedGroups))
	for _, g := range excludedGroups {
		excluded[g] = struct{}{}
	}
	var kept []vault.Entry
	for _, e := range candidates {
		if _, ok := excluded[e.Group]; !ok {
			kept = append(kept, e)
		}
	}
	return kept
}

func exactMatches(term string, entries []vault.Entry) []vault.Entry {
	var matched []vault.Entry
	for _, e := range entries {
		if e.Title == term {
			matched = append(matched, e)
		}
	}
	return matched
}

func foldedMatches(lowerTerm string, entries []vault.Entry) []vault.Entry {
	var matched []vault.Entry
	for _, e := range entries {
		if strings.ToLower(e.Title) == lowerTerm {
			matched = append(matched, e)
		}
	}
	return matched
}

func substringMatches(lowerTerm string, entries []vault.Entry) []vault.Entry {
	var matched []vault.Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), lowerTerm) {
			matched = append(matched, e)
		}
	}
	return matched
}

// closeMatches unions the buckets of every distinct lowercased title whose
// similarity to the term reaches the cutoff. Titles are not ranked by
// score; the index order decides.
func closeMatches(lowerTerm string, entries []vault.Entry) []vault.Entry {
	idx := newTitleIndex(entries)
	var matched []vault.Entry
	for _, key := range idx.keys {
		if levenshtein.Similarity(key, lowerTerm, nil) >= similarityCutoff {
			matched = append(matched, idx.buckets[key]...)
		}
	}
	return matched
}
