// ABOUTME: Ordered multimap from lowercased title to entries sharing it
// ABOUTME: Built fresh for one approximate-match pass and then discarded

package search

import (
	"strings"

	"github.com/mauromedda/kp-go/internal/vault"
)

// titleIndex buckets entries by lowercased title. keys holds the distinct
// lowercased titles in first-appearance order; each bucket keeps store
// order. Titles differing only in case share one bucket.
type titleIndex struct {
	keys    []string
	buckets map[string][]vault.Entry
}

func newTitleIndex(entries []vault.Entry) *titleIndex {
	idx := &titleIndex{buckets: make(map[string][]vault.Entry, len(entries))}
	for _, e := range entries {
		key := strings.ToLower(e.Title)
		if _, ok := idx.buckets[key]; !ok {
			idx.keys = append(idx.keys, key)
		}
		idx.buckets[key] = append(idx.buckets[key], e)
	}
	return idx
}
