// ABOUTME: KDBX database decryption and flattening via gokeepasslib
// ABOUTME: Walks the group tree depth-first into a flat, stably ordered entry slice

package vault

import (
	"fmt"
	"os"

	"github.com/tobischo/gokeepasslib/v3"

	"github.com/mauromedda/kp-go/internal/log"
)

// Open decrypts the KDBX database at path and returns its entries in a flat
// slice. The slice order is the depth-first group walk order and is stable
// for a given database; the resolver relies on it staying fixed for the
// duration of one call. keyFile may be empty.
func Open(path, keyFile, password string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer f.Close()

	db := gokeepasslib.NewDatabase()
	if keyFile != "" {
		creds, err := gokeepasslib.NewPasswordAndKeyCredentials(password, keyFile)
		if err != nil {
			return nil, fmt.Errorf("reading key file %s: %w", keyFile, err)
		}
		db.Credentials = creds
	} else {
		db.Credentials = gokeepasslib.NewPasswordCredentials(password)
	}

	if err := gokeepasslib.NewDecoder(f).Decode(db); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := db.UnlockProtectedEntries(); err != nil {
		return nil, fmt.Errorf("unlocking protected values: %w", err)
	}

	var entries []Entry
	for _, g := range db.Content.Root.Groups {
		collectGroup(g, &entries)
	}
	log.Debug("vault: loaded %d entries from %s", len(entries), path)
	return entries, nil
}

// collectGroup appends the group's entries, then recurses into subgroups.
// An entry's Group is its immediate parent, not the full path.
func collectGroup(g gokeepasslib.Group, out *[]Entry) {
	for _, e := range g.Entries {
		*out = append(*out, convertEntry(e, g.Name))
	}
	for _, sub := range g.Groups {
		collectGroup(sub, out)
	}
}

func convertEntry(e gokeepasslib.Entry, group string) Entry {
	fields := make([]Field, 0, len(e.Values))
	for _, v := range e.Values {
		fields = append(fields, Field{Key: v.Key, Value: v.Value.Content})
	}
	entry := Entry{Group: group, Fields: fields}
	entry.Title, _ = entry.Field("Title")
	return entry
}
