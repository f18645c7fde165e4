// ABOUTME: Entry is one decrypted credential record with ordered named fields
// ABOUTME: Field lookup lowers both keys at call time; a missing field is not an error

package vault

import "strings"

// Field is a single named string value on an entry.
type Field struct {
	Key   string
	Value string
}

// Entry represents one credential record from the database. Title and Group
// are denormalized from the field list for cheap access during matching;
// Group names the immediate containing group and is used only for exclusion.
type Entry struct {
	Title  string
	Group  string
	Fields []Field
}

// Field returns the value for the named field, comparing keys
// case-insensitively. The second return is false when no field matches;
// callers must treat absence as valid (a URL field may simply not exist).
func (e Entry) Field(name string) (string, bool) {
	want := strings.ToLower(name)
	for _, f := range e.Fields {
		if strings.ToLower(f.Key) == want {
			return f.Value, true
		}
	}
	return "", false
}

// UserName returns the UserName field, or "" if absent.
func (e Entry) UserName() string {
	v, _ := e.Field("UserName")
	return v
}

// URL returns the URL field, or "" if absent.
func (e Entry) URL() string {
	v, _ := e.Field("URL")
	return v
}

// Password returns the Password field, or "" if absent.
func (e Entry) Password() string {
	v, _ := e.Field("Password")
	return v
}
