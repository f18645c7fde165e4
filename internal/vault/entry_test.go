// ABOUTME: Tests for entry field lookup semantics
// ABOUTME: Verifies case-insensitive keys and valid absence

package vault

import "testing"

func TestField_CaseInsensitive(t *testing.T) {
	t.Parallel()

	e := Entry{Fields: []Field{
		{Key: "Title", Value: "Gmail"},
		{Key: "UserName", Value: "jo"},
		{Key: "Password", Value: "hunter2"},
	}}

	for _, name := range []string{"username", "USERNAME", "UserName"} {
		v, ok := e.Field(name)
		if !ok {
			t.Fatalf("Field(%q) not found", name)
		}
		if v != "jo" {
			t.Errorf("Field(%q) = %q, want %q", name, v, "jo")
		}
	}
}

func TestField_Absent(t *testing.T) {
	t.Parallel()

	e := Entry{Fields: []Field{{Key: "Title", Value: "Gmail"}}}

	v, ok := e.Field("URL")
	if ok {
		t.Error("expected URL to be absent")
	}
	if v != "" {
		t.Errorf("absent field value = %q, want empty", v)
	}
}

func TestField_FirstMatchWins(t *testing.T) {
	t.Parallel()

	e := Entry{Fields: []Field{
		{Key: "Notes", Value: "first"},
		{Key: "notes", Value: "second"},
	}}

	v, _ := e.Field("NOTES")
	if v != "first" {
		t.Errorf("Field(NOTES) = %q, want %q", v, "first")
	}
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	e := Entry{Fields: []Field{
		{Key: "UserName", Value: "jo"},
		{Key: "URL", Value: "https://example.com"},
		{Key: "Password", Value: "hunter2"},
	}}

	if e.UserName() != "jo" {
		t.Errorf("UserName() = %q", e.UserName())
	}
	if e.URL() != "https://example.com" {
		t.Errorf("URL() = %q", e.URL())
	}
	if e.Password() != "hunter2" {
		t.Errorf("Password() = %q", e.Password())
	}
}
