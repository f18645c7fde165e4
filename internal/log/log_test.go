// ABOUTME: Tests for the verbose-mode logging gate
// ABOUTME: Verifies SetVerbose toggles the debug level both ways

package log

import "testing"

func TestSetVerbose(t *testing.T) {
	SetVerbose(true)
	if !Verbose() {
		t.Error("expected verbose after SetVerbose(true)")
	}

	SetVerbose(false)
	if Verbose() {
		t.Error("expected non-verbose after SetVerbose(false)")
	}
}
