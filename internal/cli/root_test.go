package cli

import (
	"testing"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.0", "deadbeef", "2026-01-01")

	if version != "1.2.0" {
		t.Errorf("version = %q, want %q", version, "1.2.0")
	}
	if commit != "deadbeef" {
		t.Errorf("commit = %q, want %q", commit, "deadbeef")
	}
	if date != "2026-01-01" {
		t.Errorf("date = %q, want %q", date, "2026-01-01")
	}
}

func TestNotation(t *testing.T) {
	if got := notation(false); got != "code1" {
		t.Errorf("notation(false) = %q, want %q", got, "code1")
	}
	if got := notation(true); got != "code3" {
		t.Errorf("notation(true) = %q, want %q", got, "code3")
	}
}

func TestCyclizeMode(t *testing.T) {
	if got := cyclizeMode(false); got != "none" {
		t.Errorf("cyclizeMode(false) = %q, want %q", got, "none")
	}
	if got := cyclizeMode(true); got != "head-to-tail" {
		t.Errorf("cyclizeMode(true) = %q, want %q", got, "head-to-tail")
	}
}
