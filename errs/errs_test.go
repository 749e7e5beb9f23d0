package errs

import (
	"errors"
	"testing"
)

func TestConstructionErrorUnwraps(t *testing.T) {
	e := New("formula.Lit", "invalid literal name")
	if e.Error() == "" {
		t.Fatalf("expected a non-empty message")
	}
	if !errors.Is(e, e) {
		t.Fatalf("expected ConstructionError to compare equal to itself via errors.Is")
	}
	if errors.Unwrap(e) == nil {
		t.Fatalf("expected ConstructionError to unwrap to its cause")
	}
}

func TestNewfFormats(t *testing.T) {
	e := Newf("formula.Lit", "invalid literal name %q", "3x")
	want := `formula.Lit: invalid literal name "3x"`
	if e.Error() != want {
		t.Fatalf("got %q, want %q", e.Error(), want)
	}
}
