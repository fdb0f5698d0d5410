package blake2b

import (
	"errors"
	"testing"
)

func TestErrorKindRecoverable(t *testing.T) {
	_, err := New(&Config{Size: 100})
	if err == nil {
		t.Fatal("expected an error for an out-of-range Size")
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("errors.As failed to recover *Error from %v", err)
	}
	if e.Kind != InvalidLength {
		t.Errorf("Kind = %v, want InvalidLength", e.Kind)
	}
}
