package common

import (
	"errors"
	"fmt"
	"testing"
)

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

// ---------- FirstNonEmpty ----------

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "a", "b"); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := FirstNonEmpty("", ""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := FirstNonEmpty(); got != "" {
		t.Fatalf("expected empty for no args, got %q", got)
	}
}

// ---------- sentinels ----------

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("login: %w", ErrAuthentication)
	if !errors.Is(err, ErrAuthentication) {
		t.Fatalf("expected wrapped error to match ErrAuthentication")
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Fatalf("ErrAuthentication must not match ErrUnauthorized")
	}
}
