package utils

import (
	"testing"
)

func TestRandStringLength(t *testing.T) {
	for _, n := range []int{1, 8, 32} {
		if got := RandString(n); len(got) != n {
			t.Errorf("RandString(%d) has length %d", n, len(got))
		}
	}
}

func TestRandDigits(t *testing.T) {
	code := RandDigits(6)
	if len(code) != 6 {
		t.Fatalf("RandDigits(6) has length %d", len(code))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Errorf("non-digit %q in code %s", r, code)
		}
	}
}
