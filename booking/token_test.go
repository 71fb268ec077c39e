package booking

import (
	"strings"
	"testing"
)

func TestRandomTokensFormat(t *testing.T) {
	var tokens RandomTokens
	for i := 0; i < 100; i++ {
		id := tokens.BookingID()
		if len(id) != 11 {
			t.Fatalf("expected 11 characters, got %q", id)
		}
		if !strings.HasPrefix(id, "BK") {
			t.Fatalf("expected BK prefix, got %q", id)
		}
		for _, r := range id[2:] {
			if !strings.ContainsRune(tokenAlphabet, r) {
				t.Fatalf("unexpected character %q in %q", r, id)
			}
		}
	}
}

func TestRandomTokensVary(t *testing.T) {
	var tokens RandomTokens
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[tokens.BookingID()] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected varying ids, got %d distinct of 50", len(seen))
	}
}
