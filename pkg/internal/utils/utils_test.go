// utils_test.go

package utils_test

import (
	"testing"

	"github.com/cigdemahmet27/commlink/pkg/internal/utils"
)

func TestGenerateUniqueHash(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		h := utils.GenerateUniqueHash()
		if len(h) != 64 {
			t.Fatalf("expected 64 hex characters, got %d (%q)", len(h), h)
		}
		if seen[h] {
			t.Fatalf("hash %q repeated", h)
		}
		seen[h] = true
	}
}
