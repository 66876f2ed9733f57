package util

import (
	"strings"
	"testing"
)

func TestGenerateDeterministicUID(t *testing.T) {
	seeds := []string{"", "out.dcm_42", "a/very/long/path/to/spectrum_image_brightened.dcm_9223372036854775807"}

	for _, seed := range seeds {
		uid1 := GenerateDeterministicUID(seed)
		uid2 := GenerateDeterministicUID(seed)

		if uid1 != uid2 {
			t.Errorf("Same seed %q produced different UIDs: %s vs %s", seed, uid1, uid2)
		}
		if !strings.HasPrefix(uid1, UIDRoot) {
			t.Errorf("UID should start with %s, got: %s", UIDRoot, uid1)
		}
		if len(uid1) > 64 {
			t.Errorf("UID too long (%d chars): %s", len(uid1), uid1)
		}
		for _, c := range strings.TrimPrefix(uid1, UIDRoot) {
			if c < '0' || c > '9' {
				t.Errorf("UID suffix must be numeric, got %s", uid1)
				break
			}
		}
	}
}

func TestGenerateDeterministicUID_Distinct(t *testing.T) {
	a := GenerateDeterministicUID("study_1")
	b := GenerateDeterministicUID("study_2")
	if a == b {
		t.Errorf("Expected different UIDs for different seeds, got %s twice", a)
	}
}
