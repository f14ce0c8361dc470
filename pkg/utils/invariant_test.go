//go:build !simdebug

package utils

import "testing"

func TestInvariantReleaseBuild(t *testing.T) {
	if !Invariant(true, "never reported") {
		t.Error("Invariant(true) should return true")
	}
	if Invariant(false, "entity %d destroyed twice", 7) {
		t.Error("Invariant(false) should return false in release builds")
	}
}
