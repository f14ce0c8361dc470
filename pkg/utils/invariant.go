package utils

import (
	"fmt"
	"log"
)

// Invariant checks a programming-error condition.
//
// Builds tagged simdebug panic on a violation so tests and debug runs fail loudly.
// Release builds log the violation and return false so the caller can degrade to a
// safe default (clamp, fallback type, ignore).
func Invariant(ok bool, format string, args ...any) bool {
	if ok {
		return true
	}
	msg := fmt.Sprintf(format, args...)
	if panicOnInvariant {
		panic("invariant violated: " + msg)
	}
	log.Printf("[Invariant] %s", msg)
	return false
}
