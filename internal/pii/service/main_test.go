package service

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain verifies that no test in this package leaks goroutines. The
// cipher and codec must never spawn background work that could outlive a
// request.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
