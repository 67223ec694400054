// Package clockx abstracts the ambient wall clock so time-dependent logic
// (token expiry stamps, "today" filters) stays deterministic in tests.
package clockx

import "time"

// Clock returns the current time. The zero-dependency production
// implementation is Real; tests use Mock with a pinned instant.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Mock is a settable clock for tests. It is not safe for concurrent
// mutation; set the instant before handing it to the code under test.
type Mock struct {
	Instant time.Time
}

func (m *Mock) Now() time.Time { return m.Instant }

// Set pins the mock to the given instant.
func (m *Mock) Set(t time.Time) { m.Instant = t }
