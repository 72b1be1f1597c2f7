// Package clock provides Clock implementations.
package clock

import (
	"sync"
	"time"
)

// Real returns the actual current time in the process's local zone.
type Real struct{}

// Now returns the current time.
func (Real) Now() time.Time {
	return time.Now()
}

// Zoned returns the current time in a fixed location, so creation stamps
// do not depend on the host's TZ.
type Zoned struct {
	Location *time.Location
}

// InZone loads the named IANA zone. An empty name means UTC.
func InZone(name string) (Zoned, error) {
	if name == "" {
		return Zoned{Location: time.UTC}, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zoned{}, err
	}
	return Zoned{Location: loc}, nil
}

// Now returns the current time in z.Location.
func (z Zoned) Now() time.Time {
	if z.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(z.Location)
}

// Fake provides a controllable clock for testing.
type Fake struct {
	mu      sync.RWMutex
	current time.Time
}

// NewFake creates a fake clock set to the given time.
func NewFake(t time.Time) *Fake {
	return &Fake{current: t}
}

// Now returns the fake current time.
func (f *Fake) Now() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}

// Set sets the fake current time.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = t
}

// Advance moves the fake time forward by duration d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = f.current.Add(d)
}
