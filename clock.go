// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

import (
	"sync"
	"time"
)

// NewRealClock returns a new RealClock.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// RealClock is the ClockProvider used outside of tests. All times are UTC.
type RealClock struct{}

// Now returns the current UTC time.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// NewFixedClock returns a new clock with an initial time.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{now: t}
}

// FixedClock is a ClockProvider for tests which only moves when Set or Add are called.
type FixedClock struct {
	mu  sync.RWMutex
	now time.Time
}

// Now returns the time of the clock.
func (c *FixedClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.now
}

// Set the time of the clock.
func (c *FixedClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = now
}

// Add moves the clock forward by d.
func (c *FixedClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// ClockProvider describes a type which provides the current time.
type ClockProvider interface {
	Now() time.Time
}

var (
	_ ClockProvider = (*RealClock)(nil)
	_ ClockProvider = (*FixedClock)(nil)
)
