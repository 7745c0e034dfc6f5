/*

  Copyright 2026 Distefano Identity Authors, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

// Package unixclock implements the lock-free (millisecond, 12-bit
// counter) pair used by UUID v7. It shares the CAS-loop shape of
// gregorian.Clock (itself grounded on stdlib-uuid's getV7State atomic
// loop) but reseeds its counter with a random 8-bit value on every new
// millisecond, per spec §4.5, instead of resetting to zero — this is the
// one divergence from a plain Lamport-style counter, and it is what gives
// v7 its per-millisecond cross-process salt.
package unixclock

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/distefano/identity/entropy"
)

const (
	maxCounter  = 0xFFF
	counterBits = 12
)

// Clock is a lock-free monotonic (millis, counter) pair.
type Clock struct {
	cell   atomic.Uint64
	ticker func() uint64
}

// Option configures a Clock for tests.
type Option func(*Clock)

// WithTicker overrides the millisecond source.
func WithTicker(f func() uint64) Option {
	return func(c *Clock) { c.ticker = f }
}

// New returns a Clock defaulting to the system wall clock.
func New(opts ...Option) *Clock {
	c := &Clock{ticker: wallMillis}
	for _, o := range opts {
		o(c)
	}
	return c
}

func wallMillis() uint64 {
	return uint64(time.Now().UnixMilli())
}

// Next returns the next (millis, counter) pair in the clock's total
// order. On a new millisecond the counter is reseeded with a random
// 8-bit value rather than zero.
func (c *Clock) Next() (millis uint64, counter uint16) {
	for {
		now := c.ticker()
		packed := c.cell.Load()
		curMillis := packed >> counterBits
		curCounter := packed & (1<<counterBits - 1)

		var nextMillis, nextCounter uint64
		switch {
		case curMillis < now:
			nextMillis, nextCounter = now, uint64(entropy.Uint8())
		case curMillis > now:
			runtime.Gosched()
			continue
		default:
			nextCounter = curCounter + 1
			if nextCounter > maxCounter {
				runtime.Gosched()
				continue
			}
			nextMillis = curMillis
		}

		next := nextMillis<<counterBits | nextCounter
		if c.cell.CompareAndSwap(packed, next) {
			return nextMillis, uint16(nextCounter)
		}
	}
}

var def = New()

// Now returns the next (millis, counter) pair from the process-wide
// default clock.
func Now() (millis uint64, counter uint16) { return def.Next() }
