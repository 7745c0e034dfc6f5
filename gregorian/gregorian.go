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

// Package gregorian implements the lock-free, strictly monotonic 60-bit
// Gregorian clock that UUID v1 and v6 are timestamped from: 100-nanosecond
// units since 1582-10-15 00:00:00 UTC.
//
// The CAS-loop shape is grounded on the sub-millisecond sequencing atomic
// compare-and-swap loop the stdlib-uuid example uses for its v7 state
// (getV7State: atomic.Uint64, load/compute-next/CompareAndSwap, spin via
// runtime.Gosched on contention) — generalized here to the spec's
// (counter ≤ 9999, millis) pair and Gregorian epoch arithmetic, which
// the upstream identifier library's own ticker/unique pair never modeled
// (it used an uncoordinated pair of generator functions, not a single
// atomically-updated cell).
package gregorian

import (
	"runtime"
	"sync/atomic"
	"time"
)

const (
	// EpochOffset100NS is the number of 100-ns intervals between the
	// Gregorian epoch (1582-10-15) and 1900-01-01; together with
	// UnixToUTOffsetMS it spans the Gregorian-to-Unix epoch distance.
	EpochOffset100NS = 100_103_040_000_000_000
	// UnixToUTOffsetMS is the number of milliseconds between 1900-01-01
	// and the Unix epoch, folded into the result per spec §4.4.
	UnixToUTOffsetMS = 2_208_988_800_000

	maxCounter  = 9999
	counterBits = 14 // enough to hold 0..9999
)

// Clock is a lock-free monotonic Gregorian-epoch 100-ns clock. The zero
// value is usable; production code should use the package-level Now.
type Clock struct {
	cell  atomic.Uint64
	ticker func() uint64
}

// Option configures a Clock. Exposed for tests that need a deterministic
// wall-clock source; production callers use the package-level Now.
type Option func(*Clock)

// WithTicker overrides the millisecond source (default: wall-clock UTC).
func WithTicker(f func() uint64) Option {
	return func(c *Clock) { c.ticker = f }
}

// New returns a Clock, defaulting to the system wall clock.
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

// Next returns the next strictly increasing 60-bit Gregorian 100-ns
// timestamp, spinning while the wall clock is behind its last observed
// value or while the per-millisecond counter is exhausted.
func (c *Clock) Next() uint64 {
	ticker := c.ticker
	if ticker == nil {
		ticker = wallMillis
	}
	for {
		now := ticker()
		packed := c.cell.Load()
		curMillis := packed >> counterBits
		curCounter := packed & (1<<counterBits - 1)

		var nextMillis, nextCounter uint64
		switch {
		case curMillis < now:
			nextMillis, nextCounter = now, 0
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
			return nextCounter + EpochOffset100NS + (UnixToUTOffsetMS+nextMillis)*10_000
		}
	}
}

var def = New()

// Now returns the next value from the process-wide default clock.
func Now() uint64 { return def.Next() }
