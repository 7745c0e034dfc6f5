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

// Package nanoclock implements the wall-anchored nanosecond-precision
// time source that Flake timestamps are drawn from: a wall-clock anchor
// sampled exactly once per process, advanced thereafter by the runtime's
// monotonic clock reading.
//
// This is the same "anchor once, advance via a monotonic delta" idiom
// the upstream identifier library used for its pluggable ticker
// (clock.go's Config/ticker pair samples time.Now().UnixNano() fresh on
// every call); here the anchor is sampled once and every subsequent call
// adds the monotonic delta, which is what spec §4.6 requires and what
// lets Flake remain strictly monotonic per goroutine without re-reading
// wall time (and therefore without ever observing a backwards step).
//
// Go's time.Now() already carries a monotonic reading alongside the wall
// clock reading since Go 1.9; time.Since on the anchor yields that
// monotonic delta without a separate syscall or platform-specific API.
package nanoclock

import (
	"sync"
	"time"
)

var (
	once       sync.Once
	wallStart  int64
	monoAnchor time.Time
)

func anchor() {
	monoAnchor = time.Now()
	wallStart = monoAnchor.UnixNano()
}

// Now returns the current wall-anchored nanosecond timestamp. It is not
// strictly monotonic across process restarts, but within a single
// goroutine it is strictly monotonic because time.Since is.
func Now() int64 {
	once.Do(anchor)
	return wallStart + int64(time.Since(monoAnchor))
}
