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

// Package flake implements the 192-bit time-ordered identifier: a
// nanosecond-precision timestamp paired with 128 bits of cryptographically
// secure entropy, plus a custom order-preserving base-64 string form.
//
// Grounded on the teacher's GID/LUID pair (guid.go, luid.go): a fixed-width
// multi-word value constructed from a clock plus random bits, encoded
// through a strictly-ascending-ASCII alphabet so the string form inherits
// the byte order of the underlying value. The teacher packs node identity
// and a counter into its low word; this module instead packs 128 bits of
// fresh entropy, per this library's construction rule.
package flake

import (
	"cmp"

	"github.com/distefano/identity/bits"
	"github.com/distefano/identity/entropy"
	"github.com/distefano/identity/nanoclock"
)

// Flake is an immutable 192-bit time-ordered identifier: three 64-bit
// words (timestamp_ns, rand_hi, rand_lo), big-endian in that order.
type Flake struct {
	TimestampNS uint64
	RandHi      uint64
	RandLo      uint64
}

// New constructs a Flake from the nanosecond clock and fresh entropy.
// Within a single goroutine this is strictly monotonic because the
// nanoclock is strictly monotonic per caller; across goroutines ordering
// is best-effort via timestamp, with simultaneous same-nanosecond Flakes
// distinguished by their 128 bits of entropy.
func New() Flake {
	return Flake{
		TimestampNS: uint64(nanoclock.Now()),
		RandHi:      entropy.Uint64(),
		RandLo:      entropy.Uint64(),
	}
}

// Compare orders two Flakes lexicographically over (timestamp, rand_hi,
// rand_lo), the same order as their byte and string forms.
func Compare(a, b Flake) int {
	if c := cmp.Compare(a.TimestampNS, b.TimestampNS); c != 0 {
		return c
	}
	if c := cmp.Compare(a.RandHi, b.RandHi); c != 0 {
		return c
	}
	return cmp.Compare(a.RandLo, b.RandLo)
}

// Bytes returns the 24-byte big-endian wire form: 8-byte timestamp,
// 8-byte rand-hi, 8-byte rand-lo.
func (f Flake) Bytes() []byte {
	buf := make([]byte, 24)
	bits.PutUint64BE(buf, 0, f.TimestampNS)
	bits.PutUint64BE(buf, 8, f.RandHi)
	bits.PutUint64BE(buf, 16, f.RandLo)
	return buf
}

// FromBytes decodes a Flake from its 24-byte big-endian wire form.
func FromBytes(b []byte) (Flake, bool) {
	if len(b) != 24 {
		return Flake{}, false
	}
	return Flake{
		TimestampNS: bits.Uint64BE(b, 0),
		RandHi:      bits.Uint64BE(b, 8),
		RandLo:      bits.Uint64BE(b, 16),
	}, true
}

// Hex returns the 48-character lowercase hex form: the three words
// concatenated, each as 16 hex characters.
func (f Flake) Hex() string {
	return bits.HexBytes(f.Bytes())
}
