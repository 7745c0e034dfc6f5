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

package uuid

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
	"time"

	"github.com/distefano/identity/bits"
	"github.com/distefano/identity/entropy"
	"github.com/distefano/identity/gregorian"
	"github.com/distefano/identity/node"
	"github.com/distefano/identity/unixclock"
)

// NewV0 returns the Null UUID (version 0).
func NewV0() UUID { return Null }

// NewMax returns the Max UUID (version 15, all bits set).
func NewMax() UUID { return Max }

// NewV1 generates a time-based UUID from the monotonic Gregorian clock
// and the process-wide node identity, per RFC 9562 §5.1.
func NewV1() UUID {
	ts := gregorian.Now()
	timeLow := bits.Ldb(bits.Mask(32, 0), ts)
	timeMid := bits.Ldb(bits.Mask(16, 32), ts)
	timeHigh12 := bits.Ldb(bits.Mask(12, 48), ts)

	hi := bits.Dpb(verNib, timeLow<<32|timeMid<<16|timeHigh12, 1)
	return UUID{Hi: hi, Lo: node.Default().V1LSB}
}

// NewV6 generates a field-reordered, time-ordered time-based UUID (a
// drop-in replacement for v1 with improved database locality), per
// RFC 9562 §5.6.
func NewV6() UUID {
	ts := gregorian.Now()
	timeHigh32 := bits.Ldb(bits.Mask(32, 28), ts)
	timeMid16 := bits.Ldb(bits.Mask(16, 12), ts)
	timeLow12 := bits.Ldb(bits.Mask(12, 0), ts)

	hi := timeHigh32<<32 | timeMid16<<16 | bits.Dpb(verNib, timeLow12, 6)
	return UUID{Hi: hi, Lo: node.Default().V6LSB}
}

// NewV7 generates a Unix-timestamp UUID using the monotonic (ms,
// counter) pair and cryptographically secure random bits, per
// RFC 9562 §5.7.
func NewV7() UUID {
	ms, counter := unixclock.Now()
	hi := ms<<16 | bits.Dpb(verNib, uint64(counter), 7)
	lo := bits.Dpb(variantBits, entropy.Uint64(), 0b10)
	return UUID{Hi: hi, Lo: lo}
}

// NewV4 generates a random UUID from a cryptographically secure source,
// per RFC 9562 §5.4.
func NewV4() UUID {
	return newV4(entropy.Uint64(), entropy.Uint64())
}

// NewV4From builds a random-form UUID from caller-supplied words,
// overwriting only the version and variant bits. Useful for tests and
// for re-deriving a v4 identifier from an external random source.
func NewV4From(hi, lo uint64) UUID {
	return newV4(hi, lo)
}

func newV4(hi, lo uint64) UUID {
	hi = bits.Dpb(verNib, hi, 4)
	lo = bits.Dpb(variantBits, lo, 0b10)
	return UUID{Hi: hi, Lo: lo}
}

// NewV8 builds a custom/experimental UUID from caller-supplied words,
// overwriting only the version (8) and variant bits, per RFC 9562 §5.8.
func NewV8(hi, lo uint64) UUID {
	hi = bits.Dpb(verNib, hi, 8)
	lo = bits.Dpb(variantBits, lo, 0b10)
	return UUID{Hi: hi, Lo: lo}
}

// NewV3 generates a deterministic, MD5-based name UUID within namespace
// ns, per RFC 9562 §5.3. The caller is responsible for reducing the name
// to bytes (see the guid façade's NameBytes coercion).
func NewV3(ns UUID, name []byte) UUID {
	return newHashUUID(md5.New(), ns, name, 3)
}

// NewV5 generates a deterministic, SHA-1-based name UUID within
// namespace ns, per RFC 9562 §5.5. Preferred over NewV3 for new systems.
func NewV5(ns UUID, name []byte) UUID {
	return newHashUUID(sha1.New(), ns, name, 5)
}

func newHashUUID(h hash.Hash, ns UUID, name []byte, version uint8) UUID {
	var nsBytes [16]byte
	bits.PutUint64BE(nsBytes[:], 0, ns.Hi)
	bits.PutUint64BE(nsBytes[:], 8, ns.Lo)

	h.Write(nsBytes[:])
	h.Write(name)
	sum := h.Sum(nil)

	hi := bits.Uint64BE(sum, 0)
	lo := bits.Uint64BE(sum, 8)

	hi = bits.Dpb(verNib, hi, uint64(version))
	lo = bits.Dpb(variantBits, lo, 0b10)
	return UUID{Hi: hi, Lo: lo}
}

// NewSQUUID generates a v4 UUID whose top 32 bits of Hi are overlaid
// with the current POSIX time in seconds, leaving the lower 32 bits of
// Hi and all of Lo — and therefore the version and variant bits —
// untouched, per spec §4.7 / §9. This is a non-standard extension, not
// part of RFC 9562.
func NewSQUUID() UUID {
	u := NewV4()
	posixSeconds := uint64(time.Now().Unix())
	u.Hi = bits.Dpb(bits.Mask(32, 32), u.Hi, posixSeconds)
	return u
}
