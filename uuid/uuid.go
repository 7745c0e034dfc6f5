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

// Package uuid implements RFC 9562 UUIDs (versions 0/null, 1, 3, 4, 5, 6,
// 7, 8, max, and the non-standard SQUUID): exact bit-layout construction
// and decomposition, comparison, parsing, and string forms.
//
// The in-memory representation — two 64-bit words (Hi, Lo) interpreted
// big-endian over the 16-byte wire form — is the same shape the upstream
// identifier library used for its own 96-bit k-ordered GID{Hi, Lo uint64}
// (types.go), widened here to the full 128 bits UUIDs require. Every
// version constructor and accessor is expressed as a composition of
// bits.Ldb/bits.Dpb, per spec §4.1, rather than as byte-slice surgery —
// the one place this module's style diverges from the byte-array UUID
// types in the retrieval pack (stdlib-uuid, pscheid92-uuid, agext-uuid,
// spassigl-uuid all represent a UUID as [16]byte and slice it directly).
package uuid

import (
	"cmp"

	"github.com/distefano/identity/bits"
)

// UUID is an immutable 128-bit identifier, held as two 64-bit words
// interpreted big-endian over the canonical 16-byte wire form.
type UUID struct {
	Hi, Lo uint64
}

// Null is the UUID with every bit set to 0.
var Null = UUID{Hi: 0, Lo: 0}

// Max is the UUID with every bit set to 1 (RFC 9562 §5.10).
var Max = UUID{Hi: ^uint64(0), Lo: ^uint64(0)}

// RFC 9562 Appendix C pre-defined namespace UUIDs.
var (
	NamespaceDNS  = UUID{Hi: 0x6ba7b8109dad11d1, Lo: 0x80b400c04fd430c8}
	NamespaceURL  = UUID{Hi: 0x6ba7b8119dad11d1, Lo: 0x80b400c04fd430c8}
	NamespaceOID  = UUID{Hi: 0x6ba7b8129dad11d1, Lo: 0x80b400c04fd430c8}
	NamespaceX500 = UUID{Hi: 0x6ba7b8149dad11d1, Lo: 0x80b400c04fd430c8}
)

var (
	verNib      = bits.Mask(4, 12)
	variantBits = bits.Mask(2, 62)
)

// Version returns the nibble at bits 48-51 of the wire form (bits 12-15
// of Hi).
func (u UUID) Version() uint8 {
	return uint8(bits.Ldb(verNib, u.Hi))
}

// Variant returns the top two bits of Lo, per RFC 9562 §4.1. Generated
// RFC 9562 UUIDs report variant 2 (binary "10").
func (u UUID) Variant() uint8 {
	return uint8(bits.Ldb(variantBits, u.Lo))
}

// NodeID returns the 48-bit node id field (v1/v6 only; meaningless for
// other versions).
func (u UUID) NodeID() uint64 {
	return bits.Ldb(bits.Mask(48, 0), u.Lo)
}

// ClockSequence returns the 14-bit clock-sequence field (v1/v6 only).
func (u UUID) ClockSequence() uint16 {
	return uint16(bits.Ldb(bits.Mask(14, 48), u.Lo))
}

// Timestamp returns the version's embedded timestamp and true, or
// (0, false) if the version carries no timestamp.
//
//   - v1, v6: 60-bit Gregorian 100-ns ticks since 1582-10-15.
//   - v7: 48-bit Unix millisecond timestamp.
func (u UUID) Timestamp() (uint64, bool) {
	switch u.Version() {
	case 1:
		timeLow := bits.Ldb(bits.Mask(32, 32), u.Hi)
		timeMid := bits.Ldb(bits.Mask(16, 16), u.Hi)
		timeHigh := bits.Ldb(bits.Mask(12, 0), u.Hi)
		return timeHigh<<48 | timeMid<<32 | timeLow, true
	case 6:
		timeHigh := bits.Ldb(bits.Mask(32, 32), u.Hi)
		timeMid := bits.Ldb(bits.Mask(16, 16), u.Hi)
		timeLow := bits.Ldb(bits.Mask(12, 0), u.Hi)
		return timeHigh<<28 | timeMid<<12 | timeLow, true
	case 7:
		return bits.Ldb(bits.Mask(48, 16), u.Hi), true
	default:
		return 0, false
	}
}

// gregorianToUnixMS converts a 60-bit Gregorian 100-ns timestamp to a
// Unix millisecond timestamp.
func gregorianToUnixMS(ts uint64) int64 {
	return int64(ts/10_000) - 12_219_292_800_000
}

// UnixTimeMS returns the version's timestamp converted to Unix
// milliseconds and true, or (0, false) if the version carries no
// timestamp.
func (u UUID) UnixTimeMS() (int64, bool) {
	ts, ok := u.Timestamp()
	if !ok {
		return 0, false
	}
	if u.Version() == 7 {
		return int64(ts), true
	}
	return gregorianToUnixMS(ts), true
}

// IsNull reports whether u is the Null UUID.
func (u UUID) IsNull() bool { return u == Null }

// Compare returns -1, 0, or 1 as u is unsigned-less-than, equal to, or
// greater than v, comparing Hi first and breaking ties on Lo — the same
// order as an unsigned lexicographic compare of the 16-byte wire form.
func Compare(u, v UUID) int {
	if c := cmp.Compare(u.Hi, v.Hi); c != 0 {
		return c
	}
	return cmp.Compare(u.Lo, v.Lo)
}
