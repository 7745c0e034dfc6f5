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

// Package node derives the process-wide node identity used by UUID v1/v6:
// a 48-bit node id with the multicast bit forced so it can never collide
// with a real IEEE 802 MAC address, and a randomly seeded 16-bit clock
// sequence.
//
// The derivation strategy — hash a fingerprint of the host rather than
// read a real MAC address — follows the upstream identifier library's own
// ConfNodeFromEnv/ConfNodeRand node-identity options (clock.go), widened
// from a 32-bit location fraction to the spec's 48-bit node id and from a
// single env var to the full host fingerprint (hostname, interface
// addresses, runtime properties) that RFC 9562 §6.10 recommends as an
// alternative to a real MAC address.
package node

import (
	"crypto/md5"
	"net"
	"os"
	"runtime"
	"sync"

	"github.com/distefano/identity/bits"
	"github.com/distefano/identity/entropy"
)

// Identity is the process-wide node identity: a 48-bit node id and a
// 16-bit clock-sequence seed, plus the precomputed v1/v6 low 64-bit words
// (everything UUID v1/v6 needs beyond the timestamp).
type Identity struct {
	NodeID        uint64 // 48-bit, multicast bit set
	ClockSequence uint16 // 14-bit effective value, seeded non-zero
	V1LSB         uint64 // low word for v1: variant|clk_seq|real node id
	V6LSB         uint64 // low word for v6: variant|clk_seq|random node id
}

var (
	once     sync.Once
	identity Identity
)

// Default returns the lazily initialized, process-wide node identity.
func Default() Identity {
	once.Do(func() {
		identity = derive(fingerprint(), entropy.Uint64())
	})
	return identity
}

// derive builds an Identity from a 48-bit candidate node id (derive
// forces its multicast bit) and a raw 64-bit random source for the clock
// sequence and the v6 substitute node id.
func derive(nodeID48 uint64, rnd uint64) Identity {
	nodeID := nodeID48 | 0x01<<40 // multicast bit: LSB of first octet (bit 40 of a 48-bit value)

	seq := uint16(rnd>>16) & 0x3FFF
	if seq == 0 {
		seq = 1
	}

	altNode := (rnd & 0xFFFFFFFFFFFF) | 0x01<<40

	return Identity{
		NodeID:        nodeID,
		ClockSequence: seq,
		V1LSB:         lsb(nodeID, seq),
		V6LSB:         lsb(altNode, seq),
	}
}

// lsb packs node, clock sequence, and the RFC 9562 variant into the low
// 64-bit word shared by UUID v1 and v6:
//
//	[ variant(2) | clk_seq_hi(6) ][ clk_seq_lo(8) ][ node(48) ]
func lsb(node48 uint64, seq uint16) uint64 {
	clkLow := uint64(seq) & 0xFF
	clkHi6 := (uint64(seq) >> 8) & 0x3F
	clkHiWithVariant := bits.Dpb(bits.Mask(2, 6), clkHi6, 0b10)

	n := bits.Dpb(bits.Mask(8, 48), node48, clkLow)
	n = bits.Dpb(bits.Mask(8, 56), n, clkHiWithVariant)
	return n
}

// fingerprint hashes a stable description of the host (name, all
// interface addresses, and a few runtime properties) down to a 48-bit
// node id, per spec §4.3. It never fails: any missing source degrades to
// an empty contribution rather than an error, since node-id uniqueness
// is best-effort by design (RFC 9562 §6.10 allows a random substitute).
func fingerprint() uint64 {
	h := md5.New()

	if name, err := os.Hostname(); err == nil {
		h.Write([]byte(name))
	}

	if addrs, err := net.InterfaceAddrs(); err == nil {
		for _, a := range addrs {
			h.Write([]byte(a.String()))
		}
	}

	h.Write([]byte(runtime.GOOS))
	h.Write([]byte(runtime.GOARCH))
	h.Write([]byte(runtime.Version()))

	sum := h.Sum(nil)
	return bits.Uint64BE(append(sum[:6], 0, 0), 0) >> 16
}
