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

package bits_test

import (
	"testing"

	"github.com/distefano/identity/bits"
	"github.com/fogfish/it/v2"
)

func TestMask(t *testing.T) {
	it.Then(t).Should(
		it.Equal(bits.Mask(64, 0), ^uint64(0)),
		it.Equal(bits.Mask(0, 5), uint64(0)),
		it.Equal(bits.Mask(4, 12), uint64(0xF000)),
		it.Equal(bits.Mask(2, 62), uint64(0xC000000000000000)),
	)
}

func TestLdbDpb(t *testing.T) {
	m := bits.Mask(4, 12)
	n := bits.Dpb(m, 0x1234_0000_0000_0000, 0xA)

	it.Then(t).Should(
		it.Equal(n, uint64(0x1234_0000_0000_A000)),
		it.Equal(bits.Ldb(m, n), uint64(0xA)),
	)
}

func TestDpbPreservesOtherBits(t *testing.T) {
	m := bits.Mask(2, 62)
	n := bits.Dpb(m, ^uint64(0), 0b10)

	it.Then(t).Should(
		it.Equal(n, uint64(0xBFFFFFFFFFFFFFFF)),
	)
}

func TestBigEndianRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	bits.PutUint64BE(buf, 0, 0x0123456789ABCDEF)

	it.Then(t).Should(
		it.Equal(bits.Uint64BE(buf, 0), uint64(0x0123456789ABCDEF)),
		it.Equal(bits.HexBytes(buf), "0123456789abcdef"),
	)
}

func TestHex64(t *testing.T) {
	it.Then(t).Should(
		it.Equal(bits.Hex64(0), "0000000000000000"),
		it.Equal(bits.Hex64(^uint64(0)), "ffffffffffffffff"),
	)
}
