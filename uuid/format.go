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
	"encoding/hex"

	"github.com/distefano/identity/bits"
)

// Bytes returns the 16-byte big-endian wire form.
func (u UUID) Bytes() []byte {
	buf := make([]byte, 16)
	bits.PutUint64BE(buf, 0, u.Hi)
	bits.PutUint64BE(buf, 8, u.Lo)
	return buf
}

// String returns the canonical 36-character lowercase hyphenated form:
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func (u UUID) String() string {
	b := u.Bytes()
	var buf [36]byte
	hex.Encode(buf[0:8], b[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], b[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], b[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], b[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:36], b[10:16])
	return string(buf[:])
}

// Hex returns the 32-character lowercase hex form with no hyphens.
func (u UUID) Hex() string {
	return bits.HexBytes(u.Bytes())
}

// URN returns the "urn:uuid:" + canonical string form.
func (u UUID) URN() string {
	return urnPrefix + u.String()
}
