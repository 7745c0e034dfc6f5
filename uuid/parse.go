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
	"strings"

	"github.com/distefano/identity/bits"
)

const urnPrefix = "urn:uuid:"

// Parse decodes the canonical 36-character hyphenated form
// (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx, case-insensitive) or the
// urn:uuid: form. Any other input is rejected with a *ParseError, per
// spec §4.7 ("Parsing").
func Parse(s string) (UUID, error) {
	body := s
	if len(s) == len(urnPrefix)+36 && strings.EqualFold(s[:len(urnPrefix)], urnPrefix) {
		body = s[len(urnPrefix):]
	}

	if len(body) != 36 {
		return UUID{}, &ParseError{Input: s, Msg: "expected 36-character hyphenated form"}
	}
	if body[8] != '-' || body[13] != '-' || body[18] != '-' || body[23] != '-' {
		return UUID{}, &ParseError{Input: s, Msg: "expected hyphens at positions 8, 13, 18, 23"}
	}

	var buf [16]byte
	src := 0
	for i := 0; i < 16; i++ {
		if src == 8 || src == 13 || src == 18 || src == 23 {
			src++
		}
		hi, ok1 := fromHexChar(body[src])
		lo, ok2 := fromHexChar(body[src+1])
		if !ok1 || !ok2 {
			return UUID{}, &ParseError{Input: s, Msg: "invalid hex character"}
		}
		buf[i] = hi<<4 | lo
		src += 2
	}

	return FromBytes(buf[:])
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// FromBytes decodes a UUID from its 16-byte big-endian wire form.
func FromBytes(b []byte) (UUID, error) {
	if len(b) != 16 {
		return UUID{}, &LengthError{Got: len(b), Want: 16}
	}
	return UUID{
		Hi: bits.Uint64BE(b, 0),
		Lo: bits.Uint64BE(b, 8),
	}, nil
}
