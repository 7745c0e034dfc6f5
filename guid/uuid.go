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

package guid

import "github.com/distefano/identity/uuid"

// UUID is the 128-bit RFC 9562 identifier type.
type UUID = uuid.UUID

// Null and Max are the nil (all-zero) and max (all-one) UUIDs.
var (
	Null = uuid.Null
	Max  = uuid.Max
)

// Well-known namespaces for name-based UUIDs, per RFC 9562 Appendix A.
var (
	NamespaceDNS  = uuid.NamespaceDNS
	NamespaceURL  = uuid.NamespaceURL
	NamespaceOID  = uuid.NamespaceOID
	NamespaceX500 = uuid.NamespaceX500
)

// NewV0 returns the Null UUID (version 0).
func NewV0() UUID { return uuid.NewV0() }

// NewV1 generates a time-based UUID from the process-wide monotonic
// Gregorian clock and node identity.
func NewV1() UUID { return uuid.NewV1() }

// NewV3 generates a deterministic MD5-based name UUID within namespace
// ns. name is coerced to bytes via NameBytes; see its doc for the
// supported argument shapes.
func NewV3(ns UUID, name any) (UUID, error) {
	b, err := NameBytes(name)
	if err != nil {
		return UUID{}, err
	}
	return uuid.NewV3(ns, b), nil
}

// NewV4 generates a random UUID from a cryptographically secure source.
func NewV4() UUID { return uuid.NewV4() }

// NewV5 generates a deterministic SHA-1-based name UUID within
// namespace ns. name is coerced to bytes via NameBytes.
func NewV5(ns UUID, name any) (UUID, error) {
	b, err := NameBytes(name)
	if err != nil {
		return UUID{}, err
	}
	return uuid.NewV5(ns, b), nil
}

// NewV6 generates a field-reordered, time-ordered time-based UUID.
func NewV6() UUID { return uuid.NewV6() }

// NewV7 generates a Unix-timestamp UUID from the monotonic (ms, counter)
// pair plus cryptographically secure random bits.
func NewV7() UUID { return uuid.NewV7() }

// NewV8 builds a custom/experimental UUID from caller-supplied words.
func NewV8(hi, lo uint64) UUID { return uuid.NewV8(hi, lo) }

// NewMax returns the Max UUID (version 15, all bits set).
func NewMax() UUID { return uuid.NewMax() }

// NewSQUUID generates a sequential, time-overlaid v4 UUID.
func NewSQUUID() UUID { return uuid.NewSQUUID() }

// Parse decodes a canonical or urn:uuid: UUID string.
func Parse(s string) (UUID, error) { return uuid.Parse(s) }

// FromBytes decodes a UUID from its 16-byte wire form.
func FromBytes(b []byte) (UUID, error) { return uuid.FromBytes(b) }

// Compare orders two UUIDs by their 128-bit value.
func Compare(a, b UUID) int { return uuid.Compare(a, b) }
