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

import "github.com/distefano/identity/flake"

// Flake is the 192-bit time-ordered identifier type.
type Flake = flake.Flake

// NewFlake constructs a Flake from the nanosecond clock and fresh
// entropy.
func NewFlake() Flake { return flake.New() }

// FlakeFromString decodes the 32-character sortable form produced by a
// Flake's String method. It never panics: malformed input is reported
// as (Flake{}, false).
func FlakeFromString(s string) (Flake, bool) { return flake.FromString(s) }

// FlakeFromBytes decodes a Flake from its 24-byte wire form.
func FlakeFromBytes(b []byte) (Flake, bool) { return flake.FromBytes(b) }

// CompareFlake orders two Flakes lexicographically over (timestamp,
// rand_hi, rand_lo).
func CompareFlake(a, b Flake) int { return flake.Compare(a, b) }
