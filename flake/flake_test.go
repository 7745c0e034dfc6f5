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

package flake_test

import (
	"sort"
	"testing"

	"github.com/distefano/identity/flake"
	"github.com/fogfish/it/v2"
)

func TestStringRoundTrip(t *testing.T) {
	f := flake.New()
	decoded, ok := flake.FromString(f.String())

	it.Then(t).Should(
		it.True(ok),
		it.Equal(decoded, f),
	)
}

func TestBytesRoundTrip(t *testing.T) {
	f := flake.New()
	decoded, ok := flake.FromBytes(f.Bytes())

	it.Then(t).Should(
		it.True(ok),
		it.Equal(decoded, f),
	)
}

func TestTripleRoundTrip(t *testing.T) {
	f := flake.New()
	rebuilt := flake.Flake{TimestampNS: f.TimestampNS, RandHi: f.RandHi, RandLo: f.RandLo}

	it.Then(t).Should(
		it.Equal(rebuilt, f),
	)
}

func TestFromStringRejectsMalformedInput(t *testing.T) {
	_, ok1 := flake.FromString("too-short")
	_, ok2 := flake.FromString("................................") // 32 chars, invalid alphabet char '.'

	it.Then(t).Should(
		it.Equal(ok1, false),
		it.Equal(ok2, false),
	)
}

func TestOrderHomomorphism(t *testing.T) {
	a := flake.Flake{TimestampNS: 1, RandHi: 5, RandLo: 9}
	b := flake.Flake{TimestampNS: 1, RandHi: 5, RandLo: 10}

	cmpFlake := flake.Compare(a, b)
	cmpString := 0
	if a.String() < b.String() {
		cmpString = -1
	} else if a.String() > b.String() {
		cmpString = 1
	}

	cmpBytes := 0
	ab, bb := a.Bytes(), b.Bytes()
	for i := range ab {
		if ab[i] != bb[i] {
			if ab[i] < bb[i] {
				cmpBytes = -1
			} else {
				cmpBytes = 1
			}
			break
		}
	}

	cmpHex := 0
	if a.Hex() < b.Hex() {
		cmpHex = -1
	} else if a.Hex() > b.Hex() {
		cmpHex = 1
	}

	it.Then(t).Should(
		it.True(cmpFlake < 0),
		it.Equal(cmpString, cmpFlake),
		it.Equal(cmpBytes, cmpFlake),
		it.Equal(cmpHex, cmpFlake),
	)
}

func TestMonotonicSingleThread(t *testing.T) {
	prev := flake.New()
	for i := 0; i < 1000; i++ {
		next := flake.New()
		it.Then(t).Should(
			it.True(flake.Compare(prev, next) < 0),
		)
		prev = next
	}
}

func TestBoundaryVectors(t *testing.T) {
	zero := flake.Flake{TimestampNS: 0, RandHi: 0, RandLo: 0}
	max := flake.Flake{TimestampNS: ^uint64(0), RandHi: ^uint64(0), RandLo: ^uint64(0)}

	it.Then(t).Should(
		it.Equal(zero.String(), "--------------------------------"),
		it.Equal(max.String(), "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"),
	)
}

func TestOrderPreservationOverManyFlakes(t *testing.T) {
	flakes := make([]flake.Flake, 1000)
	for i := range flakes {
		flakes[i] = flake.New()
	}

	it.Then(t).Should(
		it.True(sort.SliceIsSorted(flakes, func(i, j int) bool {
			return flake.Compare(flakes[i], flakes[j]) < 0
		})),
	)

	strs := make([]string, len(flakes))
	for i, f := range flakes {
		strs[i] = f.String()
	}

	it.Then(t).Should(
		it.True(sort.StringsAreSorted(strs)),
	)
}

func TestJSONRoundTrip(t *testing.T) {
	f := flake.New()
	b, err := f.MarshalJSON()
	it.Then(t).Should(it.True(err == nil))

	var decoded flake.Flake
	err = decoded.UnmarshalJSON(b)

	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(decoded, f),
	)
}
