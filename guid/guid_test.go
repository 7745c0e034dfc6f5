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

package guid_test

import (
	"net/url"
	"testing"

	"github.com/distefano/identity/guid"
	"github.com/fogfish/it/v2"
)

func TestNameBytesString(t *testing.T) {
	b, err := guid.NameBytes("example.com")

	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(string(b), "example.com"),
	)
}

func TestNameBytesUUID(t *testing.T) {
	id := guid.NewV4()
	b, err := guid.NameBytes(id)

	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(len(b), 16),
	)
}

func TestNameBytesURL(t *testing.T) {
	u, _ := url.Parse("https://example.com/path")
	b, err := guid.NameBytes(u)

	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(string(b), "https://example.com/path"),
	)
}

func TestNameBytesRawBytes(t *testing.T) {
	b, err := guid.NameBytes([]byte{1, 2, 3})

	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(b, []byte{1, 2, 3}),
	)
}

func TestNameBytesRejectsUnsupportedType(t *testing.T) {
	_, err := guid.NameBytes(42)

	it.Then(t).Should(
		it.True(err != nil),
	)
}

func TestNameBytesRejectsNilURL(t *testing.T) {
	var u *url.URL
	_, err := guid.NameBytes(u)

	it.Then(t).Should(
		it.True(err != nil),
	)
}

func TestV3AndV5ViaFacade(t *testing.T) {
	a, err := guid.NewV3(guid.NamespaceDNS, "example.com")
	it.Then(t).Should(it.True(err == nil))

	b, err := guid.NewV3(guid.NamespaceDNS, "example.com")
	it.Then(t).Should(it.True(err == nil))

	it.Then(t).Should(
		it.Equal(a, b),
		it.Equal(a.Version(), uint8(3)),
	)

	c, err := guid.NewV5(guid.NamespaceDNS, "example.com")
	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(c.Version(), uint8(5)),
	)
}

func TestFlakeViaFacade(t *testing.T) {
	f := guid.NewFlake()
	decoded, ok := guid.FlakeFromString(f.String())

	it.Then(t).Should(
		it.True(ok),
		it.Equal(decoded, f),
	)
}

func TestCompareFlakeViaFacade(t *testing.T) {
	a := guid.NewFlake()
	b := guid.NewFlake()

	it.Then(t).Should(
		it.True(guid.CompareFlake(a, b) < 0),
	)
}
