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

package gregorian_test

import (
	"sync"
	"testing"

	"github.com/distefano/identity/gregorian"
	"github.com/fogfish/it/v2"
)

func TestMonotonicSingleThread(t *testing.T) {
	c := gregorian.New()

	prev := c.Next()
	for i := 0; i < 1000; i++ {
		next := c.Next()
		it.Then(t).Should(
			it.True(prev < next),
		)
		prev = next
	}
}

func TestSameMillisecondIncrementsCounter(t *testing.T) {
	fixed := uint64(1_700_000_000_000)
	c := gregorian.New(gregorian.WithTicker(func() uint64 { return fixed }))

	a := c.Next()
	b := c.Next()

	it.Then(t).Should(
		it.True(a < b),
		it.Equal(b-a, uint64(1)),
	)
}

func TestConcurrentNoDuplicates(t *testing.T) {
	c := gregorian.New()

	const goroutines = 8
	const perGoroutine = 500

	results := make(chan uint64, goroutines*perGoroutine)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				results <- c.Next()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[uint64]struct{}, goroutines*perGoroutine)
	for v := range results {
		seen[v] = struct{}{}
	}

	it.Then(t).Should(
		it.Equal(len(seen), goroutines*perGoroutine),
	)
}

func TestEpochArithmetic(t *testing.T) {
	fixed := uint64(0)
	c := gregorian.New(gregorian.WithTicker(func() uint64 { return fixed }))

	// A fresh clock's cell already holds millisecond 0, so the first call
	// at millisecond 0 takes the same-millisecond branch: counter 1.
	v := c.Next()
	it.Then(t).Should(
		it.Equal(v, uint64(gregorian.EpochOffset100NS+gregorian.UnixToUTOffsetMS*10_000+1)),
	)
}
