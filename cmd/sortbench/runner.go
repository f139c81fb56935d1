// Copyright 2026 go-sortkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sortkit/go-sortkit/sortkit"
)

type result struct {
	elapsed time.Duration
	err     error
}

// shuffledInput builds a shuffled permutation of 0..size-1. All
// values are non-negative so the same input works for radix sort.
func shuffledInput(size int, seed int64) []int {
	return rand.New(rand.NewSource(seed)).Perm(size)
}

// run times the algorithm over the given input runs times and keeps
// the best time. Each run gets its own copy of the input, and every
// output is verified before its time counts.
func run(a sortkit.Algorithm, input []int, runs int) result {
	s := sortkit.New(a)
	best := time.Duration(-1)
	for r := 0; r < runs; r++ {
		in := make([]int, len(input))
		copy(in, input)

		start := time.Now()
		out, err := s.Sort(in)
		elapsed := time.Since(start)

		if err != nil {
			return result{err: err}
		}
		if err := verify(out, len(input)); err != nil {
			return result{err: err}
		}
		if best < 0 || elapsed < best {
			best = elapsed
		}
	}
	return result{elapsed: best}
}

// verify checks that out is a non-decreasing sequence of the expected
// length. A full permutation check would double the benchmark's
// memory traffic; length plus ordering catches a broken sorter.
func verify(out []int, wantLen int) error {
	if len(out) != wantLen {
		return errors.Errorf("result has %d elements, want %d", len(out), wantLen)
	}
	for i := 1; i < len(out); i++ {
		if out[i] < out[i-1] {
			return errors.Errorf("result not sorted at index %d: %d > %d", i, out[i-1], out[i])
		}
	}
	return nil
}
