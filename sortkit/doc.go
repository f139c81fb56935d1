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

// Package sortkit provides a small collection of classical in-memory
// sorting algorithms over integer slices, behind a single Sorter
// capability.
//
// # Algorithms
//
// Eight independent implementations are available, selected by the
// Algorithm identifier:
//
//   - Bubble     adjacent-swap passes over a shrinking suffix, stable
//   - Selection  minimum scan of the unsorted suffix
//   - Insertion  leftward shifts through the sorted prefix, stable
//   - Shell      gapped insertion with halving gap sequence
//   - Heap       in-place binary max-heap build and extraction
//   - Merge      bottom-up pairwise run merging, stable
//   - Quick      first-element-pivot hole partitioning
//   - Radix      LSD decimal bucketing, non-negative input only, stable
//
// # Usage
//
//	s := sortkit.New(sortkit.Merge)
//	out, err := s.Sort([]int{5, 2, 9, 1})
//
// Every Sort call copies its input before working on it: the caller's
// slice is never modified, and the returned slice is freshly
// allocated. All sorters are stateless and safe for concurrent use.
//
// Radix is the only algorithm that can fail: it rejects negative
// integers with ErrNegativeInput, since its decimal digit
// decomposition is only defined for non-negative values. The seven
// comparison sorts accept any input and always return a nil error.
package sortkit
