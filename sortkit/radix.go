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

package sortkit

import "github.com/pkg/errors"

// ErrNegativeInput is returned by the Radix sorter when the input
// contains a negative integer. Decimal digit decomposition is only
// defined for non-negative values.
var ErrNegativeInput = errors.New("radix sort requires non-negative integers")

// radixSort runs least-significant-digit-first decimal radix sort:
// one distribution pass per digit of the maximum value, scattering
// elements into ten buckets by the current digit and concatenating
// the buckets back in order 0..9. Distribution preserves within-
// bucket order, so the sort is stable. O(n·k) time for k digits,
// O(n) auxiliary space.
func radixSort(items []int) ([]int, error) {
	out := clone(items)
	max := 0
	for i, v := range out {
		if v < 0 {
			return nil, errors.Wrapf(ErrNegativeInput, "items[%d] = %d", i, v)
		}
		if v > max {
			max = v
		}
	}
	if len(out) <= 1 {
		return out, nil
	}

	var buckets [10][]int
	for exp := 1; max/exp > 0; exp *= 10 {
		for d := range buckets {
			buckets[d] = buckets[d][:0]
		}
		for _, v := range out {
			d := (v / exp) % 10
			buckets[d] = append(buckets[d], v)
		}
		out = out[:0]
		for _, b := range buckets {
			out = append(out, b...)
		}
	}
	return out, nil
}
