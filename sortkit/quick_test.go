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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ascending input is the worst case for first-element pivoting: every
// partition is maximally unbalanced. The smaller-side recursion must
// keep this from growing the stack linearly.
func TestQuickSortAscendingWorstCase(t *testing.T) {
	const n = 5000
	input := make([]int, n)
	for i := range input {
		input[i] = i + 1
	}

	got := quickSort(input)
	assert.Equal(t, input, got)

	// Descending input degenerates the same way in the other direction.
	desc := make([]int, n)
	for i := range desc {
		desc[i] = n - i
	}
	got = quickSort(desc)
	assert.Equal(t, input, got)
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name string
		list []int
	}{
		{"distinct", []int{4, 1, 7, 3, 9, 2}},
		{"pivot_smallest", []int{1, 5, 3, 7}},
		{"pivot_largest", []int{9, 5, 3, 7}},
		{"duplicate_pivot", []int{4, 4, 1, 4, 6}},
		{"two", []int{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := clone(tt.list)
			pivot := list[0]
			mid := partition(list, 0, len(list)-1)

			require.Equal(t, pivot, list[mid])
			for i := 0; i < mid; i++ {
				assert.LessOrEqual(t, list[i], pivot, "left of pivot at %d", i)
			}
			for i := mid + 1; i < len(list); i++ {
				assert.GreaterOrEqual(t, list[i], pivot, "right of pivot at %d", i)
			}
		})
	}
}
