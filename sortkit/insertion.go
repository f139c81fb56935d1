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

// insertionSort shifts each element leftward through the sorted
// prefix by adjacent swaps until it is no longer smaller than its
// left neighbor. The strict comparison stops at equal neighbors, so
// the sort is stable. O(n²) worst case, O(n) on nearly-sorted input,
// O(1) extra space.
func insertionSort(items []int) []int {
	out := clone(items)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
