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

// bubbleSort bubbles the minimum of the unsorted suffix down to
// position i on each pass. Swaps happen only on strict inequality,
// so equal elements keep their relative order. O(n²) time, O(1)
// extra space.
func bubbleSort(items []int) []int {
	out := clone(items)
	for i := 0; i < len(out); i++ {
		for j := len(out) - 1; j > i; j-- {
			if out[j] < out[j-1] {
				out[j], out[j-1] = out[j-1], out[j]
			}
		}
	}
	return out
}
