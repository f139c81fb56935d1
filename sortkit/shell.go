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

// shellSort runs gapped insertion passes with the gap starting at n/2
// and halving until it reaches 0. Elements gap apart may jump over
// equal values, so the sort is not stable. Roughly O(n^1.5) with this
// gap sequence, O(1) extra space.
func shellSort(items []int) []int {
	out := clone(items)
	for gap := len(out) / 2; gap > 0; gap /= 2 {
		for i := gap; i < len(out); i++ {
			for j := i; j >= gap && out[j] < out[j-gap]; j -= gap {
				out[j], out[j-gap] = out[j-gap], out[j]
			}
		}
	}
	return out
}
