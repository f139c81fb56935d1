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

// quickSort partitions around the first element of each subrange and
// recurses on both sides. O(n log n) average, O(n²) comparisons on
// already-sorted input with this pivot choice, not stable.
func quickSort(items []int) []int {
	out := clone(items)
	quickSortRange(out, 0, len(out)-1)
	return out
}

// quickSortRange recurses into the smaller partition and loops on the
// larger one, bounding the stack at O(log n) even on adversarial
// input.
func quickSortRange(list []int, low, high int) {
	for low < high {
		mid := partition(list, low, high)
		if mid-low < high-mid {
			quickSortRange(list, low, mid-1)
			low = mid + 1
		} else {
			quickSortRange(list, mid+1, high)
			high = mid - 1
		}
	}
}

// partition places the pivot list[low] at its final position with the
// hole scheme: the pivot's slot starts free, and wrong-side elements
// are copied into the current hole from alternating ends until the
// cursors meet.
func partition(list []int, low, high int) int {
	pivot := list[low]
	for low < high {
		for low < high && list[high] >= pivot {
			high--
		}
		list[low] = list[high]
		for low < high && list[low] <= pivot {
			low++
		}
		list[high] = list[low]
	}
	list[low] = pivot
	return low
}
