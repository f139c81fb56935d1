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

// heapSort reinterprets the working slice as a binary max-heap,
// 0-based: the children of index i are 2i+1 and 2i+2. Construction
// sifts down every parent from the last one to the root; extraction
// then repeatedly swaps the root maximum behind the shrinking heap
// bound and restores the heap. O(n log n) time, O(1) extra space,
// not stable.
func heapSort(items []int) []int {
	out := clone(items)
	n := len(out)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(out, i, n)
	}
	for end := n - 1; end > 0; end-- {
		out[0], out[end] = out[end], out[0]
		siftDown(out, 0, end)
	}
	return out
}

// siftDown restores the max-heap property for the subtree rooted at
// root within heap[:size]. The sifting value moves down along the
// path of larger children until neither child exceeds it.
func siftDown(heap []int, root, size int) {
	val := heap[root]
	for {
		child := 2*root + 1
		if child >= size {
			break
		}
		if child+1 < size && heap[child+1] > heap[child] {
			child++
		}
		if heap[child] <= val {
			break
		}
		heap[root] = heap[child]
		root = child
	}
	heap[root] = val
}
