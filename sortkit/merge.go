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

// mergeSort sorts bottom-up: every element starts as a singleton run,
// and adjacent runs are merged pairwise until one run remains. Ties
// in the merge take from the left run, which keeps equal elements in
// their original relative order at every level, so the sort is
// stable. O(n log n) time, O(n) auxiliary space.
func mergeSort(items []int) []int {
	if len(items) <= 1 {
		return clone(items)
	}
	runs := make([][]int, len(items))
	for i, v := range items {
		runs[i] = []int{v}
	}
	for len(runs) > 1 {
		merged := make([][]int, 0, (len(runs)+1)/2)
		for i := 0; i+1 < len(runs); i += 2 {
			merged = append(merged, mergeRuns(runs[i], runs[i+1]))
		}
		if len(runs)%2 == 1 {
			merged = append(merged, runs[len(runs)-1])
		}
		runs = merged
	}
	return runs[0]
}

// mergeRuns merges two sorted runs into one. On equal front elements
// the left run wins.
func mergeRuns(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
