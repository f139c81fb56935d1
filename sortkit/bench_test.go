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

import "testing"

// All benchmarks share one shuffled permutation so the numbers are
// comparable across algorithms. 1<<11 keeps the quadratic sorts from
// dominating the run.
const benchSize = 1 << 11

func benchmarkSort(b *testing.B, a Algorithm) {
	input := shuffledPerm(benchSize, 1)
	s := New(a)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Sort(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBubbleSort(b *testing.B)    { benchmarkSort(b, Bubble) }
func BenchmarkSelectionSort(b *testing.B) { benchmarkSort(b, Selection) }
func BenchmarkInsertionSort(b *testing.B) { benchmarkSort(b, Insertion) }
func BenchmarkShellSort(b *testing.B)     { benchmarkSort(b, Shell) }
func BenchmarkHeapSort(b *testing.B)      { benchmarkSort(b, Heap) }
func BenchmarkMergeSort(b *testing.B)     { benchmarkSort(b, Merge) }
func BenchmarkQuickSort(b *testing.B)     { benchmarkSort(b, Quick) }
func BenchmarkRadixSort(b *testing.B)     { benchmarkSort(b, Radix) }
