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
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Sorter transforms an integer slice into its ascending-sorted
// permutation. Implementations never modify the input slice; the
// result is always freshly allocated.
//
// The error return exists for Radix, which rejects negative input
// with ErrNegativeInput. Comparison-based sorters always return a nil
// error.
type Sorter interface {
	Sort(items []int) ([]int, error)
}

// Algorithm identifies one of the built-in sorting algorithms. The
// set is closed: the zero value is Bubble and numAlgorithms bounds it.
type Algorithm int

const (
	Bubble Algorithm = iota
	Selection
	Insertion
	Shell
	Heap
	Merge
	Quick
	Radix

	numAlgorithms
)

var algorithmNames = [numAlgorithms]string{
	Bubble:    "bubble",
	Selection: "select",
	Insertion: "insert",
	Shell:     "shell",
	Heap:      "heap",
	Merge:     "merge",
	Quick:     "quick",
	Radix:     "radix",
}

func (a Algorithm) String() string {
	if a < 0 || a >= numAlgorithms {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Algorithms returns every Algorithm in declaration order.
func Algorithms() []Algorithm {
	all := make([]Algorithm, numAlgorithms)
	for i := range all {
		all[i] = Algorithm(i)
	}
	return all
}

// ParseAlgorithm maps a symbolic name ("bubble", "select", "insert",
// "shell", "heap", "merge", "quick", "radix") to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return 0, errors.Errorf("unknown algorithm %q (valid: %s)",
		name, strings.Join(algorithmNames[:], ", "))
}

// New returns the Sorter implementing the given algorithm. It panics
// on a value outside the closed Algorithm set.
func New(a Algorithm) Sorter {
	switch a {
	case Bubble:
		return infallible(bubbleSort)
	case Selection:
		return infallible(selectionSort)
	case Insertion:
		return infallible(insertionSort)
	case Shell:
		return infallible(shellSort)
	case Heap:
		return infallible(heapSort)
	case Merge:
		return infallible(mergeSort)
	case Quick:
		return infallible(quickSort)
	case Radix:
		return sortFunc(radixSort)
	default:
		panic(fmt.Sprintf("sortkit: unknown algorithm %d", int(a)))
	}
}

// sortFunc adapts a plain function to the Sorter interface.
type sortFunc func(items []int) ([]int, error)

func (f sortFunc) Sort(items []int) ([]int, error) { return f(items) }

// infallible wraps a sort that cannot fail.
func infallible(f func(items []int) []int) sortFunc {
	return func(items []int) ([]int, error) { return f(items), nil }
}

// clone returns a private copy of items. Every implementation sorts
// the copy in place so the caller's slice stays untouched.
func clone(items []int) []int {
	out := make([]int, len(items))
	copy(out, items)
	return out
}
