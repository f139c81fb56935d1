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

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadixSort(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{"classic", []int{170, 45, 75, 90, 802, 24, 2, 66}, []int{2, 24, 45, 66, 75, 90, 170, 802}},
		{"single_digit", []int{5, 0, 9, 2, 2, 8}, []int{0, 2, 2, 5, 8, 9}},
		{"all_zero", []int{0, 0, 0}, []int{0, 0, 0}},
		{"uneven_digit_counts", []int{1, 1000, 10, 100}, []int{1, 10, 100, 1000}},
		{"duplicates", []int{33, 3, 33, 303, 3}, []int{3, 3, 33, 33, 303}},
		{"already_sorted", []int{1, 2, 3, 4}, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := radixSort(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRadixSortRejectsNegativeInput(t *testing.T) {
	tests := []struct {
		name  string
		input []int
	}{
		{"leading", []int{-1, 2, 3}},
		{"middle", []int{5, -7, 3}},
		{"all_negative", []int{-4, -2, -9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := radixSort(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNegativeInput))
			assert.Nil(t, got)
		})
	}
}
