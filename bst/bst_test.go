// Copyright 2025 Naren Yellavula
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

package bst_test

import (
	"bytes"
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/NullVsVoid/BinaryTree/bst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *bst.Tree[int] {
	tree := bst.New[int]()
	for _, key := range []int{50, 30, 20, 40, 70, 60, 80} {
		tree.Insert(key)
	}
	return tree
}

func TestTraversals(t *testing.T) {
	tree := sample()

	assert.Equal(t, []int{20, 30, 40, 50, 60, 70, 80}, slices.Collect(tree.InOrder()))
	assert.Equal(t, []int{50, 30, 20, 40, 70, 60, 80}, slices.Collect(tree.PreOrder()))
	assert.Equal(t, []int{20, 40, 30, 60, 80, 70, 50}, slices.Collect(tree.PostOrder()))
	assert.Equal(t, [][]int{{50}, {30, 70}, {20, 40, 60, 80}}, tree.Levels())
}

func TestSearch(t *testing.T) {
	tree := sample()

	node := tree.Search(20)
	require.NotNil(t, node)
	assert.Equal(t, 20, node.Key())
	assert.Nil(t, tree.Search(10))
	assert.True(t, tree.Contains(60))
	assert.False(t, tree.Contains(65))
}

func TestRemove(t *testing.T) {
	testCases := []struct {
		name     string
		remove   []int
		inOrder  []int
		preOrder []int
	}{
		{"leaf", []int{20}, []int{30, 40, 50, 60, 70, 80}, []int{50, 30, 40, 70, 60, 80}},
		{"one child", []int{20, 30}, []int{40, 50, 60, 70, 80}, []int{50, 40, 70, 60, 80}},
		{"two children", []int{20, 30, 50}, []int{40, 60, 70, 80}, []int{60, 40, 70, 80}},
		{"absent", []int{10, 90}, []int{20, 30, 40, 50, 60, 70, 80}, []int{50, 30, 20, 40, 70, 60, 80}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := sample()
			for _, key := range tc.remove {
				tree.Remove(key)
			}
			require.NoError(t, tree.Check())
			assert.Equal(t, tc.inOrder, slices.Collect(tree.InOrder()))
			assert.Equal(t, tc.preOrder, slices.Collect(tree.PreOrder()))
			assert.Equal(t, len(tc.inOrder), tree.Len())
		})
	}
}

func TestDuplicatesIgnored(t *testing.T) {
	tree := sample()
	tree.Insert(50)
	tree.Insert(20)

	assert.Equal(t, 7, tree.Len())
	assert.Equal(t, []int{50, 30, 20, 40, 70, 60, 80}, slices.Collect(tree.PreOrder()))
}

func TestDegenerateHeight(t *testing.T) {
	tree := bst.New[int]()
	for i := 0; i < 64; i++ {
		tree.Insert(i)
	}
	assert.Equal(t, 64, tree.Height())
	assert.Len(t, tree.Levels(), 64)
}

func TestEmptyAndSeeded(t *testing.T) {
	tree := bst.New[string]()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Height())
	assert.Nil(t, tree.Levels())
	_, ok := tree.Min()
	assert.False(t, ok)

	seeded := bst.NewWithKey("m")
	seeded.Insert("a")
	seeded.Insert("z")
	lo, _ := seeded.Min()
	hi, _ := seeded.Max()
	assert.Equal(t, "a", lo)
	assert.Equal(t, "z", hi)
	assert.Equal(t, 2, seeded.Height())

	seeded.Clear()
	assert.True(t, seeded.IsEmpty())
	assert.Equal(t, 0, seeded.Len())
}

func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	tree := bst.New[int]()
	model := make(map[int]struct{})

	for i := 0; i < 2000; i++ {
		key := rng.Intn(300)
		if rng.Intn(2) == 0 {
			tree.Remove(key)
			delete(model, key)
		} else {
			tree.Insert(key)
			model[key] = struct{}{}
		}
	}
	require.NoError(t, tree.Check())

	expected := make([]int, 0, len(model))
	for key := range model {
		expected = append(expected, key)
	}
	sort.Ints(expected)
	assert.Equal(t, expected, slices.Collect(tree.InOrder()))

	for _, key := range expected {
		tree.Remove(key)
	}
	assert.True(t, tree.IsEmpty())
}

func TestPrint(t *testing.T) {
	tree := bst.New[int]()
	for _, key := range []int{2, 1, 4, 3} {
		tree.Insert(key)
	}

	var buf bytes.Buffer
	depth := tree.Print(&buf)

	assert.Equal(t, 3, depth)
	expected := "       /------+ 4\n" +
		"       |      \\------+ 3\n" +
		"|------+ 2\n" +
		"       \\------+ 1\n"
	assert.Equal(t, expected, buf.String())
}
