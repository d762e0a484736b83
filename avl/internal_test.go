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

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func leaf(key int) *Node[int] {
	return newLeaf(key)
}

func join(l *Node[int], key int, r *Node[int]) *Node[int] {
	n := &Node[int]{key: key, left: l, right: r}
	updateHeight(n)
	return n
}

func TestHeightBookkeeping(t *testing.T) {
	var absent *Node[int]
	assert.Equal(t, 0, height(absent))
	assert.Equal(t, 0, balanceFactor(absent))

	n := join(join(leaf(1), 2, nil), 3, nil)
	assert.Equal(t, 3, n.height)
	assert.Equal(t, 2, balanceFactor(n))
	assert.Equal(t, 1, balanceFactor(n.left))
}

func TestRotateRight(t *testing.T) {
	// 4(2(1,3),5) -> 2(1,4(3,5))
	n := join(join(leaf(1), 2, leaf(3)), 4, leaf(5))

	top := rotateRight(n)

	assert.Equal(t, 2, top.key)
	assert.Equal(t, 1, top.left.key)
	assert.Equal(t, 4, top.right.key)
	assert.Equal(t, 3, top.right.left.key)
	assert.Equal(t, 5, top.right.right.key)
	assert.Equal(t, 2, top.right.height)
	assert.Equal(t, 3, top.height)
}

func TestRotateLeft(t *testing.T) {
	// 2(1,4(3,5)) -> 4(2(1,3),5)
	n := join(leaf(1), 2, join(leaf(3), 4, leaf(5)))

	top := rotateLeft(n)

	assert.Equal(t, 4, top.key)
	assert.Equal(t, 2, top.left.key)
	assert.Equal(t, 1, top.left.left.key)
	assert.Equal(t, 3, top.left.right.key)
	assert.Equal(t, 5, top.right.key)
	assert.Equal(t, 2, top.left.height)
	assert.Equal(t, 3, top.height)
}

func TestRotateWithoutChildPanics(t *testing.T) {
	assert.PanicsWithValue(t, "avl: rotateRight without left child at 7", func() {
		rotateRight(leaf(7))
	})
	assert.PanicsWithValue(t, "avl: rotateLeft without right child at 7", func() {
		rotateLeft(leaf(7))
	})
	assert.Panics(t, func() {
		rotateLeft[int](nil)
	})
}

func TestCheckReportsBrokenTrees(t *testing.T) {
	testCases := []struct {
		name string
		root *Node[int]
	}{
		{"ordering", join(leaf(3), 2, leaf(1))},
		{"balance", join(join(leaf(1), 2, nil), 3, nil)},
		{"stale height", &Node[int]{key: 1, height: 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := &Tree[int]{root: tc.root}
			tree.count, _ = check(tc.root, nil, nil)
			assert.Error(t, tree.Check())
		})
	}
}

func TestCheckCountMismatch(t *testing.T) {
	tree := &Tree[int]{root: join(leaf(1), 2, leaf(3)), count: 2}
	assert.EqualError(t, tree.Check(), "avl: count mismatch: stored 2, found 3")
}
