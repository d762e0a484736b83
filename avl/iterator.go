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
	"cmp"
	"iter"
)

// InOrder yields the keys in ascending order.
func (tree *Tree[K]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		tree.root.inOrder(yield)
	}
}

// PreOrder yields each node before its left and right subtrees.
func (tree *Tree[K]) PreOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		tree.root.preOrder(yield)
	}
}

// PostOrder yields each node after its left and right subtrees.
func (tree *Tree[K]) PostOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		tree.root.postOrder(yield)
	}
}

// The walkers return false once yield has asked to stop.

func (n *Node[K]) inOrder(yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return n.left.inOrder(yield) && yield(n.key) && n.right.inOrder(yield)
}

func (n *Node[K]) preOrder(yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.key) && n.left.preOrder(yield) && n.right.preOrder(yield)
}

func (n *Node[K]) postOrder(yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return n.left.postOrder(yield) && n.right.postOrder(yield) && yield(n.key)
}

// Levels returns the keys grouped by depth, root level first.
func (tree *Tree[K]) Levels() [][]K {
	var levels [][]K
	for level := []*Node[K]{tree.root}; len(level) > 0 && level[0] != nil; {
		keys := make([]K, 0, len(level))
		next := make([]*Node[K], 0, 2*len(level))
		for _, n := range level {
			keys = append(keys, n.key)
			next = appendChildren(next, n)
		}
		levels = append(levels, keys)
		level = next
	}
	return levels
}

func appendChildren[K cmp.Ordered](nodes []*Node[K], n *Node[K]) []*Node[K] {
	if n.left != nil {
		nodes = append(nodes, n.left)
	}
	if n.right != nil {
		nodes = append(nodes, n.right)
	}
	return nodes
}
