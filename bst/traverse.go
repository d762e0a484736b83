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

package bst

import (
	"cmp"
	"iter"
)

// InOrder yields keys in ascending order.
func (tree *Tree[K]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		inOrder(tree.root, yield)
	}
}

// PreOrder yields node, left subtree, right subtree.
func (tree *Tree[K]) PreOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		preOrder(tree.root, yield)
	}
}

// PostOrder yields left subtree, right subtree, node.
func (tree *Tree[K]) PostOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		postOrder(tree.root, yield)
	}
}

func inOrder[K cmp.Ordered](node *Node[K], yield func(K) bool) bool {
	if node == nil {
		return true // doesn't terminate further iteration
	}
	return inOrder(node.left, yield) && yield(node.key) && inOrder(node.right, yield)
}

func preOrder[K cmp.Ordered](node *Node[K], yield func(K) bool) bool {
	if node == nil {
		return true
	}
	return yield(node.key) && preOrder(node.left, yield) && preOrder(node.right, yield)
}

func postOrder[K cmp.Ordered](node *Node[K], yield func(K) bool) bool {
	if node == nil {
		return true
	}
	return postOrder(node.left, yield) && postOrder(node.right, yield) && yield(node.key)
}

// Levels returns keys grouped by depth, root first.
func (tree *Tree[K]) Levels() [][]K {
	if tree.root == nil {
		return nil
	}
	var levels [][]K
	level := []*Node[K]{tree.root}
	for len(level) > 0 {
		keys := make([]K, len(level))
		var next []*Node[K]
		for i, node := range level {
			keys[i] = node.key
			if node.left != nil {
				next = append(next, node.left)
			}
			if node.right != nil {
				next = append(next, node.right)
			}
		}
		levels = append(levels, keys)
		level = next
	}
	return levels
}
