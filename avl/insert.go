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

import "cmp"

// Insert adds key to the tree. Inserting a key that is already present
// has no effect.
func (tree *Tree[K]) Insert(key K) {
	var added bool
	tree.root, added = insert(tree.root, key)
	if added {
		tree.count++
	}
}

// insert returns the new root of the subtree and whether a node was added.
func insert[K cmp.Ordered](node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return newLeaf(key), true
	}

	var added bool
	switch {
	case key < node.key:
		node.left, added = insert(node.left, key)
	case key > node.key:
		node.right, added = insert(node.right, key)
	}
	if !added {
		// duplicate: nothing below changed
		return node, false
	}

	updateHeight(node)

	balance := balanceFactor(node)
	if balance > 1 {
		if key < node.left.key {
			// Left-Left
			return rotateRight(node), true
		}
		// Left-Right
		node.left = rotateLeft(node.left)
		return rotateRight(node), true
	}
	if balance < -1 {
		if key > node.right.key {
			// Right-Right
			return rotateLeft(node), true
		}
		// Right-Left
		node.right = rotateRight(node.right)
		return rotateLeft(node), true
	}

	return node, true
}
