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

// Remove deletes key from the tree. Removing an absent key has no effect.
func (tree *Tree[K]) Remove(key K) {
	var removed bool
	tree.root, removed = remove(tree.root, key)
	if removed {
		tree.count--
	}
}

// remove returns the new root of the subtree and whether a node was removed.
func remove[K cmp.Ordered](node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return nil, false // key not found
	}

	var removed bool
	switch {
	case key < node.key:
		node.left, removed = remove(node.left, key)
	case key > node.key:
		node.right, removed = remove(node.right, key)
	default:
		removed = true
		if node.left == nil || node.right == nil {
			// zero or one child: the survivor replaces node
			node = survivor(node)
		} else {
			// two children: take over the successor's key, then drop the successor
			successor := findMin(node.right)
			node.key = successor.key
			node.right, _ = remove(node.right, successor.key)
		}
	}
	if !removed {
		return node, false
	}
	if node == nil {
		return nil, true
	}

	updateHeight(node)
	return rebalance(node), true
}

func survivor[K cmp.Ordered](node *Node[K]) *Node[K] {
	if node.left != nil {
		return node.left
	}
	return node.right
}

func findMin[K cmp.Ordered](node *Node[K]) *Node[K] {
	for node.left != nil {
		node = node.left
	}
	return node
}

func findMax[K cmp.Ordered](node *Node[K]) *Node[K] {
	for node.right != nil {
		node = node.right
	}
	return node
}

// rebalance dispatches on the taller child's balance factor, since a
// deletion can unbalance either grandchild side.
func rebalance[K cmp.Ordered](node *Node[K]) *Node[K] {
	balance := balanceFactor(node)

	// Left-heavy
	if balance > 1 {
		if balanceFactor(node.left) >= 0 {
			return rotateRight(node)
		}
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	// Right-heavy
	if balance < -1 {
		if balanceFactor(node.right) <= 0 {
			return rotateLeft(node)
		}
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}
