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

// Search returns the node holding key, or nil if the key is not present.
// The node is owned by the tree and is only valid until the next mutation.
func (tree *Tree[K]) Search(key K) *Node[K] {
	node := tree.root
	for node != nil {
		switch {
		case key < node.key:
			node = node.left
		case key > node.key:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// Contains reports whether key is stored in the tree.
func (tree *Tree[K]) Contains(key K) bool {
	return tree.Search(key) != nil
}

// Min returns the smallest key, false when the tree is empty.
func (tree *Tree[K]) Min() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return findMin(tree.root).key, true
}

// Max returns the largest key, false when the tree is empty.
func (tree *Tree[K]) Max() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return findMax(tree.root).key, true
}
