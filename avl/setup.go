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

// Node holds one key. Each node exclusively owns its children.
type Node[K cmp.Ordered] struct {
	key    K
	left   *Node[K]
	right  *Node[K]
	height int // leaf = 1
}

// Tree holds the root of an AVL tree. A nil root is the empty tree.
type Tree[K cmp.Ordered] struct {
	root  *Node[K]
	count int
}

// New creates an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// NewWithKey creates a tree seeded with a single key.
func NewWithKey[K cmp.Ordered](key K) *Tree[K] {
	return &Tree[K]{root: newLeaf(key), count: 1}
}

func newLeaf[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{key: key, height: 1}
}

// Key returns the key stored in the node.
func (n *Node[K]) Key() K {
	return n.key
}

// Height returns the stored height of the node's subtree.
func (n *Node[K]) Height() int {
	return height(n)
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

// Len returns the number of keys in the tree.
func (tree *Tree[K]) Len() int {
	return tree.count
}

// Height returns the height of the whole tree, 0 when empty.
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

// Clear releases every node by dropping the root.
func (tree *Tree[K]) Clear() {
	tree.root = nil
	tree.count = 0
}
