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

// Package bst implements a plain, unbalanced binary search tree.
//
// It offers the same operations as package avl without rebalancing, so its
// height depends on insertion order. Like avl, it is not safe for
// concurrent use.
package bst

import (
	"cmp"
	"fmt"
	"io"
)

// Node holds one key and owns its children.
type Node[K cmp.Ordered] struct {
	key   K
	left  *Node[K]
	right *Node[K]
}

// Tree holds the root of the tree. A nil root is the empty tree.
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
	return &Tree[K]{root: &Node[K]{key: key}, count: 1}
}

// Key returns the key stored in the node.
func (n *Node[K]) Key() K {
	return n.key
}

func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

func (tree *Tree[K]) Len() int {
	return tree.count
}

// Height walks the whole tree; a plain tree stores no heights.
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

func height[K cmp.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return 1 + max(height(node.left), height(node.right))
}

func (tree *Tree[K]) Clear() {
	tree.root = nil
	tree.count = 0
}

// Insert adds key; duplicates are ignored.
func (tree *Tree[K]) Insert(key K) {
	var added bool
	tree.root, added = insert(tree.root, key)
	if added {
		tree.count++
	}
}

func insert[K cmp.Ordered](node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return &Node[K]{key: key}, true
	}

	var added bool
	if key < node.key {
		node.left, added = insert(node.left, key)
	} else if key > node.key {
		node.right, added = insert(node.right, key)
	}
	return node, added
}

// Remove deletes key if present.
func (tree *Tree[K]) Remove(key K) {
	var removed bool
	tree.root, removed = remove(tree.root, key)
	if removed {
		tree.count--
	}
}

func remove[K cmp.Ordered](node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return nil, false
	}

	var removed bool
	if key < node.key {
		node.left, removed = remove(node.left, key)
		return node, removed
	} else if key > node.key {
		node.right, removed = remove(node.right, key)
		return node, removed
	}

	if node.left == nil {
		return node.right, true
	} else if node.right == nil {
		return node.left, true
	}

	// two children: copy the smallest key of the right subtree, then remove it there
	successor := findMin(node.right)
	node.key = successor.key
	node.right, _ = remove(node.right, successor.key)
	return node, true
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

// Search returns the node holding key, or nil.
func (tree *Tree[K]) Search(key K) *Node[K] {
	return search(tree.root, key)
}

func search[K cmp.Ordered](node *Node[K], key K) *Node[K] {
	if node == nil || node.key == key {
		return node
	}
	if key < node.key {
		return search(node.left, key)
	}
	return search(node.right, key)
}

func (tree *Tree[K]) Contains(key K) bool {
	return tree.Search(key) != nil
}

func (tree *Tree[K]) Min() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return findMin(tree.root).key, true
}

func (tree *Tree[K]) Max() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return findMax(tree.root).key, true
}

// Check verifies the ordering invariant and the key count.
func (tree *Tree[K]) Check() error {
	count, err := check(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if count != tree.count {
		return fmt.Errorf("bst: count mismatch: stored %d, found %d", tree.count, count)
	}
	return nil
}

func check[K cmp.Ordered](node *Node[K], lo, hi *K) (int, error) {
	if node == nil {
		return 0, nil
	}
	if (lo != nil && node.key <= *lo) || (hi != nil && node.key >= *hi) {
		return 0, fmt.Errorf("bst: key %v out of order", node.key)
	}
	nl, err := check(node.left, lo, &node.key)
	if err != nil {
		return 0, err
	}
	nr, err := check(node.right, &node.key, hi)
	if err != nil {
		return 0, err
	}
	return 1 + nl + nr, nil
}

// Print writes a sideways ASCII graphic of the tree and returns its depth.
func (tree *Tree[K]) Print(w io.Writer) int {
	return printTree(w, tree.root, "", "|------+ ")
}

func printTree[K cmp.Ordered](w io.Writer, node *Node[K], prefix, edge string) int {
	if node == nil {
		return 0
	}
	rd := printTree(w, node.right, prefix+indent(edge, "\\"), "/------+ ")
	fmt.Fprintf(w, "%s%s%v\n", prefix, edge, node.key)
	ld := printTree(w, node.left, prefix+indent(edge, "/"), "\\------+ ")
	return 1 + max(rd, ld)
}

// indent continues the vertical rule when the branch turns back under or over
// its parent.
func indent(edge, turn string) string {
	if edge[:1] == turn {
		return "|      "
	}
	return "       "
}
