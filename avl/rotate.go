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
	"fmt"
)

// rotateRight promotes node.left and returns it as the new subtree root.
//
//	    node          pivot
//	    /  \          /  \
//	 pivot  c   ->   a   node
//	 /  \                /  \
//	a    b              b    c
func rotateRight[K cmp.Ordered](node *Node[K]) *Node[K] {
	if node == nil || node.left == nil {
		panic(fmt.Sprintf("avl: rotateRight without left child at %v", keyOf(node)))
	}

	pivot := node.left
	node.left = pivot.right
	pivot.right = node

	// node is now below pivot, so it goes first
	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rotateLeft is the mirror image of rotateRight.
func rotateLeft[K cmp.Ordered](node *Node[K]) *Node[K] {
	if node == nil || node.right == nil {
		panic(fmt.Sprintf("avl: rotateLeft without right child at %v", keyOf(node)))
	}

	pivot := node.right
	node.right = pivot.left
	pivot.left = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

func keyOf[K cmp.Ordered](node *Node[K]) any {
	if node == nil {
		return "<nil>"
	}
	return node.key
}
