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

func height[K cmp.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return node.height
}

// balanceFactor is height(left) - height(right).
func balanceFactor[K cmp.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return height(node.left) - height(node.right)
}

// updateHeight expects both children to carry current heights.
func updateHeight[K cmp.Ordered](node *Node[K]) {
	node.height = 1 + max(height(node.left), height(node.right))
}
