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

// Check verifies key ordering, stored heights, balance and the key count.
// It returns a description of the first violation found.
func (tree *Tree[K]) Check() error {
	count, err := check(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if count != tree.count {
		return fmt.Errorf("avl: count mismatch: stored %d, found %d", tree.count, count)
	}
	return nil
}

// check walks the subtree with exclusive key bounds lo and hi.
func check[K cmp.Ordered](node *Node[K], lo, hi *K) (int, error) {
	if node == nil {
		return 0, nil
	}
	if lo != nil && node.key <= *lo {
		return 0, fmt.Errorf("avl: key %v not greater than ancestor %v", node.key, *lo)
	}
	if hi != nil && node.key >= *hi {
		return 0, fmt.Errorf("avl: key %v not less than ancestor %v", node.key, *hi)
	}

	nl, err := check(node.left, lo, &node.key)
	if err != nil {
		return 0, err
	}
	nr, err := check(node.right, &node.key, hi)
	if err != nil {
		return 0, err
	}

	if want := 1 + max(height(node.left), height(node.right)); node.height != want {
		return 0, fmt.Errorf("avl: node %v height %d, expected %d", node.key, node.height, want)
	}
	if b := balanceFactor(node); b < -1 || b > 1 {
		return 0, fmt.Errorf("avl: node %v out of balance: %+d", node.key, b)
	}
	return 1 + nl + nr, nil
}
