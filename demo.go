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

package main

import (
	"fmt"
	"io"

	"github.com/NullVsVoid/BinaryTree/avl"
	"github.com/NullVsVoid/BinaryTree/bst"
)

// runAVLDemo shows the balanced tree repairing itself after each change.
func runAVLDemo(w io.Writer) {
	tree := avl.New[int]()

	fmt.Fprintln(w, "Inserting elements to form the tree...")
	for _, key := range []int{30, 20, 40, 10, 25, 35, 50} {
		tree.Insert(key)
	}
	printAVLStep(w, "Initial tree", tree)

	fmt.Fprintln(w, "\nInserting 5 to cause left imbalance.")
	tree.Insert(5)
	printAVLStep(w, "Tree after inserting 5", tree)

	fmt.Fprintln(w, "\nInserting 55 and 60 to cause right imbalance.")
	tree.Insert(55)
	tree.Insert(60)
	printAVLStep(w, "Tree after inserting 55 and 60", tree)

	fmt.Fprintln(w, "\nRemoving 20 (a node with two children).")
	tree.Remove(20)
	printAVLStep(w, "Tree after removing 20", tree)

	fmt.Fprintln(w, "\nRemoving 30 (a node with two children).")
	tree.Remove(30)
	printAVLStep(w, "Tree after removing 30", tree)
}

func printAVLStep(w io.Writer, title string, tree *avl.Tree[int]) {
	root := tree.Levels()[0][0]
	fmt.Fprintf(w, "%s (In order): %s\n", title, joinSeq(tree.InOrder()))
	fmt.Fprintf(w, "  root %d, height %d\n", root, tree.Height())
}

// runBSTDemo walks the plain tree through traversal, search and removal.
func runBSTDemo(w io.Writer) {
	tree := bst.New[int]()
	for _, key := range []int{50, 30, 20, 40, 70, 60, 80} {
		tree.Insert(key)
	}

	fmt.Fprintf(w, "In order: %s\n", joinSeq(tree.InOrder()))
	fmt.Fprintf(w, "Pre order: %s\n", joinSeq(tree.PreOrder()))
	fmt.Fprintf(w, "Post order: %s\n", joinSeq(tree.PostOrder()))

	for _, key := range []int{20, 10} {
		if node := tree.Search(key); node != nil {
			fmt.Fprintf(w, "Searching for %d... %d\n", key, node.Key())
		} else {
			fmt.Fprintf(w, "Searching for %d... Not found\n", key)
		}
	}

	for _, key := range []int{20, 30, 50} {
		tree.Remove(key)
	}
	fmt.Fprintf(w, "In order: %s\n", joinSeq(tree.InOrder()))
}
