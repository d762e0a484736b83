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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const commandReference = `
* **insert** k... (also add, i): add keys, duplicates are ignored
* **remove** k... (also delete, rm): remove keys, absent keys are ignored
* **search** k... (also find): look keys up
* **inorder**, **preorder**, **postorder**: print a traversal
* **levels**: keys grouped by depth
* **print**: draw the tree sideways, right subtree on top
* **check**: verify ordering, heights and balance
* **height**, **len**, **min**, **max**, **clear**
`

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **bintree %s**

Ordered integer sets backed by a height-balanced (AVL) binary search tree,
with a plain unbalanced tree for comparison.

Built with Go %s

# 1. Commands
* **repl** (default): interactive session
* **run** -e "insert 3 1 2; inorder" or --script steps.yaml
* **demo** avl|bst: walk through the reference scenarios
* **print** keys...: build a tree and draw it
* **bench** and **stats**: random workloads, timing and shape

# 2. Session commands
%s
Keys may be separated by spaces or commas.

# 3. Configuration
Settings live in ~/.bintree.yaml. Run **bintree settings** to create and show it.

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), commandReference)
	result := markdown.Render(message, 80, 3)
	return string(result)
}

// replHelpMarkdown is rendered with glamour inside the REPL.
func replHelpMarkdown(variant string) string {
	return fmt.Sprintf(`# bintree REPL (%s)

Type a command and press **enter**.
%s
## Keys
* **enter**: run the command
* **up/down**: recall previous commands
* **pgup/pgdown**: scroll the output
* **ctrl+y**: copy the in-order keys to the clipboard
* **f1**: toggle this help
* **esc / ctrl+c**: quit
`, variant, commandReference)
}
