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

// Package avl implements a height-balanced binary search tree.
//
// Every mutation is a recursive rewrite of a subtree root: the call descends
// to the affected subtree, changes it, and repairs heights and balance while
// the recursion unwinds. No duplicate keys are stored.
//
// Note: a tree is not safe for concurrent use. Callers sharing a tree between
// goroutines must guard the whole tree with a single mutex, since one
// rotation can touch any node on a root-to-leaf path.
package avl
