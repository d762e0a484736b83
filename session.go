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
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/NullVsVoid/BinaryTree/avl"
	"github.com/NullVsVoid/BinaryTree/bst"
	"github.com/mattn/go-shellwords"
)

const (
	VariantAVL = "avl"
	VariantBST = "bst"
)

var (
	ErrUnknownVariant = errors.New("unknown tree variant")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadKey         = errors.New("keys must be integers")
	ErrMissingKeys    = errors.New("command needs at least one key")
)

// OrderedTree is the surface shared by the balanced and the plain tree.
type OrderedTree interface {
	Insert(key int)
	Remove(key int)
	Contains(key int) bool
	Min() (int, bool)
	Max() (int, bool)
	Len() int
	Height() int
	IsEmpty() bool
	Clear()
	Check() error
	InOrder() iter.Seq[int]
	PreOrder() iter.Seq[int]
	PostOrder() iter.Seq[int]
	Levels() [][]int
	Print(w io.Writer) int
}

// NewTree creates an empty tree of the named variant.
func NewTree(variant string) (OrderedTree, error) {
	switch strings.ToLower(variant) {
	case VariantAVL, "":
		return avl.New[int](), nil
	case VariantBST:
		return bst.New[int](), nil
	}
	return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownVariant, variant, VariantAVL, VariantBST)
}

// Session executes text commands against one tree.
type Session struct {
	Variant   string
	AutoPrint bool // append the tree graphic after every mutation
	tree      OrderedTree
}

func NewSession(variant string) (*Session, error) {
	tree, err := NewTree(variant)
	if err != nil {
		return nil, err
	}
	if variant == "" {
		variant = VariantAVL
	}
	return &Session{Variant: strings.ToLower(variant), tree: tree}, nil
}

func (s *Session) Tree() OrderedTree {
	return s.tree
}

// Exec runs a single command line such as "insert 30 20 40" and returns its output.
func (s *Session) Exec(line string) (string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("failed to parse command %q: %w", line, err)
	}
	if len(args) == 0 {
		return "", nil
	}

	name := strings.ToLower(args[0])
	keys, err := parseKeys(args[1:])
	if err != nil {
		return "", err
	}

	mutated := false
	var out string
	switch name {
	case "insert", "add", "i":
		if len(keys) == 0 {
			return "", fmt.Errorf("%s: %w", name, ErrMissingKeys)
		}
		for _, key := range keys {
			s.tree.Insert(key)
		}
		mutated = true
		out = fmt.Sprintf("inserted %s (size %d, height %d)", joinKeys(keys), s.tree.Len(), s.tree.Height())
	case "remove", "delete", "rm":
		if len(keys) == 0 {
			return "", fmt.Errorf("%s: %w", name, ErrMissingKeys)
		}
		for _, key := range keys {
			s.tree.Remove(key)
		}
		mutated = true
		out = fmt.Sprintf("removed %s (size %d, height %d)", joinKeys(keys), s.tree.Len(), s.tree.Height())
	case "search", "find":
		if len(keys) == 0 {
			return "", fmt.Errorf("%s: %w", name, ErrMissingKeys)
		}
		lines := make([]string, 0, len(keys))
		for _, key := range keys {
			lines = append(lines, s.search(key))
		}
		out = strings.Join(lines, "\n")
	case "inorder":
		out = "in order: " + joinSeq(s.tree.InOrder())
	case "preorder":
		out = "pre order: " + joinSeq(s.tree.PreOrder())
	case "postorder":
		out = "post order: " + joinSeq(s.tree.PostOrder())
	case "levels":
		lines := make([]string, 0, s.tree.Height())
		for depth, level := range s.tree.Levels() {
			lines = append(lines, fmt.Sprintf("%d: %s", depth, joinKeys(level)))
		}
		out = strings.Join(lines, "\n")
	case "print":
		out = s.render()
	case "check":
		if err := s.tree.Check(); err != nil {
			out = "invalid: " + err.Error()
		} else {
			out = "ok"
		}
	case "height":
		out = strconv.Itoa(s.tree.Height())
	case "len", "size", "count":
		out = strconv.Itoa(s.tree.Len())
	case "min":
		out = extreme(s.tree.Min())
	case "max":
		out = extreme(s.tree.Max())
	case "clear":
		s.tree.Clear()
		mutated = true
		out = "cleared"
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	if mutated && s.AutoPrint {
		out = strings.TrimRight(out+"\n"+s.render(), "\n")
	}
	return out, nil
}

func (s *Session) search(key int) string {
	switch t := s.tree.(type) {
	case *avl.Tree[int]:
		if node := t.Search(key); node != nil {
			return fmt.Sprintf("found %d (height %d)", node.Key(), node.Height())
		}
	case *bst.Tree[int]:
		if node := t.Search(key); node != nil {
			return fmt.Sprintf("found %d", node.Key())
		}
	default:
		if t.Contains(key) {
			return fmt.Sprintf("found %d", key)
		}
	}
	return fmt.Sprintf("%d not found", key)
}

func (s *Session) render() string {
	if s.tree.IsEmpty() {
		return "(empty)"
	}
	var buf bytes.Buffer
	s.tree.Print(&buf)
	return strings.TrimRight(buf.String(), "\n")
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			if field == "" {
				continue
			}
			key, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadKey, field)
			}
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func extreme(key int, ok bool) string {
	if !ok {
		return "(empty)"
	}
	return strconv.Itoa(key)
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = strconv.Itoa(key)
	}
	return strings.Join(parts, " ")
}

func joinSeq(seq iter.Seq[int]) string {
	var parts []string
	for key := range seq {
		parts = append(parts, strconv.Itoa(key))
	}
	return strings.Join(parts, " ")
}
