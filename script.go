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
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Script is a YAML file of session commands:
//
//	variant: bst
//	steps:
//	  - insert 50 30 20 40 70 60 80
//	  - inorder
type Script struct {
	Variant string   `yaml:"variant"`
	Steps   []string `yaml:"steps"`
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if script.Variant != "" {
		if _, err := NewTree(script.Variant); err != nil {
			return nil, err
		}
	}
	return &script, nil
}

// SplitCommands breaks "insert 1 2; remove 1" into separate command lines.
func SplitCommands(expr string) []string {
	var lines []string
	for _, part := range strings.FieldsFunc(expr, func(r rune) bool { return r == ';' || r == '\n' }) {
		if line := strings.TrimSpace(part); line != "" && !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	return lines
}

// RunLines executes each line, echoing it before its output. It stops at the
// first failing command.
func (s *Session) RunLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		out, err := s.Exec(line)
		if err != nil {
			return fmt.Errorf("%q: %w", line, err)
		}
		fmt.Fprintf(w, "%s> %s%s\n", Cyan, line, Reset)
		if out != "" {
			fmt.Fprintln(w, out)
		}
	}
	return nil
}
