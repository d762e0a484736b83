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
	"strings"
	"testing"
)

func TestRunAVLDemo(t *testing.T) {
	var buf bytes.Buffer
	runAVLDemo(&buf)
	out := buf.String()

	steps := []string{
		"Initial tree (In order): 10 20 25 30 35 40 50\n  root 30, height 3",
		"Tree after inserting 5 (In order): 5 10 20 25 30 35 40 50\n  root 30, height 4",
		"Tree after inserting 55 and 60 (In order): 5 10 20 25 30 35 40 50 55 60\n  root 30, height 4",
		"Tree after removing 20 (In order): 5 10 25 30 35 40 50 55 60\n  root 30, height 4",
		"Tree after removing 30 (In order): 5 10 25 35 40 50 55 60\n  root 35, height 4",
	}
	last := -1
	for _, step := range steps {
		i := strings.Index(out, step)
		if i < 0 {
			t.Errorf("demo output missing %q:\n%s", step, out)
			continue
		}
		if i < last {
			t.Errorf("step %q printed out of order", step)
		}
		last = i
	}
}

func TestRunBSTDemo(t *testing.T) {
	var buf bytes.Buffer
	runBSTDemo(&buf)

	want := `In order: 20 30 40 50 60 70 80
Pre order: 50 30 20 40 70 60 80
Post order: 20 40 30 60 80 70 50
Searching for 20... 20
Searching for 10... Not found
In order: 40 60 70 80
`
	if buf.String() != want {
		t.Errorf("runBSTDemo output =\n%s\nwant\n%s", buf.String(), want)
	}
}
