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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := InitialModel(newTestSession(t, VariantAVL), NewRenderCache())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func submit(m Model, line string) Model {
	m.input.SetValue(line)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func TestModelExecutesCommands(t *testing.T) {
	m := newTestModel(t)
	m = submit(m, "insert 2 1 3; remove 1")

	if got := m.session.Tree().Len(); got != 2 {
		t.Errorf("Len = %d; want 2", got)
	}
	if m.input.Value() != "" {
		t.Errorf("input should be cleared, got %q", m.input.Value())
	}
	if m.statusIsErr {
		t.Errorf("unexpected error status %q", m.status)
	}
	if len(m.history) != 1 {
		t.Errorf("history = %v; want one entry", m.history)
	}
}

func TestModelReportsErrors(t *testing.T) {
	m := newTestModel(t)
	m = submit(m, "insert x")

	if !m.statusIsErr {
		t.Error("status should report the bad key")
	}
	if !strings.Contains(m.status, ErrBadKey.Error()) {
		t.Errorf("status = %q", m.status)
	}
}

func TestModelHistoryRecall(t *testing.T) {
	m := newTestModel(t)
	m = submit(m, "insert 1")
	m = submit(m, "insert 2")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	if m.input.Value() != "insert 2" {
		t.Errorf("first up = %q; want %q", m.input.Value(), "insert 2")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	if m.input.Value() != "insert 1" {
		t.Errorf("up past the oldest entry = %q; want %q", m.input.Value(), "insert 1")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	if m.input.Value() != "" {
		t.Errorf("down past the newest entry = %q; want empty", m.input.Value())
	}
}

func TestModelToggleHelp(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = next.(Model)
	if !m.showHelp {
		t.Fatal("f1 should open the help page")
	}
	if m.renderHelp() == "" {
		t.Error("help page should not be empty")
	}

	m = submit(m, "len")
	if m.showHelp {
		t.Error("running a command should return to the transcript")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit")
	}
}
