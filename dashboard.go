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
	"strconv"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

const dashboardSampleSize = 50

// LevelStats summarises a tree shape for the dashboard.
type LevelStats struct {
	Counts   []float64 // nodes per depth
	Labels   []string
	Capacity []int // nodes a full level could hold
	Height   int
	Len      int
	Bound    float64
	Sample   []string // first keys in order
}

func computeLevelStats(tree OrderedTree, sample int) LevelStats {
	levels := tree.Levels()
	stats := LevelStats{
		Counts:   make([]float64, len(levels)),
		Labels:   make([]string, len(levels)),
		Capacity: make([]int, len(levels)),
		Height:   tree.Height(),
		Len:      tree.Len(),
		Bound:    heightBound(tree.Len()),
	}
	for depth, level := range levels {
		stats.Counts[depth] = float64(len(level))
		stats.Labels[depth] = strconv.Itoa(depth)
		stats.Capacity[depth] = 1 << depth
	}
	for key := range tree.InOrder() {
		if len(stats.Sample) == sample {
			break
		}
		stats.Sample = append(stats.Sample, strconv.Itoa(key))
	}
	return stats
}

// fullLevels counts leading levels that hold every node they could.
func (s LevelStats) fullLevels() int {
	n := 0
	for depth, count := range s.Counts {
		if int(count) != s.Capacity[depth] {
			break
		}
		n++
	}
	return n
}

func (s LevelStats) summary(variant string) string {
	return fmt.Sprintf("variant: %s\nkeys: %d\nheight: %d\nbound: %.2f\nfull levels: %d\n\npress q to quit",
		variant, s.Len, s.Height, s.Bound, s.fullLevels())
}

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// runDashboard shows the tree shape until the user quits.
func runDashboard(variant string, tree OrderedTree) error {
	stats := computeLevelStats(tree, dashboardSampleSize)

	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	defer ui.Close()
	DisableMouseInput()

	scheme := GetColorScheme()

	chart := widgets.NewBarChart()
	chart.Title = " Nodes per depth "
	chart.TitleStyle = StyleTitle()
	chart.BorderStyle = StyleBorder()
	chart.Data = stats.Counts
	chart.Labels = stats.Labels
	chart.BarWidth = 4
	chart.BarGap = 1
	chart.BarColors = []ui.Color{scheme.Bar}
	chart.LabelStyles = []ui.Style{StyleText()}
	chart.NumStyles = []ui.Style{ui.NewStyle(scheme.Accent)}

	info := widgets.NewParagraph()
	info.Title = " Summary "
	info.TitleStyle = StyleTitle()
	info.BorderStyle = StyleBorder()
	info.Text = stats.summary(variant)
	info.WrapText = true

	sample := widgets.NewList()
	sample.Title = fmt.Sprintf(" First %d keys in order ", len(stats.Sample))
	sample.TitleStyle = StyleTitle()
	sample.BorderStyle = StyleBorder()
	sample.Rows = stats.Sample
	sample.TextStyle = StyleText()

	grid := ui.NewGrid()
	termWidth, termHeight := ui.TerminalDimensions()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewRow(0.6,
			ui.NewCol(0.7, chart),
			ui.NewCol(0.3, info),
		),
		ui.NewRow(0.4, sample),
	)
	ui.Render(grid)

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "j", "<Down>":
			sample.ScrollDown()
		case "k", "<Up>":
			sample.ScrollUp()
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			grid.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
		}
		ui.Render(grid)
	}
	return nil
}
