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
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
)

// ColorScheme holds the dashboard palette.
type ColorScheme struct {
	Primary   ui.Color
	Accent    ui.Color
	Bar       ui.Color
	Border    ui.Color
	Text      ui.Color
	TextMuted ui.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// ANSI escapes for plain stdout output, set by InitializeColors.
var (
	Green  = "\033[92m"
	Cyan   = "\033[96m"
	Yellow = "\033[93m"
	Red    = "\033[91m"
	Reset  = "\033[0m"
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:   ui.Color(4),
		Accent:    ui.ColorMagenta,
		Bar:       ui.Color(2),
		Border:    ui.Color(8),
		Text:      ui.ColorBlack,
		TextMuted: ui.Color(240),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:   ui.Color(6),
		Accent:    ui.ColorMagenta,
		Bar:       ui.Color(14),
		Border:    ui.Color(240),
		Text:      ui.ColorWhite,
		TextMuted: ui.Color(245),
	}
}

// InitializeColors detects terminal mode and sets up the palette and ANSI escapes.
// With color disabled every ANSI escape is empty.
func InitializeColors(color bool) {
	detectedMode = detectTerminalMode()

	if detectedMode == TerminalModeLight {
		currentColorScheme = createLightColorScheme()
		Green, Cyan, Yellow, Red = "\033[32m", "\033[34m", "\033[33m", "\033[31m"
	} else {
		currentColorScheme = createDarkColorScheme()
		Green, Cyan, Yellow, Red = "\033[92m", "\033[96m", "\033[93m", "\033[91m"
	}
	Reset = "\033[0m"

	if !color {
		Green, Cyan, Yellow, Red, Reset = "", "", "", "", ""
	}
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors(true)
	}
	return currentColorScheme
}

func StyleBorder() ui.Style {
	return ui.NewStyle(GetColorScheme().Border)
}

func StyleTitle() ui.Style {
	scheme := GetColorScheme()
	return ui.NewStyle(scheme.Primary, ui.ColorClear, ui.ModifierBold)
}

func StyleText() ui.Style {
	return ui.NewStyle(GetColorScheme().Text)
}
