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
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".bintree.yaml"

type TreeConfig struct {
	Variant string `yaml:"variant"`
}

type DisplayConfig struct {
	AutoPrint bool `yaml:"auto_print"`
	Color     bool `yaml:"color"`
}

type BenchConfig struct {
	Keys              int     `yaml:"keys"`
	MaxKey            int     `yaml:"max_key"`
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
	Seed              int64   `yaml:"seed"` // 0 seeds from the clock
}

type Config struct {
	Tree    TreeConfig    `yaml:"tree"`
	Display DisplayConfig `yaml:"display"`
	Bench   BenchConfig   `yaml:"bench"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		Variant: VariantAVL,
	},
	Display: DisplayConfig{
		AutoPrint: false,
		Color:     true,
	},
	Bench: BenchConfig{
		Keys:              10000,
		MaxKey:            1000000,
		FalsePositiveRate: 0.01,
	},
}

// LoadConfig reads ~/.bintree.yaml. A missing or unreadable file yields the defaults.
func LoadConfig() *Config {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the given file; fields absent from it keep their defaults.
func LoadConfigFrom(configPath string) *Config {
	config := defaultConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read %s: %v. Using default settings.", configPath, err)
		}
		return &config
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		log.Printf("Failed to parse %s: %v. Using default settings.", configPath, err)
		config = defaultConfig
		return &config
	}

	config.normalize()
	return &config
}

// normalize replaces out-of-range values with defaults.
func (c *Config) normalize() {
	if _, err := NewTree(c.Tree.Variant); err != nil {
		log.Printf("Ignoring tree.variant: %v", err)
		c.Tree.Variant = defaultConfig.Tree.Variant
	}
	if c.Bench.Keys <= 0 {
		c.Bench.Keys = defaultConfig.Bench.Keys
	}
	if c.Bench.MaxKey <= 0 {
		c.Bench.MaxKey = defaultConfig.Bench.MaxKey
	}
	if c.Bench.FalsePositiveRate <= 0 || c.Bench.FalsePositiveRate >= 1 {
		c.Bench.FalsePositiveRate = defaultConfig.Bench.FalsePositiveRate
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// displaySettings prints the active configuration, creating the file if needed.
func displaySettings(w io.Writer, configPath string) error {
	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		created = true
	}

	config := LoadConfigFrom(configPath)

	fmt.Fprintf(w, "🔧 bintree Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)
	}

	fmt.Fprintf(w, "🌳 %sTree:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %svariant%s: %s\n\n", Green, Reset, config.Tree.Variant)

	fmt.Fprintf(w, "🖥  %sDisplay:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sauto_print%s: %t\n", Green, Reset, config.Display.AutoPrint)
	fmt.Fprintf(w, "  • %scolor%s: %t\n\n", Green, Reset, config.Display.Color)

	fmt.Fprintf(w, "⏱  %sBench:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %skeys%s: %d\n", Green, Reset, config.Bench.Keys)
	fmt.Fprintf(w, "  • %smax_key%s: %d\n", Green, Reset, config.Bench.MaxKey)
	fmt.Fprintf(w, "  • %sfalse_positive_rate%s: %g\n", Green, Reset, config.Bench.FalsePositiveRate)
	fmt.Fprintf(w, "  • %sseed%s: %d\n", Green, Reset, config.Bench.Seed)
	return nil
}
