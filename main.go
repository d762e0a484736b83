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
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	asciiLogo := `
 ____  _         _____
| __ )(_)_ __   |_   _| __ ___  ___
|  _ \| | '_ \    | || '__/ _ \/ _ \
| |_) | | | | |   | || | |  __/  __/
|____/|_|_| |_|   |_||_|  \___|\___|
Self-balancing AVL and plain binary search trees in your terminal [Version: %s%s%s]

`
	config := LoadConfig()
	InitializeColors(config.Display.Color)

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	startREPL := func(variant string) {
		session, err := NewSession(variant)
		if err != nil {
			log.Fatalf("Error creating session: %v", err)
		}
		session.AutoPrint = true
		if err := runREPL(session, NewRenderCache()); err != nil {
			log.Fatalf("Error running REPL: %v", err)
		}
	}

	var variant string

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Run tree commands from a script, an expression or stdin",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run executes session commands such as "insert 30 20 40; print" and writes their output`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			scriptPath, _ := cmd.Flags().GetString("script")
			expr, _ := cmd.Flags().GetString("exec")
			autoPrint, _ := cmd.Flags().GetBool("auto-print")

			chosen := variant
			var lines []string
			switch {
			case scriptPath != "":
				script, err := LoadScript(scriptPath)
				if err != nil {
					log.Fatalf("Error loading script: %v", err)
				}
				if script.Variant != "" && !cmd.Flags().Changed("variant") {
					chosen = script.Variant
				}
				for _, step := range script.Steps {
					lines = append(lines, SplitCommands(step)...)
				}
			case expr != "":
				lines = SplitCommands(expr)
			default:
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					log.Fatalf("Error reading stdin: %v", err)
				}
				lines = SplitCommands(string(data))
			}

			session, err := NewSession(chosen)
			if err != nil {
				log.Fatalf("Error creating session: %v", err)
			}
			session.AutoPrint = autoPrint
			if err := session.RunLines(os.Stdout, lines); err != nil {
				log.Fatalf("Error running commands: %v", err)
			}
		},
	}
	cmdRun.Flags().String("script", "", "YAML script with a variant and a list of steps")
	cmdRun.Flags().StringP("exec", "e", "", "commands separated by ';'")
	cmdRun.Flags().Bool("auto-print", config.Display.AutoPrint, "print the tree after every change")

	var cmdDemo = &cobra.Command{
		Use:       "demo [avl|bst]",
		Short:     "Walk through the reference insert and remove scenarios",
		Long:      fmt.Sprintf("%s\n%s", asciiLogo, `Demo replays the classic scenarios and prints each traversal`),
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{VariantAVL, VariantBST},
		Run: func(cmd *cobra.Command, args []string) {
			which := ""
			if len(args) == 1 {
				which = strings.ToLower(args[0])
			}
			if which == "" || which == VariantAVL {
				runAVLDemo(os.Stdout)
			}
			if which == "" {
				fmt.Println()
			}
			if which == "" || which == VariantBST {
				runBSTDemo(os.Stdout)
			}
		},
	}

	var cmdPrint = &cobra.Command{
		Use:   "print KEY...",
		Short: "Insert keys and draw the resulting tree",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			keys, err := parseKeys(args)
			if err != nil {
				log.Fatalf("Error parsing keys: %v", err)
			}
			tree, err := NewTree(variant)
			if err != nil {
				log.Fatalf("Error creating tree: %v", err)
			}
			for _, key := range keys {
				tree.Insert(key)
			}
			tree.Print(os.Stdout)
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Insert, search and remove a random workload",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench times a random workload and checks the height against the AVL bound`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			opts := benchOptionsFromConfig(config)
			opts.Variant = variant
			opts.Keys, _ = cmd.Flags().GetInt("keys")
			opts.MaxKey, _ = cmd.Flags().GetInt("max-key")
			opts.Seed, _ = cmd.Flags().GetInt64("seed")
			if noProgress, _ := cmd.Flags().GetBool("no-progress"); !noProgress {
				opts.Progress = os.Stderr
			}

			result, err := runBench(opts)
			if err != nil {
				log.Fatalf("Error running bench: %v", err)
			}
			result.Write(os.Stdout)
		},
	}
	cmdBench.Flags().Int("keys", config.Bench.Keys, "number of keys to generate")
	cmdBench.Flags().Int("max-key", config.Bench.MaxKey, "keys are drawn from [0, max-key)")
	cmdBench.Flags().Int64("seed", config.Bench.Seed, "random seed, 0 seeds from the clock")
	cmdBench.Flags().Bool("no-progress", false, "hide the progress bars")

	var cmdStats = &cobra.Command{
		Use:   "stats",
		Short: "Show a level-by-level dashboard of a random tree",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			opts := benchOptionsFromConfig(config)
			opts.Variant = variant
			opts.Keys, _ = cmd.Flags().GetInt("keys")
			opts.Seed, _ = cmd.Flags().GetInt64("seed")

			tree, keys, _, err := buildRandomTree(opts)
			if err != nil {
				log.Fatalf("Error building tree: %v", err)
			}
			for _, key := range keys {
				tree.Insert(key)
			}
			if err := runDashboard(variant, tree); err != nil {
				log.Fatalf("Error running dashboard: %v", err)
			}
		},
	}
	cmdStats.Flags().Int("keys", 1000, "number of keys to insert")
	cmdStats.Flags().Int64("seed", config.Bench.Seed, "random seed, 0 seeds from the clock")

	var cmdREPL = &cobra.Command{
		Use:   "repl",
		Short: "Open the interactive tree shell",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			startREPL(variant)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print bintree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the bintree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration file, creating it with defaults if needed",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			configPath, err := getConfigPath()
			if err != nil {
				log.Fatalf("Error locating config: %v", err)
			}
			if err := displaySettings(os.Stdout, configPath); err != nil {
				log.Fatalf("Error displaying settings: %v", err)
			}
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print bintree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "bintree",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the REPL when no subcommand is provided
			startREPL(variant)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&variant, "variant", "t", config.Tree.Variant, "tree variant: avl or bst")
	rootCmd.AddCommand(cmdRun, cmdDemo, cmdPrint, cmdBench, cmdStats, cmdREPL, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
