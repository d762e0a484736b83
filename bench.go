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
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

type BenchOptions struct {
	Variant           string
	Keys              int
	MaxKey            int
	FalsePositiveRate float64
	Seed              int64
	Progress          io.Writer // nil disables the progress bars
}

type BenchResult struct {
	Variant    string
	Requested  int
	Generated  int
	Found      int
	Height     int
	Bound      float64
	CheckErr   error
	Emptied    bool
	InsertTime time.Duration
	SearchTime time.Duration
	RemoveTime time.Duration
}

func benchOptionsFromConfig(config *Config) BenchOptions {
	return BenchOptions{
		Variant:           config.Tree.Variant,
		Keys:              config.Bench.Keys,
		MaxKey:            config.Bench.MaxKey,
		FalsePositiveRate: config.Bench.FalsePositiveRate,
		Seed:              config.Bench.Seed,
	}
}

// heightBound is the AVL worst case used as the acceptance line.
func heightBound(n int) float64 {
	return 1.45 * math.Log2(float64(n+2))
}

// generateKeys draws random keys in [0, maxKey) and uses a bloom filter to
// skip keys already drawn. A false positive only drops a fresh key, so the
// result never holds duplicates. It may return fewer than n keys when the
// key space is too small.
func generateKeys(rng *rand.Rand, n, maxKey int, falsePositiveRate float64) []int {
	filter := bloom.NewWithEstimates(uint(n), falsePositiveRate)
	keys := make([]int, 0, n)

	for attempts := 0; len(keys) < n && attempts < 20*n; attempts++ {
		key := rng.Intn(maxKey)
		s := strconv.Itoa(key)
		if filter.TestString(s) {
			continue
		}
		filter.AddString(s)
		keys = append(keys, key)
	}
	return keys
}

func newBenchBar(w io.Writer, total int, description string) *progressbar.ProgressBar {
	if w == nil {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(50*time.Millisecond),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}

// phase applies op to every key, ticking the bar when there is one.
func phase(keys []int, bar *progressbar.ProgressBar, op func(int)) time.Duration {
	start := time.Now()
	for _, key := range keys {
		op(key)
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return time.Since(start)
}

// buildRandomTree fills a tree of the chosen variant with a random workload.
func buildRandomTree(opts BenchOptions) (OrderedTree, []int, *rand.Rand, error) {
	tree, err := NewTree(opts.Variant)
	if err != nil {
		return nil, nil, nil, err
	}
	if opts.Keys <= 0 || opts.MaxKey <= 0 {
		return nil, nil, nil, fmt.Errorf("bench needs positive keys and max key, got %d and %d", opts.Keys, opts.MaxKey)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	keys := generateKeys(rng, opts.Keys, opts.MaxKey, opts.FalsePositiveRate)
	return tree, keys, rng, nil
}

// runBench inserts, searches and removes a random workload.
func runBench(opts BenchOptions) (*BenchResult, error) {
	tree, keys, rng, err := buildRandomTree(opts)
	if err != nil {
		return nil, err
	}

	result := &BenchResult{Variant: opts.Variant, Requested: opts.Keys, Generated: len(keys)}

	result.InsertTime = phase(keys, newBenchBar(opts.Progress, len(keys), "🌱 Inserting"), tree.Insert)
	result.Height = tree.Height()
	result.Bound = heightBound(tree.Len())
	result.CheckErr = tree.Check()

	result.SearchTime = phase(keys, newBenchBar(opts.Progress, len(keys), "🔍 Searching"), func(key int) {
		if tree.Contains(key) {
			result.Found++
		}
	})

	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	result.RemoveTime = phase(keys, newBenchBar(opts.Progress, len(keys), "🧹 Removing"), tree.Remove)
	result.Emptied = tree.IsEmpty() && tree.Len() == 0

	return result, nil
}

func (r *BenchResult) Write(w io.Writer) {
	fmt.Fprintf(w, "variant:   %s\n", r.Variant)
	fmt.Fprintf(w, "keys:      %d distinct of %d requested\n", r.Generated, r.Requested)
	fmt.Fprintf(w, "insert:    %v\n", r.InsertTime)
	fmt.Fprintf(w, "search:    %v (%d found)\n", r.SearchTime, r.Found)
	fmt.Fprintf(w, "remove:    %v\n", r.RemoveTime)

	status := Green + "within" + Reset
	if float64(r.Height) > r.Bound {
		status = Yellow + "above" + Reset
	}
	fmt.Fprintf(w, "height:    %d (%s bound %.2f)\n", r.Height, status, r.Bound)

	if r.CheckErr != nil {
		fmt.Fprintf(w, "check:     %s%v%s\n", Red, r.CheckErr, Reset)
	} else {
		fmt.Fprintf(w, "check:     %sok%s\n", Green, Reset)
	}
	fmt.Fprintf(w, "emptied:   %t\n", r.Emptied)
}
