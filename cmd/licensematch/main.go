// Copyright 2026 Google Inc.
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

// Command licensematch identifies license text in a set of files against a
// persisted license index. It is the CLI collaborator spec §6 describes as
// external to the matching core: it loads a pre-built index, matches files
// and formats the results. It does not load rules (the index arrives
// already built) and does not parse license expressions (matching runs
// without an ExpressionParser).
//
// Adapted from the teacher's v2/tools/identify_license command: flag-driven
// file list expansion plus a bounded worker pool over the input files, here
// rebuilt on golang.org/x/sync/errgroup instead of a hand-rolled
// channel/WaitGroup pair.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/licensematch/lidx/index"
)

func main() {
	var (
		indexPath = flag.String("index", "", "path to a persisted license index (see index.Save)")
		workers   = flag.Int("workers", 4, "number of files to match concurrently")
		minScore  = flag.Float64("min_score", 0, "drop matches scoring below this percentage")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s -index PATH FILE [FILE ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *indexPath == "" || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*indexPath, flag.Args(), *workers, *minScore); err != nil {
		fmt.Fprintln(os.Stderr, "licensematch:", err)
		os.Exit(1)
	}
}

func run(indexPath string, paths []string, workers int, minScore float64) error {
	f, err := os.Open(indexPath)
	if err != nil {
		return fmt.Errorf("opening index: %w", err)
	}
	idx, err := index.Load(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("loading index: %w", err)
	}

	files, err := expandPaths(paths)
	if err != nil {
		return err
	}

	qopts := index.DefaultQueryOptions()
	qopts.MinScore = minScore

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	results := make([]fileResult, len(files))
	for i, p := range files {
		i, p := i, p
		g.Go(func() error {
			matches, warnings, err := matchFile(ctx, idx, p, qopts)
			results[i] = fileResult{path: p, matches: matches, warnings: warnings, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		printResult(idx, r)
	}
	return nil
}

type fileResult struct {
	path     string
	matches  index.Matches
	warnings []index.Warning
	err      error
}

func matchFile(ctx context.Context, idx *index.Index, path string, qopts index.QueryOptions) (index.Matches, []index.Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	matches, warnings := idx.Match(ctx, index.MatchInput{Text: string(data)}, qopts)
	return matches, warnings, nil
}

func printResult(idx *index.Index, r fileResult) {
	if r.err != nil {
		fmt.Printf("%s: error: %v\n", r.path, r.err)
		return
	}
	if len(r.matches) == 0 {
		fmt.Printf("%s: no license matches\n", r.path)
		return
	}
	for _, m := range r.matches {
		fmt.Printf("%s: %s lines %d-%d score=%.1f coverage=%.1f (%s)\n",
			r.path, m.MatcherKind, m.StartLine, m.EndLine, m.Score, m.Coverage, ruleLabel(idx, m.RuleID))
	}
	for _, w := range r.warnings {
		fmt.Printf("%s: warning[%s]: %s\n", r.path, w.Phase, w.Message)
	}
}

// ruleLabel renders the rule a match is against by identifier, qualified
// with its SPDX license expression when the rule carries one (spec §6
// match output).
func ruleLabel(idx *index.Index, rid index.RuleID) string {
	rule := idx.Rule(rid)
	if rule.LicenseExpression != "" {
		return fmt.Sprintf("%s, %s", rule.Identifier, rule.LicenseExpression)
	}
	return rule.Identifier
}

// expandPaths walks any directory arguments, returning a flat file list, in
// the same "accept files or trees" spirit as the teacher's CLI.
func expandPaths(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		err = filepath.Walk(p, func(walked string, wi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !wi.IsDir() {
				out = append(out, walked)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
