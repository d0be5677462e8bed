// Copyright 2025 walteh LLC
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

// Package commands implements the textscan subcommands.
package commands

import (
	"context"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/walteh/textscan/pkg/config"
	"github.com/walteh/textscan/pkg/scan"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// resolveFiles expands positional paths and --glob patterns into the file
// list to scan, dropping anything matched by an --ignore pattern.
func resolveFiles(paths, globs, ignore []string) ([]string, error) {
	files := make([]string, 0, len(paths))
	files = append(files, paths...)

	for _, g := range globs {
		matches, err := doublestar.FilepathGlob(g)
		if err != nil {
			return nil, errors.Errorf("expanding glob %q: %w", g, err)
		}
		files = append(files, matches...)
	}

	kept := make([]string, 0, len(files))
	for _, file := range files {
		ignored, err := isIgnored(file, ignore)
		if err != nil {
			return nil, err
		}
		if !ignored {
			kept = append(kept, file)
		}
	}
	return kept, nil
}

// isIgnored checks the file path against every ignore pattern.
func isIgnored(file string, ignore []string) (bool, error) {
	for _, pattern := range ignore {
		ok, err := doublestar.Match(pattern, filepath.ToSlash(file))
		if err != nil {
			return false, errors.Errorf("matching ignore pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// forEachFile runs fn for every file, at most jobs at a time. Each call gets
// its own compiled patterns inside the scanners, so the library's
// single-threaded contract holds per file.
func forEachFile(ctx context.Context, files []string, jobs int, fn func(path string) error) error {
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for _, path := range files {
		path := path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return fn(path)
			}
		})
	}
	return g.Wait()
}

// mergeScanOptions starts from the profile's search settings (when one is
// loaded) and lets explicitly set flags override them.
func mergeScanOptions(cmd *cobra.Command, profile *config.Profile, ignoreCase, wholeWord, regex bool, maxMatches int) scan.Options {
	o := scan.Options{
		CaseSensitive: !ignoreCase,
		WholeWord:     wholeWord,
		Regex:         regex,
		MaxMatches:    maxMatches,
	}
	if profile == nil {
		return o
	}

	s := profile.Search
	if !cmd.Flags().Changed("ignore-case") {
		o.CaseSensitive = s.CaseSensitive
	}
	if !cmd.Flags().Changed("word") {
		o.WholeWord = s.WholeWord
	}
	if regexFlag := cmd.Flags().Lookup("regex"); regexFlag != nil && !regexFlag.Changed {
		o.Regex = s.Regex
	}
	if !cmd.Flags().Changed("max") {
		o.MaxMatches = s.MaxMatches
	}
	return o
}
