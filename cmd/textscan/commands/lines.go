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

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/textscan/cmd/textscan/opts"
	"github.com/walteh/textscan/pkg/report"
	"github.com/walteh/textscan/pkg/scan"
	"github.com/walteh/textscan/pkg/textrange"
	"gitlab.com/tozd/go/errors"
)

// NewLinesCmd creates the lines command
func NewLinesCmd(o *opts.RootOpts) *cobra.Command {
	var (
		keywords   []string
		excludes   []string
		ignoreCase bool
		wholeWord  bool
		maxMatches int
	)

	cmd := &cobra.Command{
		Use:   "lines [files...]",
		Short: "Find lines containing every include keyword and no exclude keyword",
		Long: `Lines matches line by line: a line is reported when every --keyword
appears in it and none of the --exclude keywords do. Keywords are matched
literally. With a --profile, the profile's keyword sets are used unless
overridden on the command line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "lines").Logger().WithContext(cmd.Context())

			// Profile keyword sets apply when the flags are untouched
			if o.Profile != nil {
				if !cmd.Flags().Changed("keyword") {
					keywords = o.Profile.Search.Keywords
				}
				if !cmd.Flags().Changed("exclude") {
					excludes = o.Profile.Search.Exclude
				}
			}
			scanOpts := mergeScanOptions(cmd, o.Profile, ignoreCase, wholeWord, false, maxMatches)

			files, err := resolveFiles(args, o.Globs, o.Ignore)
			if err != nil {
				return errors.Errorf("resolving files: %w", err)
			}

			// No files means scan stdin
			if len(files) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Errorf("reading stdin: %w", err)
				}
				lineMatches, err := scan.FindLines(ctx, []textrange.Block{{Text: string(data)}}, keywords, excludes, scanOpts)
				if err != nil {
					return errors.Errorf("scanning stdin: %w", err)
				}
				for _, lm := range lineMatches {
					fmt.Fprintf(o.Out, "%d:%s\n", lm.Start, report.Highlight(lm.Text, lm.Start, lm.SubMatches))
				}
				return nil
			}

			err = forEachFile(ctx, files, o.Jobs, func(path string) error {
				data, err := os.ReadFile(path)
				if err != nil {
					o.Reporter.LogFileResult(ctx, report.FileResult{Path: path, Err: err})
					return nil
				}

				lineMatches, err := scan.FindLines(ctx, []textrange.Block{{Text: string(data)}}, keywords, excludes, scanOpts)
				if err != nil {
					return errors.Errorf("scanning %s: %w", path, err)
				}

				var b strings.Builder
				for _, lm := range lineMatches {
					fmt.Fprintf(&b, "%s:%d:%s\n", path, lm.Start, report.Highlight(lm.Text, lm.Start, lm.SubMatches))
				}
				fmt.Fprint(o.Out, b.String())

				o.Reporter.LogFileResult(ctx, report.FileResult{Path: path, Matches: len(lineMatches)})
				return nil
			})
			if err != nil {
				return err
			}

			o.Reporter.Summary(ctx)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&keywords, "keyword", "k", nil, "include keyword, every one must appear (repeatable)")
	cmd.Flags().StringArrayVarP(&excludes, "exclude", "x", nil, "exclude keyword, any one vetoes the line (repeatable)")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "match case-insensitively")
	cmd.Flags().BoolVarP(&wholeWord, "word", "w", false, "match whole words only")
	cmd.Flags().IntVarP(&maxMatches, "max", "m", 0, "stop after this many matching lines (0 = unlimited)")

	return cmd
}
