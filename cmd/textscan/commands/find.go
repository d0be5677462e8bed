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

// NewFindCmd creates the find command
func NewFindCmd(o *opts.RootOpts) *cobra.Command {
	var (
		ignoreCase bool
		wholeWord  bool
		regex      bool
		maxMatches int
	)

	cmd := &cobra.Command{
		Use:   "find <keyword> [files...]",
		Short: "Find every occurrence of a keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "find").Logger().WithContext(cmd.Context())

			keyword := args[0]
			scanOpts := mergeScanOptions(cmd, o.Profile, ignoreCase, wholeWord, regex, maxMatches)

			files, err := resolveFiles(args[1:], o.Globs, o.Ignore)
			if err != nil {
				return errors.Errorf("resolving files: %w", err)
			}

			// No files means scan stdin
			if len(files) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Errorf("reading stdin: %w", err)
				}
				matches, err := scan.Find(ctx, []textrange.Block{{Text: string(data)}}, keyword, scanOpts)
				if err != nil {
					return errors.Errorf("scanning stdin: %w", err)
				}
				for _, m := range matches {
					fmt.Fprintf(o.Out, "%d:%d:%s\n", m.Start, m.End, m.Text)
				}
				return nil
			}

			err = forEachFile(ctx, files, o.Jobs, func(path string) error {
				data, err := os.ReadFile(path)
				if err != nil {
					o.Reporter.LogFileResult(ctx, report.FileResult{Path: path, Err: err})
					return nil
				}

				matches, err := scan.Find(ctx, []textrange.Block{{Text: string(data)}}, keyword, scanOpts)
				if err != nil {
					return errors.Errorf("scanning %s: %w", path, err)
				}

				// One write per file keeps parallel output unmangled
				var b strings.Builder
				for _, m := range matches {
					fmt.Fprintf(&b, "%s:%d:%d:%s\n", path, m.Start, m.End, m.Text)
				}
				fmt.Fprint(o.Out, b.String())

				o.Reporter.LogFileResult(ctx, report.FileResult{Path: path, Matches: len(matches)})
				return nil
			})
			if err != nil {
				return err
			}

			o.Reporter.Summary(ctx)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "match case-insensitively")
	cmd.Flags().BoolVarP(&wholeWord, "word", "w", false, "match whole words only")
	cmd.Flags().BoolVarP(&regex, "regex", "e", false, "treat the keyword as a regular expression")
	cmd.Flags().IntVarP(&maxMatches, "max", "m", 0, "stop after this many matches (0 = unlimited)")

	return cmd
}
