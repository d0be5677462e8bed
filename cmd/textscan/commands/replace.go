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

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/textscan/cmd/textscan/opts"
	"github.com/walteh/textscan/pkg/replace"
	"github.com/walteh/textscan/pkg/report"
	"github.com/walteh/textscan/pkg/scan"
	"github.com/walteh/textscan/pkg/textrange"
	"gitlab.com/tozd/go/errors"
)

// NewReplaceCmd creates the replace command
func NewReplaceCmd(o *opts.RootOpts) *cobra.Command {
	var (
		ignoreCase bool
		wholeWord  bool
		regex      bool
		maxMatches int
		write      bool
		cursor     int
	)

	cmd := &cobra.Command{
		Use:   "replace <keyword> <replacement> [files...]",
		Short: "Replace every occurrence of a keyword",
		Long: `Replace rewrites every match of the keyword with the replacement text.
The replacement is inserted verbatim; backreferences like $1 are not
interpreted. Without --write the rewritten content goes to stdout (stdin
and single-file mode) or is only counted (multi-file mode).`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "replace").Logger().WithContext(cmd.Context())
			logger := zerolog.Ctx(ctx)

			keyword, replacement := args[0], args[1]
			scanOpts := mergeScanOptions(cmd, o.Profile, ignoreCase, wholeWord, regex, maxMatches)

			files, err := resolveFiles(args[2:], o.Globs, o.Ignore)
			if err != nil {
				return errors.Errorf("resolving files: %w", err)
			}

			// No files means filter stdin to stdout
			if len(files) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Errorf("reading stdin: %w", err)
				}
				text := string(data)

				matches, err := scan.Find(ctx, []textrange.Block{{Text: text}}, keyword, scanOpts)
				if err != nil {
					return errors.Errorf("scanning stdin: %w", err)
				}

				result := replace.Replace(text, replacement, matches, cursor)
				fmt.Fprint(o.Out, result.Text)
				logger.Info().
					Int("replacements", result.ReplacementCount).
					Int("cursor", result.Cursor).
					Msg("stdin rewritten")
				return nil
			}

			err = forEachFile(ctx, files, o.Jobs, func(path string) error {
				info, err := os.Stat(path)
				if err != nil {
					o.Reporter.LogFileResult(ctx, report.FileResult{Path: path, Err: err})
					return nil
				}
				data, err := os.ReadFile(path)
				if err != nil {
					o.Reporter.LogFileResult(ctx, report.FileResult{Path: path, Err: err})
					return nil
				}
				text := string(data)

				matches, err := scan.Find(ctx, []textrange.Block{{Text: text}}, keyword, scanOpts)
				if err != nil {
					return errors.Errorf("scanning %s: %w", path, err)
				}

				res := report.FileResult{Path: path, Matches: len(matches)}
				if len(matches) > 0 && write {
					result := replace.Replace(text, replacement, matches, 0)
					if err := os.WriteFile(path, []byte(result.Text), info.Mode()); err != nil {
						res.Err = errors.Errorf("writing %s: %w", path, err)
						o.Reporter.LogFileResult(ctx, res)
						return nil
					}
					res.Replacements = result.ReplacementCount
				}
				o.Reporter.LogFileResult(ctx, res)
				return nil
			})
			if err != nil {
				return err
			}

			if !write {
				o.Reporter.Warningf("dry run, pass --write to rewrite files")
			}
			o.Reporter.Summary(ctx)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "match case-insensitively")
	cmd.Flags().BoolVarP(&wholeWord, "word", "w", false, "match whole words only")
	cmd.Flags().BoolVarP(&regex, "regex", "e", false, "treat the keyword as a regular expression")
	cmd.Flags().IntVarP(&maxMatches, "max", "m", 0, "stop after this many matches (0 = unlimited)")
	cmd.Flags().BoolVar(&write, "write", false, "rewrite matching files in place")
	cmd.Flags().IntVar(&cursor, "cursor", 0, "cursor position to carry through the edits (stdin mode)")

	return cmd
}
