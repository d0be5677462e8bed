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

package scan

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/walteh/textscan/pkg/pattern"
	"github.com/walteh/textscan/pkg/textrange"
	"gitlab.com/tozd/go/errors"
)

// FindLines scans the blocks line by line and returns the lines where every
// include keyword appears (AND) and no exclude keyword appears (OR veto).
// Keywords are matched literally; Options.Regex is ignored here. Blank lines
// never match. Both sets empty is a contract violation and returns
// ErrNoKeywords; keywords that fail to compile are silently dropped from
// their set. Options.MaxMatches bounds the number of line matches.
func FindLines(ctx context.Context, blocks []textrange.Block, includeKeywords, excludeKeywords []string, opts Options) ([]LineMatch, error) {
	if len(includeKeywords) == 0 && len(excludeKeywords) == 0 {
		return nil, errors.WithStack(ErrNoKeywords)
	}

	logger := zerolog.Ctx(ctx)

	includes := compileLineKeywords(ctx, includeKeywords, opts)
	excludes := compileLineKeywords(ctx, excludeKeywords, opts)
	if len(includes) == 0 && len(excludes) == 0 {
		return nil, nil
	}

	var lineMatches []LineMatch
	for _, block := range blocks {
		if opts.MaxMatches > 0 && len(lineMatches) >= opts.MaxMatches {
			break
		}

		for _, lr := range textrange.Lines(block.Text) {
			lineText := lr.Of(block.Text)
			if lineText == "" {
				continue
			}

			lineStart := block.Offset + lr.Start

			subMatches := findKeywords(includes, lineText, lineStart, opts.MaxMatches)
			if len(includes) > 0 && len(subMatches) == 0 {
				continue
			}
			if !allExcluded(excludes, lineText) {
				continue
			}

			lineMatches = append(lineMatches, LineMatch{
				Match: Match{
					Selection: textrange.Selection{
						Start: lineStart,
						End:   block.Offset + lr.End,
					},
					Text: lineText,
				},
				SubMatches: subMatches,
			})

			if opts.MaxMatches > 0 && len(lineMatches) >= opts.MaxMatches {
				logger.Debug().Int("limit", opts.MaxMatches).Msg("line match limit reached")
				return lineMatches, nil
			}
		}
	}

	return lineMatches, nil
}

// compileLineKeywords compiles each keyword as a literal line-mode pattern,
// dropping the ones that do not compile.
func compileLineKeywords(ctx context.Context, keywords []string, opts Options) []*pattern.Pattern {
	patterns := make([]*pattern.Pattern, 0, len(keywords))
	for _, keyword := range keywords {
		pat, err := pattern.BuildLine(keyword, opts.CaseSensitive, opts.WholeWord, false)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Err(err).Str("keyword", keyword).Msg("dropping keyword that does not compile")
			continue
		}
		patterns = append(patterns, pat)
	}
	return patterns
}

// findKeywords collects the hits of every pattern on lineText, shifted by
// lineStart so the reported offsets are absolute. Every pattern must hit at
// least once or the whole call returns nil (AND semantics). maxMatches caps
// accumulation, but later patterns are still required to hit. Results are
// sorted ascending by offset, since hits of different keywords interleave in
// line order.
func findKeywords(patterns []*pattern.Pattern, lineText string, lineStart, maxMatches int) []SubMatch {
	var subMatches []SubMatch
	for _, pat := range patterns {
		pat.Reset()
		found := false
		lastStart := -1
		for {
			start, end, ok := pat.Next(lineText)
			if !ok {
				break
			}

			// Same stall guard as Find, per pattern.
			if start == lastStart {
				return nil
			}
			lastStart = start
			found = true

			if maxMatches > 0 && len(subMatches) >= maxMatches {
				break
			}
			subMatches = append(subMatches, SubMatch{
				Offset: lineStart + start,
				Text:   lineText[start:end],
			})
		}
		if !found {
			return nil
		}
	}

	sort.Slice(subMatches, func(i, j int) bool {
		return subMatches[i].Offset < subMatches[j].Offset
	})
	return subMatches
}

// allExcluded reports whether none of the patterns hit lineText. Any single
// hit disqualifies the line. An empty pattern set trivially passes.
func allExcluded(patterns []*pattern.Pattern, lineText string) bool {
	for _, pat := range patterns {
		pat.Reset()
		if _, _, ok := pat.Next(lineText); ok {
			return false
		}
	}
	return true
}
