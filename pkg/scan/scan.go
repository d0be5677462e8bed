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

	"github.com/rs/zerolog"
	"github.com/walteh/textscan/pkg/pattern"
	"github.com/walteh/textscan/pkg/textrange"
	"gitlab.com/tozd/go/errors"
)

// Find scans the blocks in order for the keyword and returns every hit in
// absolute-offset ascending order. An empty keyword is a contract violation
// and returns ErrEmptyKeyword. A keyword that fails to compile is user input,
// not a programming error: the result is empty with a nil error. A pattern
// that stalls on the same match index aborts the whole call to an empty
// result rather than looping forever.
func Find(ctx context.Context, blocks []textrange.Block, keyword string, opts Options) ([]Match, error) {
	if keyword == "" {
		return nil, errors.WithStack(ErrEmptyKeyword)
	}

	logger := zerolog.Ctx(ctx)

	pat, err := pattern.Build(keyword, opts.CaseSensitive, opts.WholeWord, opts.Regex)
	if err != nil {
		logger.Debug().Err(err).Str("keyword", keyword).Msg("keyword does not compile, treating as no matches")
		return nil, nil
	}

	var matches []Match
	for _, block := range blocks {
		pat.Reset()
		lastStart := -1
		for {
			if opts.MaxMatches > 0 && len(matches) >= opts.MaxMatches {
				return matches, nil
			}

			start, end, ok := pat.Next(block.Text)
			if !ok {
				break
			}

			// A repeated match index means the pattern matches zero width
			// and will never advance. Abort the whole scan.
			if start == lastStart {
				logger.Debug().Str("keyword", keyword).Int("index", start).Msg("pattern stalled, aborting scan")
				return nil, nil
			}
			lastStart = start

			matches = append(matches, Match{
				Selection: textrange.Selection{
					Start: block.Offset + start,
					End:   block.Offset + end,
				},
				Text: block.Text[start:end],
			})
		}
	}

	logger.Debug().Str("keyword", keyword).Int("matches", len(matches)).Msg("scan complete")
	return matches, nil
}
