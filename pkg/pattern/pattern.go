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

// Package pattern compiles search keywords into reusable patterns that carry
// an explicit scan cursor, so callers control exactly where each scan resumes.
package pattern

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// 🔍 Pattern is a compiled keyword plus the position the next scan starts
// from. A Pattern is not safe for concurrent use; concurrent scans need
// independent instances.
type Pattern struct {
	re  *regexp.Regexp
	pos int
}

// Build compiles a keyword for document-mode scanning (multiline anchors
// active). When isRegex is false the keyword is escaped so every character
// matches literally. wholeWord wraps the pattern in word-boundary anchors on
// both sides. A malformed regular expression returns an error; callers treat
// that as user input producing zero matches, not a fatal condition.
func Build(keyword string, caseSensitive, wholeWord, isRegex bool) (*Pattern, error) {
	return build(keyword, caseSensitive, wholeWord, isRegex, true)
}

// BuildLine compiles a keyword for per-line scanning. Multiline anchors are
// irrelevant on terminator-free lines, so the flag is omitted.
func BuildLine(keyword string, caseSensitive, wholeWord, isRegex bool) (*Pattern, error) {
	return build(keyword, caseSensitive, wholeWord, isRegex, false)
}

func build(keyword string, caseSensitive, wholeWord, isRegex, multiline bool) (*Pattern, error) {
	body := keyword
	if !isRegex {
		body = regexp.QuoteMeta(keyword)
	}
	if wholeWord {
		body = `\b(?:` + body + `)\b`
	}

	var flags string
	if !caseSensitive {
		flags += "i"
	}
	if multiline {
		flags += "m"
	}
	if flags != "" {
		body = "(?" + flags + ")" + body
	}

	re, err := regexp.Compile(body)
	if err != nil {
		return nil, errors.Errorf("compiling pattern %q: %w", keyword, err)
	}

	return &Pattern{re: re}, nil
}

// Reset moves the scan cursor back to the start of the text.
func (p *Pattern) Reset() {
	p.pos = 0
}

// Next reports the next match at or after the scan cursor and advances the
// cursor to the match end. A zero-width match leaves the cursor in place, so
// repeated calls report the same start index forever; scan loops must guard
// against that before trusting ok.
func (p *Pattern) Next(text string) (start, end int, ok bool) {
	if p.pos > len(text) {
		return 0, 0, false
	}

	loc := p.re.FindStringIndex(text[p.pos:])
	if loc == nil {
		p.pos = len(text) + 1
		return 0, 0, false
	}

	start = p.pos + loc[0]
	end = p.pos + loc[1]
	p.pos = end
	return start, end, true
}
