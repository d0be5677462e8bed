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

// Package scan finds keyword occurrences inside disjoint blocks of a larger
// document, reporting every hit with absolute document offsets. It supports
// literal, whole-word and regular-expression matching plus a line-oriented
// multi-keyword mode with include (AND) and exclude (OR veto) sets.
package scan

import (
	"github.com/walteh/textscan/pkg/textrange"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrEmptyKeyword is returned by Find when the keyword is empty.
	ErrEmptyKeyword = errors.New("keyword is required")

	// ErrNoKeywords is returned by FindLines when both keyword sets are empty.
	ErrNoKeywords = errors.New("at least one include or exclude keyword is required")
)

// 🎯 Match is a single keyword hit: its absolute selection in the document
// plus the matched text. Selection.Len() always equals len(Text).
type Match struct {
	textrange.Selection
	Text string // The matched text
}

// 🎯 SubMatch is one include-keyword hit inside a matched line. Offset is
// absolute (document-relative), not line-relative.
type SubMatch struct {
	Offset int    // Absolute offset of the hit
	Text   string // The matched text
}

// 🎯 LineMatch is a matching line plus the include-keyword hits inside it,
// sorted ascending by offset. SubMatches is empty when only exclude keywords
// were searched.
type LineMatch struct {
	Match
	SubMatches []SubMatch
}

// ⚙️ Options control keyword compilation and result collection.
type Options struct {
	CaseSensitive bool // Match case exactly
	WholeWord     bool // Require word boundaries on both sides
	Regex         bool // Treat the keyword as a regular expression (Find only; line mode is always literal)
	MaxMatches    int  // Stop after this many results, 0 means unlimited
}
