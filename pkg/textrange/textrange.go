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

// Package textrange holds the offset value types shared by the scanner and
// replacer: absolute selections, searchable blocks, and line ranges.
package textrange

import (
	"strings"
)

// 📐 Selection is a pair of absolute document offsets, end exclusive.
type Selection struct {
	Start int // Absolute offset of the first byte
	End   int // Absolute offset one past the last byte
}

// Len returns the number of bytes covered by the selection.
func (s Selection) Len() int {
	return s.End - s.Start
}

// 📄 Block is one searchable span of the full document. Offset is the
// absolute position of Text[0] in the document; blocks are expected to be
// disjoint and supplied in document order.
type Block struct {
	Offset int    // Absolute position of the block's first byte
	Text   string // The block's content
}

// 📏 LineRange is one line's start/end offsets relative to the text it was
// computed from, line terminator excluded.
type LineRange struct {
	Start int
	End   int
}

// Of returns the line's text, terminator excluded. The text must be the same
// string the range was computed from.
func (lr LineRange) Of(text string) string {
	return text[lr.Start:lr.End]
}

// Lines splits text into ordered, non-overlapping line ranges. Both LF and
// CRLF terminators are recognized and excluded from the ranges. Text ending
// in a terminator yields no trailing empty line.
func Lines(text string) []LineRange {
	if text == "" {
		return nil
	}

	ranges := make([]LineRange, 0, strings.Count(text, "\n")+1)
	pos := 0
	for pos < len(text) {
		start := pos
		end := len(text)
		if idx := strings.IndexByte(text[pos:], '\n'); idx >= 0 {
			end = pos + idx
			pos = end + 1
		} else {
			pos = len(text)
		}

		// Strip trailing \r for CRLF terminators
		if end > start && text[end-1] == '\r' {
			end--
		}

		ranges = append(ranges, LineRange{Start: start, End: end})
	}

	return ranges
}
