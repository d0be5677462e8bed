package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name          string
		keyword       string
		caseSensitive bool
		wholeWord     bool
		isRegex       bool
		text          string
		wantStart     int
		wantEnd       int
		wantMiss      bool
		wantError     bool
	}{
		{
			name:          "literal_match",
			keyword:       "foo",
			caseSensitive: true,
			text:          "hello foo bar",
			wantStart:     6,
			wantEnd:       9,
		},
		{
			name:          "literal_escapes_metacharacters",
			keyword:       "a.b",
			caseSensitive: true,
			text:          "axb a.b",
			wantStart:     4,
			wantEnd:       7,
		},
		{
			name:          "case_insensitive",
			keyword:       "FOO",
			caseSensitive: false,
			text:          "hello foo bar",
			wantStart:     6,
			wantEnd:       9,
		},
		{
			name:          "case_sensitive_miss",
			keyword:       "FOO",
			caseSensitive: true,
			text:          "hello foo bar",
			wantMiss:      true,
		},
		{
			name:          "whole_word_skips_substring",
			keyword:       "foo",
			caseSensitive: true,
			wholeWord:     true,
			text:          "foofoo foo",
			wantStart:     7,
			wantEnd:       10,
		},
		{
			name:          "whole_word_wraps_alternation",
			keyword:       "foo|bar",
			caseSensitive: true,
			wholeWord:     true,
			isRegex:       true,
			text:          "xbarx bar",
			wantStart:     6,
			wantEnd:       9,
		},
		{
			name:          "regex_keyword",
			keyword:       "fo+",
			caseSensitive: true,
			isRegex:       true,
			text:          "f foo",
			wantStart:     2,
			wantEnd:       5,
		},
		{
			name:      "malformed_regex",
			keyword:   "(",
			isRegex:   true,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pat, err := Build(tt.keyword, tt.caseSensitive, tt.wholeWord, tt.isRegex)
			if tt.wantError {
				require.Error(t, err, "compiling keyword")
				return
			}
			require.NoError(t, err, "compiling keyword")

			start, end, ok := pat.Next(tt.text)
			if tt.wantMiss {
				assert.False(t, ok, "should not match")
				return
			}
			require.True(t, ok, "should match")
			assert.Equal(t, tt.wantStart, start, "match start")
			assert.Equal(t, tt.wantEnd, end, "match end")
		})
	}
}

func TestBuild_MultilineAnchors(t *testing.T) {
	text := "foo\nbar"

	// Document mode: ^ anchors at every line start
	pat, err := Build("^bar", true, false, true)
	require.NoError(t, err, "compiling document-mode pattern")
	start, _, ok := pat.Next(text)
	require.True(t, ok, "multiline anchor should match after newline")
	assert.Equal(t, 4, start, "match start")

	// Line mode: ^ anchors only at the start of the text
	linePat, err := BuildLine("^bar", true, false, true)
	require.NoError(t, err, "compiling line-mode pattern")
	_, _, ok = linePat.Next(text)
	assert.False(t, ok, "line mode should not anchor mid-text")
}

func TestPattern_NextAndReset(t *testing.T) {
	pat, err := Build("ab", true, false, false)
	require.NoError(t, err, "compiling keyword")

	text := "ab ab"

	start, end, ok := pat.Next(text)
	require.True(t, ok, "first match")
	assert.Equal(t, 0, start, "first match start")
	assert.Equal(t, 2, end, "first match end")

	start, _, ok = pat.Next(text)
	require.True(t, ok, "second match")
	assert.Equal(t, 3, start, "second match start")

	_, _, ok = pat.Next(text)
	assert.False(t, ok, "scan exhausted")

	// After exhaustion the cursor stays past the end
	_, _, ok = pat.Next(text)
	assert.False(t, ok, "scan stays exhausted")

	pat.Reset()
	start, _, ok = pat.Next(text)
	require.True(t, ok, "match after reset")
	assert.Equal(t, 0, start, "reset rewinds to the start")
}

func TestPattern_ZeroWidthMatchStalls(t *testing.T) {
	pat, err := Build("a*", true, false, true)
	require.NoError(t, err, "compiling keyword")

	text := "bbb"

	start1, end1, ok := pat.Next(text)
	require.True(t, ok, "zero-width match reported")
	assert.Equal(t, start1, end1, "match is zero width")

	// The cursor does not advance, so the same index repeats forever.
	start2, _, ok := pat.Next(text)
	require.True(t, ok, "zero-width match reported again")
	assert.Equal(t, start1, start2, "stalled at the same index")
}
