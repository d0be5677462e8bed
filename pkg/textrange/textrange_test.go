package textrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []LineRange
	}{
		{
			name: "empty_text",
			text: "",
			want: nil,
		},
		{
			name: "single_line_no_terminator",
			text: "hello",
			want: []LineRange{{Start: 0, End: 5}},
		},
		{
			name: "two_lines",
			text: "foo\nbar",
			want: []LineRange{{Start: 0, End: 3}, {Start: 4, End: 7}},
		},
		{
			name: "trailing_newline_yields_no_phantom_line",
			text: "foo\n",
			want: []LineRange{{Start: 0, End: 3}},
		},
		{
			name: "crlf_terminator_excluded",
			text: "foo\r\nbar",
			want: []LineRange{{Start: 0, End: 3}, {Start: 5, End: 8}},
		},
		{
			name: "blank_lines_kept_as_empty_ranges",
			text: "\n\n",
			want: []LineRange{{Start: 0, End: 0}, {Start: 1, End: 1}},
		},
		{
			name: "blank_line_between_content",
			text: "a\n\nb",
			want: []LineRange{{Start: 0, End: 1}, {Start: 2, End: 2}, {Start: 3, End: 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.text)
			assert.Equal(t, tt.want, got, "line ranges")

			// Ranges must be ordered and non-overlapping
			for i := 1; i < len(got); i++ {
				assert.Greater(t, got[i].Start, got[i-1].End, "range %d overlaps previous", i)
			}
		})
	}
}

func TestLineRange_Of(t *testing.T) {
	text := "foo\nbar\n"
	lines := Lines(text)

	assert.Equal(t, "foo", lines[0].Of(text), "first line text")
	assert.Equal(t, "bar", lines[1].Of(text), "second line text")
}

func TestSelection_Len(t *testing.T) {
	assert.Equal(t, 3, Selection{Start: 6, End: 9}.Len(), "selection length")
	assert.Equal(t, 0, Selection{Start: 4, End: 4}.Len(), "empty selection length")
}
