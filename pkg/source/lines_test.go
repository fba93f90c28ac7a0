package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/livemark/pkg/source"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []source.LineInfo
	}{
		{
			name:    "empty document",
			content: "",
			want:    []source.LineInfo{},
		},
		{
			name:    "single line no newline",
			content: "hello",
			want: []source.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 5},
			},
		},
		{
			name:    "two lines",
			content: "a\nb",
			want: []source.LineInfo{
				{StartOffset: 0, NewlineStart: 1, EndOffset: 2},
				{StartOffset: 2, NewlineStart: 3, EndOffset: 3},
			},
		},
		{
			name:    "trailing newline yields empty last line",
			content: "a\n",
			want: []source.LineInfo{
				{StartOffset: 0, NewlineStart: 1, EndOffset: 2},
				{StartOffset: 2, NewlineStart: 2, EndOffset: 2},
			},
		},
		{
			name:    "crlf endings",
			content: "a\r\nb",
			want: []source.LineInfo{
				{StartOffset: 0, NewlineStart: 1, EndOffset: 3},
				{StartOffset: 3, NewlineStart: 4, EndOffset: 4},
			},
		},
		{
			name:    "blank line in the middle",
			content: "a\n\nb",
			want: []source.LineInfo{
				{StartOffset: 0, NewlineStart: 1, EndOffset: 2},
				{StartOffset: 2, NewlineStart: 2, EndOffset: 3},
				{StartOffset: 3, NewlineStart: 4, EndOffset: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := source.BuildLines([]byte(tt.content))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocument_LineAt(t *testing.T) {
	t.Parallel()

	doc := source.NewDocument([]byte("first\nsecond\nthird"))

	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{name: "start of first line", offset: 0, want: 0},
		{name: "middle of first line", offset: 3, want: 0},
		{name: "newline belongs to its line", offset: 5, want: 0},
		{name: "start of second line", offset: 6, want: 1},
		{name: "start of third line", offset: 13, want: 2},
		{name: "end of content maps to last line", offset: 18, want: 2},
		{name: "past end clamps to last line", offset: 100, want: 2},
		{name: "negative offset", offset: -1, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, doc.LineAt(tt.offset))
		})
	}
}

func TestDocument_LineAt_EmptyDocument(t *testing.T) {
	t.Parallel()

	doc := source.NewDocument(nil)
	assert.Equal(t, -1, doc.LineAt(0))
	assert.Equal(t, 0, doc.LineCount())
}

func TestDocument_LineRange(t *testing.T) {
	t.Parallel()

	doc := source.NewDocument([]byte("ab\ncd\n"))

	// Line ranges exclude the newline.
	assert.Equal(t, source.Range{From: 0, To: 2}, doc.LineRange(0))
	assert.Equal(t, source.Range{From: 3, To: 5}, doc.LineRange(1))

	// Out of range lines give an empty range.
	assert.Equal(t, source.Range{}, doc.LineRange(-1))
	assert.Equal(t, source.Range{}, doc.LineRange(99))
}

func TestDocument_LineText(t *testing.T) {
	t.Parallel()

	doc := source.NewDocument([]byte("# Title\r\nbody\n"))

	require.Equal(t, 3, doc.LineCount())
	assert.Equal(t, "# Title", doc.LineText(0))
	assert.Equal(t, "body", doc.LineText(1))
	assert.Equal(t, "", doc.LineText(2))
	assert.Equal(t, "", doc.LineText(99))
}
