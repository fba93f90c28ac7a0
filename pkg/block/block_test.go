package block_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/livemark/pkg/block"
	"github.com/yaklabco/livemark/pkg/source"
)

func TestParseHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		line         string
		wantOK       bool
		wantLevel    int
		wantComplete bool
		wantMarker   source.Range
	}{
		{
			name:         "level one",
			line:         "# Title",
			wantOK:       true,
			wantLevel:    1,
			wantComplete: true,
			wantMarker:   source.NewRange(0, 2),
		},
		{
			name:         "level three",
			line:         "### Deep",
			wantOK:       true,
			wantLevel:    3,
			wantComplete: true,
			wantMarker:   source.NewRange(0, 4),
		},
		{
			name:       "bare hashes are an incomplete header",
			line:       "##",
			wantOK:     true,
			wantLevel:  2,
			wantMarker: source.NewRange(0, 2),
		},
		{
			name:       "six bare hashes",
			line:       "######",
			wantOK:     true,
			wantLevel:  6,
			wantMarker: source.NewRange(0, 6),
		},
		{
			name:   "single hash tag shape is left for tags",
			line:   "#project",
			wantOK: false,
		},
		{
			name:   "not a header",
			line:   "plain text",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, ok := block.ParseHeader(tt.line, 0)

			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, block.KindHeader, c.Kind)
			assert.Equal(t, tt.wantLevel, c.Level)
			assert.Equal(t, tt.wantComplete, c.Complete)
			assert.Equal(t, tt.wantMarker, c.Marker)
			assert.Equal(t, source.NewRange(0, len(tt.line)), c.Full)
		})
	}
}

func TestParseHeader_SevenHashesCapAtSix(t *testing.T) {
	t.Parallel()

	c, ok := block.ParseHeader("####### too deep", 0)

	require.True(t, ok)
	assert.False(t, c.Complete)
	assert.Equal(t, 6, c.Level)
}

func TestParseListItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		line        string
		wantOK      bool
		wantList    block.ListType
		wantChecked bool
		wantIndent  int
		wantMarker  source.Range
	}{
		{
			name:       "dash bullet",
			line:       "- item",
			wantOK:     true,
			wantList:   block.ListUnordered,
			wantMarker: source.NewRange(0, 2),
		},
		{
			name:       "star bullet",
			line:       "* item",
			wantOK:     true,
			wantList:   block.ListUnordered,
			wantMarker: source.NewRange(0, 2),
		},
		{
			name:       "indented bullet keeps indent out of the marker",
			line:       "  - item",
			wantOK:     true,
			wantList:   block.ListUnordered,
			wantIndent: 2,
			wantMarker: source.NewRange(2, 4),
		},
		{
			name:       "ordered item",
			line:       "1. first",
			wantOK:     true,
			wantList:   block.ListOrdered,
			wantMarker: source.NewRange(0, 3),
		},
		{
			name:       "two digit ordered item",
			line:       "12. twelfth",
			wantOK:     true,
			wantList:   block.ListOrdered,
			wantMarker: source.NewRange(0, 4),
		},
		{
			name:       "unchecked task",
			line:       "- [ ] todo",
			wantOK:     true,
			wantList:   block.ListTask,
			wantMarker: source.NewRange(0, 6),
		},
		{
			name:        "checked task",
			line:        "- [x] done",
			wantOK:      true,
			wantList:    block.ListTask,
			wantChecked: true,
			wantMarker:  source.NewRange(0, 6),
		},
		{
			name:        "uppercase checked task",
			line:        "- [X] done",
			wantOK:      true,
			wantList:    block.ListTask,
			wantChecked: true,
			wantMarker:  source.NewRange(0, 6),
		},
		{
			name:   "bullet without trailing space",
			line:   "-item",
			wantOK: false,
		},
		{
			name:   "number without dot",
			line:   "1 item",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, ok := block.ParseListItem(tt.line, 0)

			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, block.KindListItem, c.Kind)
			assert.Equal(t, tt.wantList, c.List)
			assert.Equal(t, tt.wantChecked, c.Checked)
			assert.Equal(t, tt.wantIndent, c.Indent)
			assert.Equal(t, tt.wantMarker, c.Marker)
		})
	}
}

func TestParseBlockquote(t *testing.T) {
	t.Parallel()

	c, ok := block.ParseBlockquote("> quoted text", 0)

	require.True(t, ok)
	assert.Equal(t, block.KindBlockquote, c.Kind)
	assert.Equal(t, source.NewRange(0, 2), c.Marker, "marker includes the following space")
	assert.Equal(t, source.NewRange(0, 13), c.Full)

	_, ok = block.ParseBlockquote("no quote", 0)
	assert.False(t, ok)
}

func TestParse_Order(t *testing.T) {
	t.Parallel()

	// Header wins over everything else on the same line.
	c, ok := block.Parse("# heading", 0)
	require.True(t, ok)
	assert.Equal(t, block.KindHeader, c.Kind)

	c, ok = block.Parse("- bullet", 0)
	require.True(t, ok)
	assert.Equal(t, block.KindListItem, c.Kind)

	c, ok = block.Parse("> quote", 0)
	require.True(t, ok)
	assert.Equal(t, block.KindBlockquote, c.Kind)

	_, ok = block.Parse("plain", 0)
	assert.False(t, ok)
}

func TestParse_BaseOffset(t *testing.T) {
	t.Parallel()

	c, ok := block.Parse("  - item", 50)

	require.True(t, ok)
	assert.Equal(t, source.NewRange(50, 58), c.Full)
	assert.Equal(t, source.NewRange(52, 54), c.Marker)
}
