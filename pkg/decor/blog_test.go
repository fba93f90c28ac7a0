package decor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/livemark/pkg/decor"
	"github.com/yaklabco/livemark/pkg/source"
	"github.com/yaklabco/livemark/pkg/widget"
)

var testRegistry = decor.Registry{
	{ID: "b1", Name: "Tech"},
	{ID: "b2", Name: "Cooking"},
}

func annotateWith(t *testing.T, content string, cursor int, hasPublish bool) []decor.Annotation {
	t.Helper()

	doc := source.NewDocument([]byte(content))
	engine := decor.NewEngine(decor.Options{}, testRegistry, hasPublish)
	return engine.Annotate(doc, cursor)
}

func TestAnnotate_BlogBlock(t *testing.T) {
	t.Parallel()

	content := "===\n---\ntitle: x\npublished: true\n---\nbody\n===\n"

	// Cursor on the body line, away from both sentinels.
	anns := annotateWith(t, content, 38, true)

	specs := widgets(anns)
	require.Len(t, specs, 2)

	open := specs[0]
	assert.Equal(t, widget.KindBlockOpen, open.Kind)
	assert.True(t, open.Published, "published flag read ahead from the front-matter")
	assert.True(t, open.HasPublish)
	assert.Equal(t, 0, open.StartLine)

	closing := specs[1]
	assert.Equal(t, widget.KindBlockClose, closing.Kind)
	assert.Equal(t, 0, closing.StartLine, "close widget points back at the opening line")
}

func TestAnnotate_BlogBlockUnpublished(t *testing.T) {
	t.Parallel()

	content := "===\n---\ntitle: x\n---\nbody\n===\n"
	anns := annotateWith(t, content, 22, false)

	specs := widgets(anns)
	require.Len(t, specs, 2)
	assert.False(t, specs[0].Published)
	assert.False(t, specs[0].HasPublish)
}

func TestAnnotate_BlogFrontmatterIsInvisible(t *testing.T) {
	t.Parallel()

	// Delimiters and field lines inside the front-matter produce no
	// annotations of their own; the body after the second delimiter is
	// processed normally.
	content := "===\n---\ntitle: **x**\n---\n**bold**\n===\n"
	anns := annotateWith(t, content, 99, false)

	var styled []source.Range
	for _, a := range anns {
		if a.Effect == decor.EffectStyle {
			styled = append(styled, a.Range)
		}
	}
	require.Len(t, styled, 1, "only the body bold span is styled")
	assert.Equal(t, source.NewRange(27, 31), styled[0])
}

func TestAnnotate_BlogSentinelCursorShowsRaw(t *testing.T) {
	t.Parallel()

	content := "===\nbody\n===\n"

	// Caret on the opening sentinel: it stays raw, the closing sentinel
	// is still replaced.
	anns := annotateWith(t, content, 1, false)

	specs := widgets(anns)
	require.Len(t, specs, 1)
	assert.Equal(t, widget.KindBlockClose, specs[0].Kind)
}

func TestAnnotate_UnterminatedBlogBlock(t *testing.T) {
	t.Parallel()

	content := "===\nbody text\n"
	anns := annotateWith(t, content, 99, false)

	specs := widgets(anns)
	require.Len(t, specs, 1)
	assert.Equal(t, widget.KindBlockOpen, specs[0].Kind)
	assert.False(t, specs[0].Published)
}

func TestAnnotate_SentinelRequiresExactLine(t *testing.T) {
	t.Parallel()

	// "====" is not a sentinel; nothing opens.
	anns := annotateWith(t, "====\nbody\n", 99, false)
	assert.Empty(t, widgets(anns))
}

func TestAnnotate_PseudoPost(t *testing.T) {
	t.Parallel()

	content := "@tech post\n@published\n@title Hello\n\nBody\n"

	// Cursor on the body line.
	anns := annotateWith(t, content, 36, true)

	want := []decor.Annotation{
		{Range: source.NewRange(0, 10), Effect: decor.EffectLine, Class: decor.ClassAtLine},
		{
			Range:  source.NewRange(10, 10),
			Effect: decor.EffectWidget,
			Widget: &widget.Spec{
				Kind:       widget.KindPostPublish,
				Published:  true,
				HasPublish: true,
				BlogName:   "Tech",
			},
		},
		{Range: source.NewRange(11, 21), Effect: decor.EffectLine, Class: decor.ClassAtLine},
		{Range: source.NewRange(22, 34), Effect: decor.EffectLine, Class: decor.ClassAtLine},
	}
	assert.Equal(t, want, anns)
}

func TestAnnotate_PseudoPostOpenerIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	anns := annotateWith(t, "@TECH post\n", 99, true)

	specs := widgets(anns)
	require.Len(t, specs, 1)
	assert.Equal(t, widget.KindPostPublish, specs[0].Kind)
	assert.Equal(t, "Tech", specs[0].BlogName, "the registry name wins over the typed casing")
}

func TestAnnotate_PseudoPostWithoutPublishCallback(t *testing.T) {
	t.Parallel()

	anns := annotateWith(t, "@tech post\n@title x\n", 99, false)

	assert.Empty(t, widgets(anns), "no callback, no affordance")
}

func TestAnnotate_PseudoPostCursorOnOpener(t *testing.T) {
	t.Parallel()

	anns := annotateWith(t, "@tech post\nBody\n", 3, true)

	// The muted line styling stays even with the caret on the opener;
	// only the affordance widget is withheld.
	require.NotEmpty(t, anns)
	assert.Equal(t, decor.EffectLine, anns[0].Effect)
	assert.Equal(t, decor.ClassAtLine, anns[0].Class)
	assert.Empty(t, widgets(anns))
}

func TestAnnotate_PseudoPostFieldCursorShowsRaw(t *testing.T) {
	t.Parallel()

	content := "@tech post\n@title Hello\n"

	// Caret on the field line: that line renders raw.
	anns := annotateWith(t, content, 14, true)

	for _, a := range anns {
		if a.Effect == decor.EffectLine {
			assert.Equal(t, source.NewRange(0, 10), a.Range, "only the opener keeps its line class")
		}
	}
}

func TestAnnotate_PseudoPostEndsAtFirstNonFieldLine(t *testing.T) {
	t.Parallel()

	content := "@tech post\n\n@published\n"
	anns := annotateWith(t, content, 99, true)

	// The blank line ends the pseudo-post, so the published scan never
	// reaches the later field and the trailing @published reads as a
	// loose field line.
	specs := widgets(anns)
	require.Len(t, specs, 1)
	assert.False(t, specs[0].Published)
}

func TestAnnotate_UnregisteredAtWordIsLooseField(t *testing.T) {
	t.Parallel()

	anns := annotateWith(t, "@unknown post\n", 99, true)

	assert.Empty(t, widgets(anns))
	require.Len(t, anns, 1)
	assert.Equal(t, decor.EffectLine, anns[0].Effect)
	assert.Equal(t, decor.ClassAtLine, anns[0].Class)
}

func TestAnnotate_PseudoPostNotRecognizedInsideBlogBlock(t *testing.T) {
	t.Parallel()

	content := "===\n@tech post\n===\n"
	anns := annotateWith(t, content, 99, true)

	for _, spec := range widgets(anns) {
		assert.NotEqual(t, widget.KindPostPublish, spec.Kind)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	blog, ok := testRegistry.Lookup("tech")
	require.True(t, ok)
	assert.Equal(t, "b1", blog.ID)

	blog, ok = testRegistry.Lookup("COOKING")
	require.True(t, ok)
	assert.Equal(t, "b2", blog.ID)

	_, ok = testRegistry.Lookup("gardening")
	assert.False(t, ok)
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Tech", "Cooking"}, testRegistry.Names())
}
