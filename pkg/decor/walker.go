package decor

import (
	"regexp"
	"sort"
	"strings"

	"github.com/yaklabco/livemark/pkg/block"
	"github.com/yaklabco/livemark/pkg/inline"
	"github.com/yaklabco/livemark/pkg/source"
	"github.com/yaklabco/livemark/pkg/widget"
)

// Structural line shapes. The blog-block sentinel and the front-matter
// delimiter must match the whole line exactly.
const (
	blockSentinel        = "==="
	frontmatterDelimiter = "---"
	fencePrefix          = "```"
)

// DefaultMetadataPrefix marks lines holding machine-managed metadata.
// Such lines are always hidden, regardless of cursor position.
const DefaultMetadataPrefix = "%%meta"

var (
	horizontalRulePattern = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)
	imageLinePattern      = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]*)\)$`)
	atPostOpenPattern     = regexp.MustCompile(`^@([A-Za-z0-9_-]+) post\s*$`)
	atFieldPattern        = regexp.MustCompile(`^@[A-Za-z0-9_-]+`)
	atPublishedPattern    = regexp.MustCompile(`(?i)^@published\b`)
	publishedFieldPattern = regexp.MustCompile(`(?i)^published:\s*true\b`)
)

// Options configures an Engine.
type Options struct {
	// MetadataPrefix marks always-hidden metadata lines (case-insensitive
	// match). Defaults to DefaultMetadataPrefix.
	MetadataPrefix string

	// DetectLanguage, when set, sniffs the language of a code fence body
	// whose fence carries no info string, for the "Code (lang)" label.
	DetectLanguage func(body []byte) string
}

// Engine computes annotations for document snapshots.
// An Engine is immutable after construction and safe to reuse across
// rebuilds; all per-pass state is local to one Annotate call.
type Engine struct {
	opts       Options
	registry   Registry
	hasPublish bool
}

// NewEngine creates an Engine. registry validates pseudo-post opener lines;
// hasPublish reports whether the host supplied a publish callback, which
// controls whether publish affordance widgets are emitted at all.
func NewEngine(opts Options, registry Registry, hasPublish bool) *Engine {
	if opts.MetadataPrefix == "" {
		opts.MetadataPrefix = DefaultMetadataPrefix
	}
	return &Engine{opts: opts, registry: registry, hasPublish: hasPublish}
}

// Annotate runs a full walker pass and returns the complete annotation list
// for the document, sorted ascending by start offset. The document and
// cursor are read-only inputs; Annotate never mutates either.
func (e *Engine) Annotate(doc *source.Document, cursor int) []Annotation {
	w := &walk{
		engine:     e,
		doc:        doc,
		cursorLine: doc.LineAt(cursor),
		cursor:     cursor,
		metaPrefix: strings.ToLower(e.opts.MetadataPrefix),
	}

	for i := 0; i < doc.LineCount(); i++ {
		w.walkLine(i)
	}

	// The host substrate requires ascending start offsets.
	sort.SliceStable(w.anns, func(a, b int) bool {
		return w.anns[a].Range.From < w.anns[b].Range.From
	})

	return w.anns
}

// scanState is the block-context state machine tracked across lines.
// It is scratch state for one pass only, discarded after annotations are
// built.
//
// Contexts and transitions:
//
//	plain        --"```"-->  fence       --"```"-->  plain
//	plain        --"==="-->  blog block  --"==="-->  plain
//	blog block   --"---"-->  front-matter (first delimiter)
//	front-matter --"---"-->  blog block body (second delimiter)
//	plain        --"@name post" (name in registry)--> pseudo-post
//	pseudo-post  --any non-@field line--> plain (delimiter, header, or body)
type scanState struct {
	inFence bool

	inBlog        bool
	fmDelims      int
	blogStartLine int

	inAtPost      bool
	postPublished bool
	postBlog      Blog
	postStartLine int
}

// inBlogFrontmatter reports whether the walker sits between the first and
// second front-matter delimiters of an open blog block.
func (s *scanState) inBlogFrontmatter() bool {
	return s.inBlog && s.fmDelims == 1
}

// walk is the per-pass walker state: the document, cursor, accumulated
// annotations, and the block-context state machine.
type walk struct {
	engine     *Engine
	doc        *source.Document
	cursor     int
	cursorLine int
	metaPrefix string

	state scanState
	anns  []Annotation
}

func (w *walk) emit(a Annotation) {
	w.anns = append(w.anns, a)
}

// walkLine classifies one line and emits its annotations. Branches are
// checked in a fixed priority order; each is exclusive and ends processing
// for the line. A line matching nothing falls through with zero annotations:
// plain text is always a valid outcome.
func (w *walk) walkLine(i int) {
	text := w.doc.LineText(i)
	lineRange := w.doc.LineRange(i)
	onCursorLine := i == w.cursorLine

	// Metadata lines are machine-owned and always hidden, cursor or not.
	if strings.HasPrefix(strings.ToLower(text), w.metaPrefix) {
		w.emit(suppressAnnotation(lineRange))
		w.emit(lineAnnotation(lineRange, ClassHiddenLine))
		return
	}

	if text == blockSentinel {
		w.toggleBlogBlock(i, lineRange, onCursorLine)
		return
	}

	if w.state.inBlog && text == frontmatterDelimiter {
		w.state.fmDelims++
		return
	}

	if !w.state.inBlog && !w.state.inAtPost {
		if m := atPostOpenPattern.FindStringSubmatch(text); m != nil {
			if blog, ok := w.engine.registry.Lookup(m[1]); ok {
				w.openAtPost(i, lineRange, blog, onCursorLine)
				return
			}
		}
	}

	if w.state.inAtPost {
		if atFieldPattern.MatchString(text) {
			if !onCursorLine {
				w.emit(lineAnnotation(lineRange, ClassAtLine))
			}
			return
		}
		// Delimiter, header, or body content: the pseudo-post ends here
		// and the line is processed normally below.
		w.state.inAtPost = false
	}

	// Loose @word lines outside any recognized pseudo-post still get the
	// muted styling, so the visual cue appears before the block is valid.
	if atFieldPattern.MatchString(text) {
		if !onCursorLine {
			w.emit(lineAnnotation(lineRange, ClassAtLine))
		}
		return
	}

	if strings.HasPrefix(text, fencePrefix) {
		w.toggleFence(i, text, lineRange, onCursorLine)
		return
	}

	if w.state.inFence {
		w.emit(lineAnnotation(lineRange, ClassCodeLine))
		return
	}

	if w.state.inBlogFrontmatter() {
		return
	}

	if strings.TrimSpace(text) == "" {
		return
	}

	if horizontalRulePattern.MatchString(text) {
		if !onCursorLine {
			w.emit(suppressAnnotation(lineRange))
			w.emit(lineAnnotation(lineRange, ClassRule))
		}
		return
	}

	if m := imageLinePattern.FindStringSubmatch(text); m != nil && !onCursorLine {
		w.emit(widgetAnnotation(lineRange, widget.Spec{
			Kind: widget.KindImage,
			Alt:  m[1],
			URL:  m[2],
		}))
		return
	}

	if construct, ok := block.Parse(text, lineRange.From); ok {
		w.emitConstruct(construct)
	}
	for _, span := range inline.Scan(text, lineRange.From) {
		w.emitSpan(span)
	}
}

// toggleBlogBlock handles an exact sentinel line: opening peeks ahead for a
// published flag and replaces the sentinel with the block header widget;
// closing emits the small decorative replacement. The raw sentinel stays
// visible while the caret is on it.
func (w *walk) toggleBlogBlock(i int, lineRange source.Range, onCursorLine bool) {
	if !w.state.inBlog {
		w.state.inBlog = true
		w.state.fmDelims = 0
		w.state.blogStartLine = i
		if !onCursorLine {
			w.emit(widgetAnnotation(lineRange, widget.Spec{
				Kind:       widget.KindBlockOpen,
				Published:  w.blogBlockPublished(i),
				HasPublish: w.engine.hasPublish,
				StartLine:  i,
			}))
		}
		return
	}

	w.state.inBlog = false
	if !onCursorLine {
		w.emit(widgetAnnotation(lineRange, widget.Spec{
			Kind:      widget.KindBlockClose,
			StartLine: w.state.blogStartLine,
		}))
	}
}

// blogBlockPublished scans forward from the opening sentinel to the matching
// close (or end of document) looking for a published field. The lookahead is
// bounded by document end; a block with no terminator is treated as open
// through the end, never an error.
func (w *walk) blogBlockPublished(openLine int) bool {
	for j := openLine + 1; j < w.doc.LineCount(); j++ {
		text := w.doc.LineText(j)
		if text == blockSentinel {
			return false
		}
		if publishedFieldPattern.MatchString(text) {
			return true
		}
	}
	return false
}

// openAtPost enters the pseudo-post state: the opener line gets the muted
// styling unconditionally, plus a trailing publish affordance when the host
// supplied a callback and the caret is elsewhere.
func (w *walk) openAtPost(i int, lineRange source.Range, blog Blog, onCursorLine bool) {
	w.state.inAtPost = true
	w.state.postBlog = blog
	w.state.postStartLine = i
	w.state.postPublished = w.atPostPublished(i)

	w.emit(lineAnnotation(lineRange, ClassAtLine))

	if w.engine.hasPublish && !onCursorLine {
		w.emit(widgetAnnotation(source.Range{From: lineRange.To, To: lineRange.To}, widget.Spec{
			Kind:       widget.KindPostPublish,
			Published:  w.state.postPublished,
			HasPublish: true,
			StartLine:  i,
			BlogName:   blog.Name,
		}))
	}
}

// atPostPublished looks ahead through the pseudo-post's field lines for a
// @published field. The scan stops at the first non-field line.
func (w *walk) atPostPublished(openLine int) bool {
	for j := openLine + 1; j < w.doc.LineCount(); j++ {
		text := w.doc.LineText(j)
		if !atFieldPattern.MatchString(text) {
			return false
		}
		if atPublishedPattern.MatchString(text) {
			return true
		}
	}
	return false
}

// toggleFence handles a triple-backtick line. Both marker lines are replaced
// with the code label unless the caret sits on them; the opening label
// carries the info-string language, falling back to content sniffing when
// configured.
func (w *walk) toggleFence(i int, text string, lineRange source.Range, onCursorLine bool) {
	opening := !w.state.inFence
	w.state.inFence = opening

	if onCursorLine {
		return
	}

	lang := ""
	if opening {
		lang = strings.TrimSpace(text[len(fencePrefix):])
		if lang == "" && w.engine.opts.DetectLanguage != nil {
			if body := w.fenceBody(i); len(body) > 0 {
				lang = w.engine.opts.DetectLanguage(body)
			}
		}
	}

	w.emit(widgetAnnotation(lineRange, widget.Spec{
		Kind: widget.KindCodeLabel,
		Lang: lang,
	}))
}

// fenceBody collects the fence content from the line after the opening
// marker through the closing marker or end of document.
func (w *walk) fenceBody(openLine int) []byte {
	var lines []string
	for j := openLine + 1; j < w.doc.LineCount(); j++ {
		text := w.doc.LineText(j)
		if strings.HasPrefix(text, fencePrefix) {
			break
		}
		lines = append(lines, text)
	}
	return []byte(strings.Join(lines, "\n"))
}
