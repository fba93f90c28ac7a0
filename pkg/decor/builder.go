package decor

import (
	"fmt"

	"github.com/yaklabco/livemark/pkg/block"
	"github.com/yaklabco/livemark/pkg/inline"
)

// spanClasses maps inline span kinds to their style classes.
var spanClasses = map[inline.SpanKind]string{
	inline.SpanBold:          ClassBold,
	inline.SpanItalic:        ClassItalic,
	inline.SpanStrikethrough: ClassStrike,
	inline.SpanCode:          ClassCode,
	inline.SpanLink:          ClassLink,
	inline.SpanTag:           ClassTag,
}

// emitSpan translates one inline span into annotations.
//
// Closed spans style the content and suppress both markers, unless the
// cursor sits inside the span's full range, in which case the markers stay
// visible for editing. Tags style the whole token (the # is content, not a
// marker to hide). Unclosed spans style marker-to-end-of-line with nothing
// suppressed: the author is mid-typing and needs to see what they wrote.
func (w *walk) emitSpan(s inline.Span) {
	class := spanClasses[s.Kind]

	if s.Kind == inline.SpanTag {
		w.emit(styleAnnotation(s.Full, class))
		return
	}

	if s.Unclosed {
		w.emit(styleAnnotation(s.Full, class))
		return
	}

	if content := s.Content(); !content.IsEmpty() {
		w.emit(styleAnnotation(content, class))
	}

	if s.Full.ContainsInclusive(w.cursor) {
		return
	}
	if !s.OpenMarker.IsEmpty() {
		w.emit(suppressAnnotation(s.OpenMarker))
	}
	if !s.CloseMarker.IsEmpty() {
		w.emit(suppressAnnotation(s.CloseMarker))
	}
}

// emitConstruct translates one block construct into annotations.
func (w *walk) emitConstruct(c block.Construct) {
	switch c.Kind {
	case block.KindHeader:
		w.emitHeader(c)
	case block.KindListItem:
		w.emitListItem(c)
	case block.KindBlockquote:
		w.emitBlockquote(c)
	}
}

// emitHeader styles a header line.
//
// Complete headers style the content at the level class and hide the marker;
// with the cursor inside the line the marker is revealed in its own marker
// style so it matches the heading. Incomplete headers (the author still
// typing hashes) style the whole line at the target level with nothing
// hidden, so the heading grows to size immediately.
func (w *walk) emitHeader(c block.Construct) {
	if !c.Complete {
		if !c.Full.IsEmpty() {
			w.emit(styleAnnotation(c.Full, HeaderClass(c.Level)))
		}
		return
	}

	content := c.Full
	content.From = c.Marker.To
	if !content.IsEmpty() {
		w.emit(styleAnnotation(content, HeaderClass(c.Level)))
	}

	if c.Full.ContainsInclusive(w.cursor) {
		w.emit(styleAnnotation(c.Marker, HeaderMarkerClass(c.Level)))
		return
	}
	w.emit(suppressAnnotation(c.Marker))
}

// emitListItem hides the bullet/number/checkbox marker (revealing it, in
// marker style, only while the cursor sits inside the marker range) and
// tags the line with the glyph class the host renders the bullet from.
func (w *walk) emitListItem(c block.Construct) {
	if c.Marker.ContainsInclusive(w.cursor) {
		w.emit(styleAnnotation(c.Marker, ClassMarker))
	} else {
		w.emit(suppressAnnotation(c.Marker))
	}
	w.emit(lineAnnotation(c.Full, listLineClass(c)))
}

// emitBlockquote hides the > marker (cursor-sensitive over the full line)
// and styles the whole line as a quote.
func (w *walk) emitBlockquote(c block.Construct) {
	if c.Full.ContainsInclusive(w.cursor) {
		w.emit(styleAnnotation(c.Marker, ClassMarker))
	} else {
		w.emit(suppressAnnotation(c.Marker))
	}
	w.emit(lineAnnotation(c.Full, ClassQuoteLine))
}

// listLineClass returns the line class carrying the rendered glyph variant
// and nesting depth.
func listLineClass(c block.Construct) string {
	var class string
	switch c.List {
	case block.ListOrdered:
		class = classNumberLine
	case block.ListTask:
		if c.Checked {
			class = classTaskCheckedLine
		} else {
			class = classTaskUncheckedLine
		}
	default:
		class = classBulletLine
	}
	if c.Indent > 0 {
		class = fmt.Sprintf("%s lv-indent-%d", class, c.Indent)
	}
	return class
}
