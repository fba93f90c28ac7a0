// Package inline finds inline markdown constructs within a single line of
// text: bold, italic, strikethrough, inline code, links, and tags. Inline
// constructs never cross line boundaries.
//
// Recognition is precedence-aware: recognizers run in a fixed order and a
// resolve pass discards candidates that overlap an already-accepted span
// using the same marker character at a higher precedence (bold beats
// single-marker italic). Unclosed variants (opening marker typed, closing
// marker not yet present) are detected last so live styling appears while
// the user is still typing.
package inline

import "github.com/yaklabco/livemark/pkg/source"

// SpanKind identifies the inline construct type.
type SpanKind uint8

const (
	// SpanBold is **text** or __text__.
	SpanBold SpanKind = iota

	// SpanItalic is *text* or _text_.
	SpanItalic

	// SpanStrikethrough is ~~text~~.
	SpanStrikethrough

	// SpanCode is `text`.
	SpanCode

	// SpanLink is [text](url).
	SpanLink

	// SpanTag is #word preceded by start-of-line or whitespace.
	SpanTag
)

// String returns a human-readable name for the span kind.
func (k SpanKind) String() string {
	switch k {
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	case SpanStrikethrough:
		return "strikethrough"
	case SpanCode:
		return "code"
	case SpanLink:
		return "link"
	case SpanTag:
		return "tag"
	default:
		return "unknown"
	}
}

// Span is a recognized inline construct.
// All ranges are absolute byte offsets into the document.
type Span struct {
	// Kind identifies the construct.
	Kind SpanKind

	// Full spans from the first marker byte through the last (markers included).
	Full source.Range

	// OpenMarker is the opening marker sub-range of Full.
	// Zero-width for tags (the # is part of the styled content).
	OpenMarker source.Range

	// CloseMarker is the closing marker sub-range of Full.
	// For an unclosed span this is a zero-width range at end of line.
	CloseMarker source.Range

	// Unclosed is true when no closing marker was found before end of line.
	Unclosed bool

	// URL carries the link destination for SpanLink.
	URL string

	// Tag carries the tag text (without #) for SpanTag.
	Tag string
}

// Content returns the range strictly between the open and close markers.
func (s Span) Content() source.Range {
	return source.Range{From: s.OpenMarker.To, To: s.CloseMarker.From}
}
