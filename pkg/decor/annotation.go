// Package decor computes the visual annotation set for a markdown document.
//
// The engine walks the document line by line, consults the block parsers and
// the inline scanner, and emits an ordered list of annotations: style a
// range, suppress a range (hide the characters without removing them),
// replace a range with a widget, or style a whole line. The document text is
// never modified; annotations are a pure function of the document snapshot,
// the cursor offset, and the configured blog registry.
package decor

import (
	"github.com/yaklabco/livemark/pkg/source"
	"github.com/yaklabco/livemark/pkg/widget"
)

// EffectKind identifies what an annotation does to its range.
type EffectKind uint8

const (
	// EffectStyle applies a style class to the range's text.
	EffectStyle EffectKind = iota

	// EffectSuppress visually collapses the range. The characters stay in
	// the buffer and remain caret-addressable.
	EffectSuppress

	// EffectWidget replaces the range with a rendered widget.
	EffectWidget

	// EffectLine applies a style class to the whole line containing the
	// range (background, glyph, or height treatment).
	EffectLine
)

// String returns a human-readable name for the effect kind.
func (k EffectKind) String() string {
	switch k {
	case EffectStyle:
		return "style"
	case EffectSuppress:
		return "suppress"
	case EffectWidget:
		return "widget"
	case EffectLine:
		return "line"
	default:
		return "unknown"
	}
}

// Annotation is one visual instruction for the host substrate.
type Annotation struct {
	// Range is the affected byte range.
	Range source.Range

	// Effect says what to do with the range.
	Effect EffectKind

	// Class is the style class for EffectStyle and EffectLine.
	Class string

	// Widget is the payload for EffectWidget.
	Widget *widget.Spec
}

// styleAnnotation builds an EffectStyle annotation.
func styleAnnotation(r source.Range, class string) Annotation {
	return Annotation{Range: r, Effect: EffectStyle, Class: class}
}

// suppressAnnotation builds an EffectSuppress annotation.
func suppressAnnotation(r source.Range) Annotation {
	return Annotation{Range: r, Effect: EffectSuppress}
}

// lineAnnotation builds an EffectLine annotation covering the given line range.
func lineAnnotation(r source.Range, class string) Annotation {
	return Annotation{Range: r, Effect: EffectLine, Class: class}
}

// widgetAnnotation builds an EffectWidget annotation.
func widgetAnnotation(r source.Range, spec widget.Spec) Annotation {
	return Annotation{Range: r, Effect: EffectWidget, Widget: &spec}
}
