// Package block recognizes line-level markdown constructs: headers, list
// items, and blockquotes. Each parser consumes one line of text plus its
// absolute starting offset and returns at most one construct with
// marker-boundary metadata.
package block

import (
	"regexp"

	"github.com/yaklabco/livemark/pkg/source"
)

// Kind identifies the block construct type.
type Kind uint8

const (
	// KindHeader is an ATX header (# through ######), complete or still
	// being typed.
	KindHeader Kind = iota

	// KindListItem is an unordered, ordered, or task list item.
	KindListItem

	// KindBlockquote is a > quoted line.
	KindBlockquote
)

// ListType identifies the list item flavor.
type ListType uint8

const (
	// ListUnordered is a -, *, or + bullet.
	ListUnordered ListType = iota

	// ListOrdered is a numbered item (1., 2., ...).
	ListOrdered

	// ListTask is a checkbox item (- [ ] / - [x]).
	ListTask
)

// Construct is a recognized block-level construct on one line.
// Full covers the whole line; Marker covers the syntax prefix (hashes and
// separating space, bullet and checkbox, or quote angle).
type Construct struct {
	Kind   Kind
	Full   source.Range
	Marker source.Range

	// Level is the header level (1-6) for KindHeader.
	Level int

	// Complete is true for headers with the mandatory separating space.
	// A line of bare hashes (the author mid-typing) parses as an
	// incomplete header so the heading size appears immediately.
	Complete bool

	// List is the list flavor for KindListItem.
	List ListType

	// Checked is true for checked task items.
	Checked bool

	// Indent is the leading whitespace width for KindListItem.
	Indent int
}

var (
	completeHeaderPattern   = regexp.MustCompile(`^#{1,6}\s+`)
	incompleteHeaderPattern = regexp.MustCompile(`^#{1,6}`)
	tagShapedPattern        = regexp.MustCompile(`^#[A-Za-z0-9_-]+$`)

	taskListPattern      = regexp.MustCompile(`^(\s*)[-*+]\s+\[([ xX])\]\s+`)
	unorderedListPattern = regexp.MustCompile(`^(\s*)[-*+]\s+`)
	orderedListPattern   = regexp.MustCompile(`^(\s*)\d+\.\s+`)

	blockquotePattern = regexp.MustCompile(`^>\s*`)
)

// Parse tries the block parsers in fixed order (header, list, blockquote)
// and returns the first construct recognized on the line, if any.
func Parse(line string, base int) (Construct, bool) {
	if c, ok := ParseHeader(line, base); ok {
		return c, true
	}
	if c, ok := ParseListItem(line, base); ok {
		return c, true
	}
	if c, ok := ParseBlockquote(line, base); ok {
		return c, true
	}
	return Construct{}, false
}

// ParseHeader recognizes ATX headers.
//
// A line of 1-6 hashes followed by whitespace is a complete header. Bare
// hashes followed by a non-space character or end of line are an incomplete
// header candidate, except for the exact shape #word (single hash, tag
// characters, no space) which is left for tag recognition instead.
func ParseHeader(line string, base int) (Construct, bool) {
	full := source.Range{From: base, To: base + len(line)}

	if m := completeHeaderPattern.FindStringIndex(line); m != nil {
		level := countHashes(line)
		return Construct{
			Kind:     KindHeader,
			Full:     full,
			Marker:   source.Range{From: base, To: base + m[1]},
			Level:    level,
			Complete: true,
		}, true
	}

	if m := incompleteHeaderPattern.FindStringIndex(line); m != nil {
		if tagShapedPattern.MatchString(line) {
			return Construct{}, false
		}
		return Construct{
			Kind:   KindHeader,
			Full:   full,
			Marker: source.Range{From: base, To: base + m[1]},
			Level:  m[1] - m[0],
		}, true
	}

	return Construct{}, false
}

// ParseListItem recognizes task, unordered, and ordered list items, in that
// order. Marker starts after the leading whitespace and runs through the
// bullet or number (and checkbox, for tasks) plus the following space.
func ParseListItem(line string, base int) (Construct, bool) {
	full := source.Range{From: base, To: base + len(line)}

	if m := taskListPattern.FindStringSubmatchIndex(line); m != nil {
		indent := m[3] - m[2]
		checked := line[m[4]:m[5]] == "x" || line[m[4]:m[5]] == "X"
		return Construct{
			Kind:    KindListItem,
			Full:    full,
			Marker:  source.Range{From: base + indent, To: base + m[1]},
			List:    ListTask,
			Checked: checked,
			Indent:  indent,
		}, true
	}

	if m := unorderedListPattern.FindStringSubmatchIndex(line); m != nil {
		indent := m[3] - m[2]
		return Construct{
			Kind:   KindListItem,
			Full:   full,
			Marker: source.Range{From: base + indent, To: base + m[1]},
			List:   ListUnordered,
			Indent: indent,
		}, true
	}

	if m := orderedListPattern.FindStringSubmatchIndex(line); m != nil {
		indent := m[3] - m[2]
		return Construct{
			Kind:   KindListItem,
			Full:   full,
			Marker: source.Range{From: base + indent, To: base + m[1]},
			List:   ListOrdered,
			Indent: indent,
		}, true
	}

	return Construct{}, false
}

// ParseBlockquote recognizes > quoted lines. Marker covers the angle and
// any following whitespace.
func ParseBlockquote(line string, base int) (Construct, bool) {
	m := blockquotePattern.FindStringIndex(line)
	if m == nil {
		return Construct{}, false
	}
	return Construct{
		Kind:   KindBlockquote,
		Full:   source.Range{From: base, To: base + len(line)},
		Marker: source.Range{From: base, To: base + m[1]},
	}, true
}

func countHashes(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	return n
}
