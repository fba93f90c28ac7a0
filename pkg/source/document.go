// Package source provides the read-only document view the decoration engine
// operates on: the raw text, a derived line index, and byte-offset ranges.
// The engine never mutates document content; a Document is a snapshot of the
// host editor's buffer at the moment a rescan is triggered.
package source

// Document is an immutable snapshot of the editor buffer.
// It holds the raw content and derived line metadata.
type Document struct {
	// Content is the full buffer bytes.
	Content []byte

	// Lines contains metadata for each line, derived from Content.
	Lines []LineInfo
}

// LineInfo holds metadata for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of buffer).
	EndOffset int
}

// NewDocument creates a Document snapshot from content, building the line index.
func NewDocument(content []byte) *Document {
	return &Document{
		Content: content,
		Lines:   BuildLines(content),
	}
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// LineText returns the text of a 0-based line, excluding the newline.
// Returns an empty string if the line number is out of range.
func (d *Document) LineText(line int) string {
	if line < 0 || line >= len(d.Lines) {
		return ""
	}
	info := d.Lines[line]
	return string(d.Content[info.StartOffset:info.NewlineStart])
}
