package source

import "sort"

// BuildLines constructs line metadata from buffer content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			// Check for CRLF.
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Handle last line (may not have trailing newline).
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineAt converts a byte offset to a 0-based line number.
// Offsets at or past the end of content map to the last line.
// Returns -1 for negative offsets or an empty document.
func (d *Document) LineAt(offset int) int {
	if offset < 0 || len(d.Lines) == 0 {
		return -1
	}

	if offset >= len(d.Content) {
		return len(d.Lines) - 1
	}

	// Binary search for the line containing the offset.
	lineIdx := sort.Search(len(d.Lines), func(i int) bool {
		return d.Lines[i].EndOffset > offset
	})

	if lineIdx >= len(d.Lines) {
		lineIdx = len(d.Lines) - 1
	}

	return lineIdx
}

// LineRange returns the byte range of a 0-based line, excluding the newline.
// Returns an empty range if the line number is out of range.
func (d *Document) LineRange(line int) Range {
	if line < 0 || line >= len(d.Lines) {
		return Range{}
	}
	info := d.Lines[line]
	return Range{From: info.StartOffset, To: info.NewlineStart}
}
