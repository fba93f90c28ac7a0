package decor

import "github.com/yaklabco/livemark/pkg/source"

// Trigger decides when the host must re-run the walker. Two events exist:
// document edits always rebuild; cursor movement rebuilds only when the
// caret lands on a different line than before. Marker reveal is
// line-granular, so sub-line caret moves would rebuild into the identical
// annotation set while causing visible jitter.
type Trigger struct {
	lastLine int
}

// NewTrigger creates a Trigger with no remembered cursor line, so the first
// event always rebuilds.
func NewTrigger() *Trigger {
	return &Trigger{lastLine: -1}
}

// DocumentChanged records the post-edit cursor line and requests a rebuild.
// Edits rebuild unconditionally.
func (t *Trigger) DocumentChanged(doc *source.Document, cursor int) bool {
	t.lastLine = doc.LineAt(cursor)
	return true
}

// CursorMoved reports whether a cursor/selection change requires a rebuild:
// only when the caret's line differs from the previous one.
func (t *Trigger) CursorMoved(doc *source.Document, cursor int) bool {
	line := doc.LineAt(cursor)
	if line == t.lastLine {
		return false
	}
	t.lastLine = line
	return true
}
