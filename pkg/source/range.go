package source

// Range represents a byte range in the document content.
// From is inclusive, To is exclusive.
type Range struct {
	From int
	To   int
}

// NewRange creates a Range from the given offsets.
func NewRange(from, to int) Range {
	return Range{From: from, To: to}
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.To - r.From
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.From == r.To
}

// Contains returns true if the given offset is within this range.
func (r Range) Contains(offset int) bool {
	return offset >= r.From && offset < r.To
}

// ContainsInclusive returns true if the offset is within [From, To].
// The cursor-reveal rule treats an offset sitting just past the last
// marker character as still "inside" the construct.
func (r Range) ContainsInclusive(offset int) bool {
	return offset >= r.From && offset <= r.To
}

// Overlaps returns true if this range shares at least one offset with other.
// Empty ranges never overlap anything.
func (r Range) Overlaps(other Range) bool {
	return r.From < other.To && other.From < r.To
}

// Text returns the content slice covered by this range.
// Returns an empty string for out-of-bounds ranges.
func (r Range) Text(content []byte) string {
	if r.From < 0 || r.To > len(content) || r.From > r.To {
		return ""
	}
	return string(content[r.From:r.To])
}
