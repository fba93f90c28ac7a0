package inline

import (
	"regexp"
	"sort"

	"github.com/yaklabco/livemark/pkg/source"
)

// Closed-pattern recognizers. Bold uses a non-greedy any-char body so that
// stray single markers inside the pair (e.g. **a*b*c**) stay part of the
// bold span; single-marker patterns use a no-marker body so they cannot
// fire across their own marker character.
var (
	boldStarPattern    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderPattern   = regexp.MustCompile(`__(.+?)__`)
	italicStarPattern  = regexp.MustCompile(`\*([^*]+)\*`)
	italicUnderPattern = regexp.MustCompile(`_([^_]+)_`)
	strikePattern      = regexp.MustCompile(`~~([^~]+)~~`)
	codePattern        = regexp.MustCompile("`([^`]+)`")
	linkPattern        = regexp.MustCompile(`\[([^\]]+)\]\(([^)]*)\)`)
	tagPattern         = regexp.MustCompile(`#[A-Za-z0-9_-]+`)
)

// Marker precedence levels. A candidate overlapping an accepted span that
// uses the same marker character at a higher precedence is discarded.
const (
	precedenceItalic = 1
	precedenceBold   = 2
)

// candidate is a span plus the metadata the resolve pass needs.
type candidate struct {
	span       Span
	marker     byte // marker character; 0 for link and tag
	precedence int
}

// Scan returns the inline spans for one line of text.
// base is the absolute byte offset of the line start; all returned ranges
// are absolute. The result is sorted by start offset.
func Scan(line string, base int) []Span {
	s := &scanner{line: line, base: base}

	s.scanClosed()
	s.scanUnclosed()

	spans := make([]Span, len(s.cands))
	for i, c := range s.cands {
		spans[i] = c.span
	}
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Full.From < spans[j].Full.From
	})

	return spans
}

type scanner struct {
	line  string
	base  int
	cands []candidate
}

// accept adds the candidate unless it overlaps an already-accepted span on
// the same marker character with higher precedence.
func (s *scanner) accept(c candidate) {
	if c.marker != 0 {
		for _, prev := range s.cands {
			if prev.span.Full.Overlaps(c.span.Full) && prev.marker == c.marker &&
				prev.precedence > c.precedence {
				return
			}
		}
	}
	s.cands = append(s.cands, c)
}

// covered reports whether the given absolute offset falls inside any span
// found so far (closed or unclosed).
func (s *scanner) covered(offset int) bool {
	for _, c := range s.cands {
		if c.span.Full.Contains(offset) {
			return true
		}
	}
	return false
}

// scanClosed runs the ordered closed-pattern recognizers.
func (s *scanner) scanClosed() {
	s.scanPaired(boldStarPattern, SpanBold, '*', precedenceBold, 2, nil)
	s.scanPaired(boldUnderPattern, SpanBold, '_', precedenceBold, 2, nil)
	s.scanPaired(italicStarPattern, SpanItalic, '*', precedenceItalic, 1, s.starNotAdjacent)
	s.scanPaired(italicUnderPattern, SpanItalic, '_', precedenceItalic, 1, s.underscoreNotAdjacent)
	s.scanPaired(strikePattern, SpanStrikethrough, '~', 0, 2, nil)
	s.scanPaired(codePattern, SpanCode, '`', 0, 1, nil)
	s.scanLinks()
	s.scanTags()
}

// scanPaired finds closed matches of a symmetric-marker pattern.
// markerLen is the marker width in bytes; validate may reject a match based
// on its position in the line (adjacency rules).
func (s *scanner) scanPaired(
	pattern *regexp.Regexp,
	kind SpanKind,
	marker byte,
	precedence int,
	markerLen int,
	validate func(from, to int) bool,
) {
	for _, m := range pattern.FindAllStringIndex(s.line, -1) {
		if validate != nil && !validate(m[0], m[1]) {
			continue
		}
		from := s.base + m[0]
		to := s.base + m[1]
		s.accept(candidate{
			span: Span{
				Kind:        kind,
				Full:        source.Range{From: from, To: to},
				OpenMarker:  source.Range{From: from, To: from + markerLen},
				CloseMarker: source.Range{From: to - markerLen, To: to},
			},
			marker:     marker,
			precedence: precedence,
		})
	}
}

// starNotAdjacent rejects single-asterisk italic matches that touch another
// asterisk, so *...* cannot fire on the inside of **bold**.
func (s *scanner) starNotAdjacent(from, to int) bool {
	if from > 0 && s.line[from-1] == '*' {
		return false
	}
	if to < len(s.line) && s.line[to] == '*' {
		return false
	}
	return true
}

// underscoreNotAdjacent rejects _..._ matches glued to a word character or
// another underscore, so mid_word_emphasis is left alone.
func (s *scanner) underscoreNotAdjacent(from, to int) bool {
	if from > 0 && isWordByte(s.line[from-1]) {
		return false
	}
	if to < len(s.line) && isWordByte(s.line[to]) {
		return false
	}
	return true
}

// scanLinks finds [text](url) links. The visible content is the link text;
// the close marker runs from the end of the text through the closing paren,
// so the URL portion hides along with the markers.
func (s *scanner) scanLinks() {
	for _, m := range linkPattern.FindAllStringSubmatchIndex(s.line, -1) {
		from := s.base + m[0]
		to := s.base + m[1]
		textEnd := s.base + m[3]
		s.accept(candidate{
			span: Span{
				Kind:        SpanLink,
				Full:        source.Range{From: from, To: to},
				OpenMarker:  source.Range{From: from, To: from + 1},
				CloseMarker: source.Range{From: textEnd, To: to},
				URL:         s.line[m[4]:m[5]],
			},
		})
	}
}

// scanTags finds #word tags. The # must be preceded by start-of-line or
// whitespace. Tags have zero-width markers: the # stays visible and styled.
func (s *scanner) scanTags() {
	for _, m := range tagPattern.FindAllStringIndex(s.line, -1) {
		if m[0] > 0 {
			prev := s.line[m[0]-1]
			if prev != ' ' && prev != '\t' {
				continue
			}
		}
		from := s.base + m[0]
		to := s.base + m[1]
		s.accept(candidate{
			span: Span{
				Kind:        SpanTag,
				Full:        source.Range{From: from, To: to},
				OpenMarker:  source.Range{From: from, To: from},
				CloseMarker: source.Range{From: to, To: to},
				Tag:         s.line[m[0]+1 : m[1]],
			},
		})
	}
}

// unclosedMarker describes one opening-marker shape the unclosed pass looks for.
type unclosedMarker struct {
	text     string
	kind     SpanKind
	validate func(s *scanner, idx int) bool
}

// Checked in order: doubled markers before their single-character cousins so
// a lone ** reads as unclosed bold, not two unclosed italics. Validators
// inspect only the character before the marker: everything after an opener
// is the span body, so the trailing half of the closed-pair adjacency rules
// does not apply here.
var unclosedMarkers = []unclosedMarker{
	{text: "**", kind: SpanBold},
	{text: "__", kind: SpanBold},
	{text: "*", kind: SpanItalic, validate: func(s *scanner, idx int) bool {
		return idx == 0 || s.line[idx-1] != '*'
	}},
	{text: "_", kind: SpanItalic, validate: func(s *scanner, idx int) bool {
		return idx == 0 || !isWordByte(s.line[idx-1])
	}},
	{text: "~~", kind: SpanStrikethrough},
	{text: "`", kind: SpanCode},
}

// scanUnclosed emits marker-to-end-of-line spans for opening markers that no
// closed match covers. This gives live styling while the user types the
// opening half of a pair. The covered check consults spans found so far,
// including earlier unclosed ones, to avoid double-counting.
func (s *scanner) scanUnclosed() {
	lineEnd := s.base + len(s.line)

	for _, um := range unclosedMarkers {
		for idx := indexFrom(s.line, um.text, 0); idx >= 0; idx = indexFrom(s.line, um.text, idx+1) {
			if s.covered(s.base + idx) {
				continue
			}
			if um.validate != nil && !um.validate(s, idx) {
				continue
			}
			if !hasContentAfter(s.line, idx+len(um.text), um.text[0]) {
				continue
			}
			from := s.base + idx
			s.cands = append(s.cands, candidate{
				span: Span{
					Kind:        um.kind,
					Full:        source.Range{From: from, To: lineEnd},
					OpenMarker:  source.Range{From: from, To: from + len(um.text)},
					CloseMarker: source.Range{From: lineEnd, To: lineEnd},
					Unclosed:    true,
				},
				marker: um.text[0],
			})
		}
	}
}

// hasContentAfter reports whether at least one non-marker character follows
// position from through end of line.
func hasContentAfter(line string, from int, marker byte) bool {
	for i := from; i < len(line); i++ {
		if line[i] != marker {
			return true
		}
	}
	return false
}

// indexFrom returns the next index of sub at or after start, or -1.
func indexFrom(line, sub string, start int) int {
	if start >= len(line) {
		return -1
	}
	for i := start; i+len(sub) <= len(line); i++ {
		if line[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

// isWordByte reports whether b is a word character for underscore-adjacency
// purposes (letters, digits, underscore).
func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
