package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/livemark/pkg/decor"
	"github.com/yaklabco/livemark/pkg/source"
	"github.com/yaklabco/livemark/pkg/widget"
)

// Snippet sizing. The overhead is the column budget the offsets, effect
// and class fields consume before the snippet starts.
const (
	snippetOverhead = 60
	minSnippetLen   = 16
)

// FormatAnnotations formats the full annotation list for terminal output.
// Widgets render through the given renderer.
func (s *Styles) FormatAnnotations(
	doc *source.Document,
	anns []decor.Annotation,
	renderer *widget.Renderer,
) string {
	var builder strings.Builder
	for _, ann := range anns {
		builder.WriteString(s.FormatAnnotation(doc, ann, renderer))
		builder.WriteByte('\n')
	}
	return builder.String()
}

// FormatAnnotation formats one annotation: offsets, effect, class or widget,
// and a snippet of the affected source text.
func (s *Styles) FormatAnnotation(
	doc *source.Document,
	ann decor.Annotation,
	renderer *widget.Renderer,
) string {
	offsets := s.Offset.Render(fmt.Sprintf("%5d-%-5d", ann.Range.From, ann.Range.To))
	effect := s.formatEffect(ann.Effect)

	detail := ""
	switch ann.Effect {
	case decor.EffectStyle, decor.EffectLine:
		detail = s.Class.Render(ann.Class)
	case decor.EffectWidget:
		if ann.Widget != nil {
			detail = s.Widget.Render(ann.Widget.Kind.String()) +
				" " + renderer.Render(*ann.Widget)
		}
	case decor.EffectSuppress:
		// Offsets and effect say it all.
	}

	out := fmt.Sprintf("  %s  %-9s  %s", offsets, effect, detail)

	if snippet := s.snippetFor(doc, ann.Range); snippet != "" {
		out += "  " + s.Snippet.Render(snippet)
	}

	return out
}

func (s *Styles) formatEffect(kind decor.EffectKind) string {
	name := kind.String()
	switch kind {
	case decor.EffectStyle:
		return s.Style.Render(name)
	case decor.EffectSuppress:
		return s.Suppress.Render(name)
	case decor.EffectWidget:
		return s.Widget.Render(name)
	case decor.EffectLine:
		return s.Line.Render(name)
	default:
		return name
	}
}

// snippetFor returns a quoted view of the annotated source text, truncated
// to fit the configured terminal width.
func (s *Styles) snippetFor(doc *source.Document, r source.Range) string {
	text := r.Text(doc.Content)
	if text == "" {
		return ""
	}
	if limit := s.snippetLimit(); len(text) > limit {
		text = text[:limit] + "..."
	}
	return fmt.Sprintf("%q", text)
}

func (s *Styles) snippetLimit() int {
	limit := s.width - snippetOverhead
	if limit < minSnippetLen {
		limit = minSnippetLen
	}
	return limit
}
