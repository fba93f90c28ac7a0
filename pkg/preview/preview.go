// Package preview renders a note to HTML for the live preview pane and for
// export. Livemark's structural lines (blog-block sentinels, block
// front-matter, metadata lines, pseudo-post fields) are stripped first; the
// remaining markdown renders through goldmark with the GFM strikethrough
// and task list extensions.
package preview

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Options configures an Exporter.
type Options struct {
	// Standalone wraps the fragment in a complete HTML document.
	Standalone bool

	// Title is the document title for standalone output.
	Title string

	// MetadataPrefix marks metadata lines to strip (case-insensitive).
	MetadataPrefix string
}

// Exporter converts note content to HTML.
type Exporter struct {
	opts Options
	md   goldmark.Markdown
}

// New creates an Exporter.
func New(opts Options) *Exporter {
	return &Exporter{
		opts: opts,
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Strikethrough,
				extension.TaskList,
			),
		),
	}
}

// Export strips livemark structural lines from content and writes the
// rendered HTML to w.
func (e *Exporter) Export(w io.Writer, content []byte) error {
	stripped := Strip(content, e.opts.MetadataPrefix)

	if e.opts.Standalone {
		if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n",
			html.EscapeString(e.opts.Title)); err != nil {
			return fmt.Errorf("write preamble: %w", err)
		}
	}

	if err := e.md.Convert(stripped, w); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	if e.opts.Standalone {
		if _, err := io.WriteString(w, "</body>\n</html>\n"); err != nil {
			return fmt.Errorf("write epilogue: %w", err)
		}
	}

	return nil
}

// Strip removes livemark's structural lines, leaving plain markdown:
// blog-block sentinels, the front-matter region inside a blog block
// (delimiters included), metadata lines, and @word field lines.
func Strip(content []byte, metadataPrefix string) []byte {
	if metadataPrefix == "" {
		metadataPrefix = "%%meta"
	}
	metaPrefix := strings.ToLower(metadataPrefix)

	var out strings.Builder
	inBlog := false
	fmDelims := 0

	for line := range strings.Lines(string(content)) {
		text := strings.TrimRight(line, "\r\n")

		switch {
		case text == "===":
			inBlog = !inBlog
			if inBlog {
				fmDelims = 0
			}
			continue
		case inBlog && text == "---":
			fmDelims++
			continue
		case inBlog && fmDelims == 1:
			// Block front-matter: raw fields, not prose.
			continue
		case strings.HasPrefix(strings.ToLower(text), metaPrefix):
			continue
		case strings.HasPrefix(text, "@") && looksLikeField(text):
			continue
		}

		out.WriteString(line)
	}

	return []byte(out.String())
}

// looksLikeField reports whether an @-prefixed line is a pseudo-post opener
// or field line rather than prose that happens to start with @.
func looksLikeField(text string) bool {
	rest := text[1:]
	for i := 0; i < len(rest); i++ {
		b := rest[i]
		if b == ' ' {
			return i > 0
		}
		if !isWordByte(b) {
			return false
		}
	}
	return len(rest) > 0
}

func isWordByte(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
