package widget

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Renderer renders widget specs to display text.
// Render functions are stateless: the same spec always produces the same
// output, so widgets can be materialized lazily and discarded freely.
type Renderer struct {
	label   lipgloss.Style
	badge   lipgloss.Style
	button  lipgloss.Style
	muted   lipgloss.Style
	imageFg lipgloss.Style
}

// NewRenderer creates a Renderer. With color disabled every style is a
// no-op and Render returns plain text.
func NewRenderer(colorEnabled bool) *Renderer {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Renderer{label: plain, badge: plain, button: plain, muted: plain, imageFg: plain}
	}
	return &Renderer{
		label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		badge:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		button:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Underline(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		imageFg: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

// Render returns the display text for a widget spec.
func (r *Renderer) Render(spec Spec) string {
	switch spec.Kind {
	case KindBlockOpen:
		return r.renderBlockOpen(spec)
	case KindBlockClose:
		return r.muted.Render("···")
	case KindCodeLabel:
		if spec.Lang != "" {
			return r.muted.Render(fmt.Sprintf("Code (%s)", spec.Lang))
		}
		return r.muted.Render("Code")
	case KindImage:
		if spec.Alt != "" {
			return r.imageFg.Render(fmt.Sprintf("[image: %s]", spec.Alt))
		}
		return r.imageFg.Render(fmt.Sprintf("[image: %s]", spec.URL))
	case KindPostPublish:
		return r.renderPostPublish(spec)
	default:
		return ""
	}
}

func (r *Renderer) renderBlockOpen(spec Spec) string {
	out := r.label.Render("Blog post")
	if spec.Published {
		out += " " + r.badge.Render("published")
	}
	if spec.HasPublish {
		out += " " + r.button.Render(publishLabel(spec.Published))
	}
	return out
}

func (r *Renderer) renderPostPublish(spec Spec) string {
	if !spec.HasPublish {
		return ""
	}
	out := r.button.Render(publishLabel(spec.Published))
	if spec.BlogName != "" {
		out += " " + r.muted.Render("→ "+spec.BlogName)
	}
	return out
}

func publishLabel(published bool) string {
	if published {
		return "Republish"
	}
	return "Publish"
}
