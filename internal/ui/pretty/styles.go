// Package pretty provides Lipgloss-based styled output for the CLI.
package pretty

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// defaultWidth is used when the output is not a terminal.
const defaultWidth = 100

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Annotation components.
	Offset   lipgloss.Style
	Style    lipgloss.Style
	Suppress lipgloss.Style
	Widget   lipgloss.Style
	Line     lipgloss.Style
	Class    lipgloss.Style
	Snippet  lipgloss.Style

	// Misc.
	Title lipgloss.Style
	Dim   lipgloss.Style

	width int
}

// NewStyles creates a new Styles with the given color mode, sized for
// defaultWidth output.
func NewStyles(colorEnabled bool) *Styles {
	s := &Styles{width: defaultWidth}
	if !colorEnabled {
		return s
	}
	s.Offset = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	s.Suppress = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	s.Widget = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	s.Line = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	s.Class = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	s.Snippet = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	s.Title = lipgloss.NewStyle().Bold(true)
	s.Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	return s
}

// SetWidth sizes snippet truncation for the actual output width.
// Non-positive widths keep the default.
func (s *Styles) SetWidth(width int) {
	if width > 0 {
		s.width = width
	}
}

// ColorEnabled resolves a --color flag value ("auto", "always", "never")
// against the given output file.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}

// TerminalWidth returns the output width, falling back to a fixed width
// when the file is not a terminal.
func TerminalWidth(f *os.File) int {
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		return width
	}
	return defaultWidth
}
