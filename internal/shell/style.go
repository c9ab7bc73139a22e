package shell

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles colors shell output. The zero value leaves text untouched.
type Styles struct {
	enabled  bool
	prompt   lipgloss.Style
	message  lipgloss.Style
	farewell lipgloss.Style
}

// NewStyles returns styles bound to w's color profile. When color is false
// every method returns its input unchanged.
func NewStyles(w io.Writer, color bool) Styles {
	if !color {
		return Styles{}
	}
	r := lipgloss.NewRenderer(w)
	return Styles{
		enabled:  true,
		prompt:   r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		message:  r.NewStyle().Foreground(lipgloss.Color("9")),
		farewell: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// Prompt styles the shell prompt.
func (s Styles) Prompt(str string) string {
	if !s.enabled {
		return str
	}
	return s.prompt.Render(str)
}

// Message styles a one-line error or help message.
func (s Styles) Message(str string) string {
	if !s.enabled {
		return str
	}
	return s.message.Render(str)
}

// Farewell styles the line printed on exit.
func (s Styles) Farewell(str string) string {
	if !s.enabled {
		return str
	}
	return s.farewell.Render(str)
}
