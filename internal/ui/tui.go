// Package ui provides an optional full-screen terminal interface over the
// command shell.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/tasktree/internal/shell"
	"github.com/nibzard/tasktree/internal/table"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	altScreen bool
	input     io.Reader
	output    io.Writer
}

// WithAltScreen runs the TUI in the terminal's alternate screen. The
// farewell is then printed after the screen is restored.
func WithAltScreen(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.altScreen = enabled
	}
}

// WithIO overrides the program's input and output.
func WithIO(in io.Reader, out io.Writer) TUIOption {
	return func(c *tuiConfig) {
		c.input = in
		c.output = out
	}
}

// RunTUI edits the shell's tree interactively until exit, esc or ctrl+c.
func RunTUI(ctx context.Context, sh *shell.Shell, opts ...TUIOption) error {
	c := &tuiConfig{
		input:  os.Stdin,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !IsTTY(c.output) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(sh, c.output)
	model.altScreen = c.altScreen
	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(c.input),
		tea.WithOutput(c.output),
	}
	if c.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	program := tea.NewProgram(model, programOpts...)
	if _, err := program.Run(); err != nil {
		return err
	}
	if c.altScreen {
		fmt.Fprintln(c.output, sh.Config().Farewell)
	}
	return nil
}

type tuiModel struct {
	shell     *shell.Shell
	input     textinput.Model
	message   string
	quitting  bool
	altScreen bool
	styles    tuiStyles
}

type tuiStyles struct {
	title   lipgloss.Style
	message lipgloss.Style
	footer  lipgloss.Style
}

func newTUIModel(sh *shell.Shell, out io.Writer) *tuiModel {
	cfg := sh.Config()

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.Placeholder = "add <name> [due] [description]"
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()

	r := lipgloss.NewRenderer(out)
	styles := tuiStyles{
		title:   r.NewStyle(),
		message: r.NewStyle(),
		footer:  r.NewStyle(),
	}
	if cfg.Color {
		styles.title = styles.title.Bold(true).Foreground(lipgloss.Color("12"))
		styles.message = styles.message.Foreground(lipgloss.Color("9"))
		styles.footer = styles.footer.Faint(true)
	}

	return &tuiModel{
		shell:  sh,
		input:  ti,
		styles: styles,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	case tea.WindowSizeMsg:
		if w := msg.Width - len(m.input.Prompt) - 2; w > 0 {
			m.input.Width = w
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit dispatches the input line through the shell.
func (m *tuiModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	outcome := m.shell.Handle(line)
	if outcome.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if !outcome.Blank {
		m.message = outcome.Message
	}
	return m, nil
}

func (m *tuiModel) View() string {
	if m.quitting {
		if m.altScreen {
			return ""
		}
		return m.shell.Config().Farewell + "\n"
	}

	var b strings.Builder
	writeTitle(&b, m.styles.title)
	b.WriteString(table.String(m.shell.Tree().Tasks))
	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(m.styles.message.Render(strings.TrimRight(m.message, "\n")))
		b.WriteString("\n\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	writeFooter(&b, m.styles.footer)
	return b.String()
}

func writeTitle(b *strings.Builder, style lipgloss.Style) {
	title := "tasktree"
	b.WriteString(style.Render(title) + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeFooter(b *strings.Builder, style lipgloss.Style) {
	b.WriteString(style.Render("enter to run | help for commands | esc to quit"))
	b.WriteString("\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
