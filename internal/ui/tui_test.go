package ui

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/tasktree/internal/config"
	"github.com/nibzard/tasktree/internal/shell"
	"github.com/nibzard/tasktree/internal/table"
)

func newTestModel() *tuiModel {
	return newTUIModel(shell.New(nil, nil), io.Discard)
}

func enter(t *testing.T, m *tuiModel, line string) tea.Cmd {
	t.Helper()
	m.input.SetValue(line)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestEnterDispatchesThroughShell(t *testing.T) {
	m := newTestModel()
	enter(t, m, "add Clean")
	enter(t, m, "addsub 1 Kitchen")
	enter(t, m, "check 1.1")

	tasks := m.shell.Tree().Tasks
	if len(tasks) != 1 || len(tasks[0].Children) != 1 || !tasks[0].Children[0].Done {
		t.Fatalf("tree = %+v", tasks)
	}
	if got := m.input.Value(); got != "" {
		t.Errorf("input not cleared: %q", got)
	}
	if !strings.Contains(m.View(), table.String(tasks)) {
		t.Errorf("view does not contain the table:\n%s", m.View())
	}
}

func TestViewShowsMessage(t *testing.T) {
	m := newTestModel()
	enter(t, m, "check 1.x")
	if !strings.Contains(m.View(), `Invalid path "1.x"`) {
		t.Errorf("view missing message:\n%s", m.View())
	}

	enter(t, m, "add A")
	if strings.Contains(m.View(), "Invalid path") {
		t.Error("message not cleared by the next command")
	}
}

func TestExitQuits(t *testing.T) {
	m := newTestModel()
	if cmd := enter(t, m, "exit"); !isQuit(cmd) {
		t.Fatal("exit did not quit")
	}
	if got, want := m.View(), config.DefaultFarewell+"\n"; got != want {
		t.Errorf("View() = %q, want %q", got, want)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := newTestModel()
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		if !isQuit(cmd) {
			t.Errorf("key %v did not quit", key)
		}
	}
}

func TestTypingUpdatesInput(t *testing.T) {
	m := newTestModel()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("add")})
	if got := m.input.Value(); got != "add" {
		t.Errorf("input = %q, want %q", got, "add")
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.input.Width != 100-len(m.input.Prompt)-2 {
		t.Errorf("input width = %d", m.input.Width)
	}
}

func TestRunTUIRequiresTTY(t *testing.T) {
	var out bytes.Buffer
	err := RunTUI(context.Background(), shell.New(nil, nil), WithIO(strings.NewReader(""), &out))
	if err == nil || !strings.Contains(err.Error(), "TTY") {
		t.Errorf("RunTUI() error = %v, want TTY error", err)
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("buffer reported as TTY")
	}
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTTY(f) {
		t.Error("regular file reported as TTY")
	}
}
