package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dongho-jung/cafeinstall/internal/runner"
)

func TestSpinnerQuitsWhenCommandDone(t *testing.T) {
	m := NewSpinner("npm install", nil)

	if view := m.View(); !strings.Contains(view, "npm install") {
		t.Errorf("View() = %q, want it to contain the command", view)
	}

	_, cmd := m.Update(commandDoneMsg{})
	if cmd == nil {
		t.Fatal("Update(commandDoneMsg) returned nil cmd, want tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("Update(commandDoneMsg) cmd produced %T, want tea.QuitMsg", cmd())
	}
	if view := m.View(); view != "" {
		t.Errorf("View() after done = %q, want empty", view)
	}
}

func TestSpinnerCtrlCCancelsOnce(t *testing.T) {
	calls := 0
	m := NewSpinner("npm run build", func() { calls++ })

	key := tea.KeyMsg{Type: tea.KeyCtrlC}
	_, cmd := m.Update(key)
	if cmd != nil {
		t.Error("ctrl+c should not quit before the command returns")
	}
	m.Update(key)

	if calls != 1 {
		t.Errorf("cancel called %d times, want 1", calls)
	}
	if !m.Interrupted() {
		t.Error("Interrupted() = false, want true")
	}
	if view := m.View(); !strings.Contains(view, "(stopping...)") {
		t.Errorf("View() = %q, want stopping hint", view)
	}
}

func TestSpinnerIgnoresOtherKeys(t *testing.T) {
	calls := 0
	m := NewSpinner("npm install", func() { calls++ })

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if calls != 0 || m.Interrupted() {
		t.Error("only ctrl+c should interrupt the command")
	}
}

type stubRunner struct {
	result runner.Result
	got    string
	ctxErr error
}

func (s *stubRunner) Run(ctx context.Context, command string) runner.Result {
	s.got = command
	s.ctxErr = ctx.Err()
	return s.result
}

func TestSpinnerRunnerReturnsWrappedResult(t *testing.T) {
	stub := &stubRunner{result: runner.Result{Command: "npm install", ExitCode: 3, Stderr: "boom"}}
	var out bytes.Buffer

	r := NewSpinnerRunner(stub, &out, tea.WithInput(nil))
	got := r.Run(context.Background(), "npm install")

	if stub.got != "npm install" {
		t.Errorf("wrapped runner got %q, want %q", stub.got, "npm install")
	}
	if stub.ctxErr != nil {
		t.Errorf("wrapped runner saw a canceled context: %v", stub.ctxErr)
	}
	if got.ExitCode != 3 || got.Stderr != "boom" {
		t.Errorf("Run() = %+v, want the wrapped result", got)
	}
}
