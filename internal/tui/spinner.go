// Package tui provides terminal user interface components for cafe-install.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dongho-jung/cafeinstall/internal/logging"
	"github.com/dongho-jung/cafeinstall/internal/runner"
)

// Spinner shows a spinner next to a running command.
type Spinner struct {
	spinner     spinner.Model
	message     string
	done        bool
	interrupted bool
	cancel      context.CancelFunc
}

// commandDoneMsg is sent when the wrapped command has returned.
type commandDoneMsg struct{}

// NewSpinner creates a spinner for message. cancel is called when the
// operator presses ctrl+c; the spinner keeps running until the command
// actually returns.
func NewSpinner(message string, cancel context.CancelFunc) *Spinner {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
	)
	return &Spinner{
		spinner: s,
		message: message,
		cancel:  cancel,
	}
}

// Init starts the animation.
func (m *Spinner) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model.
func (m *Spinner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" && !m.interrupted {
			m.interrupted = true
			if m.cancel != nil {
				m.cancel()
			}
		}
		return m, nil

	case commandDoneMsg:
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the spinner line. It is empty once the command finished so
// the status lines that follow are not interleaved with a stale frame.
func (m *Spinner) View() string {
	if m.done {
		return ""
	}
	line := fmt.Sprintf("%s %s", m.spinner.View(), m.message)
	if m.interrupted {
		line += " (stopping...)"
	}
	return line + "\n"
}

// Interrupted reports whether the operator asked to stop the command.
func (m *Spinner) Interrupted() bool {
	return m.interrupted
}

// spinnerRunner decorates a Runner with a spinner shown while a command runs.
type spinnerRunner struct {
	next runner.Runner
	out  io.Writer
	opts []tea.ProgramOption
}

// Compile-time check that spinnerRunner implements Runner interface.
var _ runner.Runner = (*spinnerRunner)(nil)

// NewSpinnerRunner wraps next so that every command runs under a spinner
// drawn on out. Use it only when out is a terminal.
func NewSpinnerRunner(next runner.Runner, out io.Writer, opts ...tea.ProgramOption) runner.Runner {
	return &spinnerRunner{
		next: next,
		out:  out,
		opts: opts,
	}
}

func (r *spinnerRunner) Run(ctx context.Context, command string) runner.Result {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := append([]tea.ProgramOption{tea.WithOutput(r.out)}, r.opts...)
	p := tea.NewProgram(NewSpinner(command, cancel), opts...)

	results := make(chan runner.Result, 1)
	go func() {
		results <- r.next.Run(ctx, command)
		p.Send(commandDoneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		logging.Debug("spinner for %q stopped: %v", command, err)
	}
	return <-results
}
