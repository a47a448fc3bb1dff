// Package progress shows a spinner on an interactive terminal while a blocking task runs.
package progress

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Run executes task while a spinner labelled label animates on w, and
// returns the task's error once it has finished. The spinner never outlives
// the task: Run always waits for task to return, even if the display fails.
func Run(ctx context.Context, w io.Writer, label string, task func(context.Context) error) error {
	finished := make(chan struct{})
	var taskErr error
	go func() {
		defer close(finished)
		taskErr = task(ctx)
	}()

	program := tea.NewProgram(
		newModel(w, label, finished),
		tea.WithContext(ctx),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	_, _ = program.Run()

	<-finished
	return taskErr
}

type doneMsg struct{}

type model struct {
	spinner  spinner.Model
	label    string
	finished <-chan struct{}
	done     bool
}

func newModel(w io.Writer, label string, finished <-chan struct{}) model {
	r := lipgloss.NewRenderer(w)
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(r.NewStyle().Foreground(lipgloss.Color("39"))),
	)
	return model{spinner: s, label: label, finished: finished}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForTask())
}

func (m model) waitForTask() tea.Cmd {
	return func() tea.Msg {
		<-m.finished
		return doneMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.label
}
