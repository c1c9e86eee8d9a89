package spinner

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type doneMsg struct {
	err error
}

type model struct {
	spinner spinner.Model
	props   Props
	work    tea.Cmd
	err     error
	done    bool
}

func newModel(props Props, work tea.Cmd) model {
	props = props.withDefaults()

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(StyleFromClass(props.ClassName)),
	)
	if props.Ref != nil {
		*props.Ref = s
	}

	return model{
		spinner: s,
		props:   props,
		work:    work,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			m.err = context.Canceled
			return m, tea.Quit
		}
		return m, nil
	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.props.text())
}

// Run shows the spinner on output while work runs and returns work's error.
// Keyboard input is only read when the spinner is focusable; ctrl+c then
// aborts with context.Canceled.
func Run(ctx context.Context, output io.Writer, props Props, work func(context.Context) error) error {
	workCmd := func() tea.Msg {
		return doneMsg{err: work(ctx)}
	}

	m := newModel(props, workCmd)

	opts := []tea.ProgramOption{
		tea.WithOutput(output),
		tea.WithContext(ctx),
	}
	if !*m.props.Focusable {
		opts = append(opts, tea.WithInput(nil))
	}

	finalModel, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(model)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}
	if props.Ref != nil {
		*props.Ref = result.spinner
	}

	return result.err
}
