package spinner

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropsDefaults(t *testing.T) {
	props := Props{}.withDefaults()

	assert.Equal(t, DefaultAccessibilityLabel, props.AccessibilityLabel)
	require.NotNil(t, props.Focusable)
	assert.False(t, *props.Focusable)
	assert.Equal(t, "loading", props.text())
}

func TestPropsCallerOverridesDefaults(t *testing.T) {
	focusable := true
	props := Props{
		Label:              "Creating payment link...",
		AccessibilityLabel: "creating payment link",
		Focusable:          &focusable,
	}.withDefaults()

	assert.True(t, *props.Focusable)
	assert.Equal(t, "creating payment link", props.AccessibilityLabel)
	assert.Equal(t, "Creating payment link...", props.text())
}

func TestStyleFromClass(t *testing.T) {
	tests := []struct {
		name      string
		className string
		wantColor lipgloss.TerminalColor
		wantBold  bool
	}{
		{name: "default", className: "", wantColor: lipgloss.Color(defaultColor)},
		{name: "named color", className: "text-red", wantColor: lipgloss.Color("203")},
		{name: "shade suffix", className: "text-green-500", wantColor: lipgloss.Color("42")},
		{name: "ansi index", className: "text-99", wantColor: lipgloss.Color("99")},
		{name: "hex", className: "text-#ff8800 bold", wantColor: lipgloss.Color("#ff8800"), wantBold: true},
		{name: "unknown classes ignored", className: "h-4 w-4 text-nope", wantColor: lipgloss.Color(defaultColor)},
		{name: "out of range index ignored", className: "text-256", wantColor: lipgloss.Color(defaultColor)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StyleFromClass(tt.className)
			assert.Equal(t, tt.wantColor, style.GetForeground())
			assert.Equal(t, tt.wantBold, style.GetBold())
		})
	}
}

func TestNewModelForwardsRef(t *testing.T) {
	var ref spinner.Model
	m := newModel(Props{ClassName: "text-cyan", Ref: &ref}, nil)

	assert.Equal(t, spinner.Dot, ref.Spinner)
	assert.Equal(t, lipgloss.Color("159"), ref.Style.GetForeground())
	assert.Equal(t, m.spinner.ID(), ref.ID())
}

func TestModelViewShowsLabelUntilDone(t *testing.T) {
	m := newModel(Props{}, nil)
	assert.Contains(t, m.View(), "loading")

	updated, cmd := m.Update(doneMsg{})
	require.NotNil(t, cmd)
	assert.Empty(t, updated.View())
}

func TestModelCtrlCCancels(t *testing.T) {
	m := newModel(Props{}, nil)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	final, ok := updated.(model)
	require.True(t, ok)
	assert.ErrorIs(t, final.err, context.Canceled)
}

func TestRunReturnsWorkResult(t *testing.T) {
	var out bytes.Buffer
	var ref spinner.Model

	err := Run(context.Background(), &out, Props{Label: "Fetching customer stats...", Ref: &ref}, func(context.Context) error {
		time.Sleep(200 * time.Millisecond)
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Fetching customer stats...")
	assert.Equal(t, spinner.Dot, ref.Spinner)
}

func TestRunPropagatesWorkError(t *testing.T) {
	workErr := errors.New("request timed out")

	err := Run(context.Background(), &bytes.Buffer{}, Props{}, func(context.Context) error {
		return workErr
	})
	require.ErrorIs(t, err, workErr)
}
