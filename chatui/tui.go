package chatui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Relayer sends a message to a chat relay
type Relayer interface {
	Send(ctx context.Context, text string) (string, error)
}

// replyMsg carries the result of a relay call back into the program
type replyMsg struct {
	reply string
	err   error
}

const (
	headerHeight = 3
	inputHeight  = 3
	footerHeight = 1
)

// Model is a bubbletea model for a terminal chat
type Model struct {
	state    State
	relay    Relayer
	brand    string
	styles   Styles
	input    textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	width    int
}

// NewModel creates a new terminal chat using r
func NewModel(r Relayer, brand string) Model {
	styles := DefaultStyles()

	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	ta.CharLimit = MaxInputLength
	ta.ShowLineNumbers = false
	ta.SetWidth(80)
	ta.SetHeight(inputHeight)
	// Enter submits; newlines come from InsertNewline effects
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Thinking

	m := Model{
		relay:    r,
		brand:    brand,
		styles:   styles,
		input:    ta,
		viewport: viewport.New(80, 20),
		spinner:  sp,
		width:    80,
	}
	m.refresh()
	return m
}

// State returns the current conversation state
func (m Model) State() State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			// terminals do not report shift+enter, so alt is the modifier
			return m.dispatch(KeyPressed{Key: KeyEnter, Shift: msg.Alt})
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(msg.Width)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - inputHeight - footerHeight
		m.refresh()
		m.viewport.GotoBottom()
		return m, nil

	case replyMsg:
		if msg.err != nil {
			return m.dispatch(ResponseFailed{Err: msg.err})
		}
		return m.dispatch(ResponseReceived{Reply: msg.reply})

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.state.Loading {
			m.refresh()
		}
		return m, cmd
	}

	var taCmd, vpCmd tea.Cmd
	m.input, taCmd = m.input.Update(msg)
	// keys belong to the textarea; the viewport only sees mouse and paging
	if key, ok := msg.(tea.KeyMsg); !ok || key.Type == tea.KeyPgUp || key.Type == tea.KeyPgDown {
		m.viewport, vpCmd = m.viewport.Update(msg)
	}
	m.state, _ = Update(m.state, InputChanged{Text: m.input.Value()})

	return m, tea.Batch(taCmd, vpCmd)
}

// dispatch applies ev to the state and runs the resulting effects
func (m Model) dispatch(ev Event) (Model, tea.Cmd) {
	var effects []Effect
	m.state, effects = Update(m.state, ev)

	var cmd tea.Cmd
	for _, eff := range effects {
		switch eff := eff.(type) {
		case IssueRelayCall:
			cmd = m.send(eff.Text)
		case InsertNewline:
			m.input.InsertRune('\n')
			m.state.Input = m.input.Value()
		case ScrollToBottom:
			m.refresh()
			m.viewport.GotoBottom()
		case PreventDefault:
			// enter is never forwarded to the textarea
		}
	}

	if m.state.Input == "" && m.input.Value() != "" {
		m.input.Reset()
	}

	return m, cmd
}

func (m Model) send(text string) tea.Cmd {
	r := m.relay
	return func() tea.Msg {
		reply, err := r.Send(context.Background(), text)
		return replyMsg{reply: reply, err: err}
	}
}

// refresh re-renders the conversation into the viewport
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderHistory())
}
