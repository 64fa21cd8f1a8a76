package chatui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles of the terminal chat
type Styles struct {
	Header   lipgloss.Style
	Subtitle lipgloss.Style
	User     lipgloss.Style
	Bot      lipgloss.Style
	Thinking lipgloss.Style
	Hint     lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the dark theme
func DefaultStyles() Styles {
	gray := lipgloss.Color("#9ca3af")
	border := lipgloss.Color("#374151")
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(gray),
		User: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#ffffff")).
			Padding(0, 2),
		Bot: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 2),
		Thinking: lipgloss.NewStyle().Foreground(gray),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")).Italic(true),
		Help:     lipgloss.NewStyle().Foreground(border),
	}
}

// bubbleWidth is the widest a bubble may be, 70% of the view
func (m Model) bubbleWidth() int {
	w := m.width * 7 / 10
	if w < 10 {
		w = 10
	}
	return w
}

func (m Model) renderHistory() string {
	if m.state.ShowEmptyHint() {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.styles.Hint.Render(EmptyHint))
	}

	var sb strings.Builder
	for _, msg := range m.state.Messages {
		sb.WriteString(m.renderMessage(msg))
		sb.WriteString("\n\n")
	}
	if m.state.Loading {
		sb.WriteString(m.styles.Bot.Render(m.spinner.View() + " " + m.styles.Thinking.Render(ThinkingText)))
	}
	return sb.String()
}

func (m Model) renderMessage(msg Message) string {
	style := m.styles.Bot
	if msg.Sender == SenderUser {
		style = m.styles.User
	}
	// wrap long messages instead of letting them span the view
	if lipgloss.Width(msg.Text) > m.bubbleWidth() {
		style = style.Width(m.bubbleWidth())
	}

	bubble := style.Render(msg.Text)
	if msg.Sender == SenderUser {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, bubble)
	}
	return bubble
}

func (m Model) View() string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Header.Render(Title(m.brand)),
		m.styles.Subtitle.Render(Subtitle(m.brand)),
	)
	help := "enter: send • alt+enter: newline • esc: quit"
	if m.state.Loading {
		help = "waiting for reply • esc: quit"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, header),
		m.viewport.View(),
		m.input.View(),
		m.styles.Help.Render(help),
	)
}
