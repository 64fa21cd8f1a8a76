// Package chatui holds the conversation state of a chat front end and the
// reducer that drives it. Front ends feed Events into Update and run the
// Effects it returns.
package chatui

import (
	"strings"
)

// Fixed interface text
const (
	ErrorText      = "❌ Error: Failed to get response"
	ThinkingText   = "Thinking..."
	EmptyHint      = "Say hi to start chatting with AI 🤖"
	MaxInputLength = 1000
)

// Title returns the page title for brand
func Title(brand string) string {
	return strings.ToUpper(brand) + " AI Chatbot"
}

// Subtitle returns the page subtitle for brand
func Subtitle(brand string) string {
	return "Powered by " + strings.ToUpper(brand)
}

// Sender identifies who wrote a Message
type Sender string

// Senders
const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single chat bubble
type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// State is the complete state of a conversation view
type State struct {
	Messages []Message
	Input    string
	Loading  bool
}

// CanSend reports whether the send action is enabled
func (s State) CanSend() bool {
	return !s.Loading && strings.TrimSpace(s.Input) != ""
}

// ShowEmptyHint reports whether the empty-state hint is visible
func (s State) ShowEmptyHint() bool {
	return len(s.Messages) == 0 && !s.Loading
}

// Event is an input to Update
type Event interface {
	isEvent()
}

// InputChanged replaces the input text
type InputChanged struct {
	Text string
}

// Submit sends the current input
type Submit struct{}

// KeyPressed is a key press in the input box
type KeyPressed struct {
	Key   string
	Shift bool
}

// ResponseReceived is a successful relay reply
type ResponseReceived struct {
	Reply string
}

// ResponseFailed is a failed relay call
type ResponseFailed struct {
	Err error
}

func (InputChanged) isEvent()     {}
func (Submit) isEvent()           {}
func (KeyPressed) isEvent()       {}
func (ResponseReceived) isEvent() {}
func (ResponseFailed) isEvent()   {}

// Effect is work requested by Update for the front end to perform
type Effect interface {
	isEffect()
}

// ScrollToBottom keeps the most recent content visible
type ScrollToBottom struct {
	Smooth bool
}

// IssueRelayCall sends Text to the relay. The front end must answer with
// ResponseReceived or ResponseFailed.
type IssueRelayCall struct {
	Text string
}

// PreventDefault suppresses the key's default behavior
type PreventDefault struct{}

// InsertNewline inserts a line break into the input
type InsertNewline struct{}

func (ScrollToBottom) isEffect() {}
func (IssueRelayCall) isEffect() {}
func (PreventDefault) isEffect() {}
func (InsertNewline) isEffect()  {}

// KeyEnter is the single-line-submit key
const KeyEnter = "Enter"

// Update returns the next state and the effects for ev. s is not modified.
func Update(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case InputChanged:
		s.Input = ev.Text
		return s, nil

	case Submit:
		if !s.CanSend() {
			return s, nil
		}
		text := s.Input
		s.Messages = appendMessage(s.Messages, Message{Sender: SenderUser, Text: text})
		s.Input = ""
		s.Loading = true
		return s, []Effect{IssueRelayCall{Text: text}, ScrollToBottom{Smooth: true}}

	case KeyPressed:
		if ev.Key != KeyEnter {
			return s, nil
		}
		if ev.Shift {
			s.Input += "\n"
			return s, []Effect{InsertNewline{}}
		}
		next, effects := Update(s, Submit{})
		return next, append([]Effect{PreventDefault{}}, effects...)

	case ResponseReceived:
		s.Messages = appendMessage(s.Messages, Message{Sender: SenderBot, Text: ev.Reply})
		s.Loading = false
		return s, []Effect{ScrollToBottom{Smooth: true}}

	case ResponseFailed:
		s.Messages = appendMessage(s.Messages, Message{Sender: SenderBot, Text: ErrorText})
		s.Loading = false
		return s, []Effect{ScrollToBottom{Smooth: true}}
	}

	return s, nil
}

// appendMessage copies msgs before appending so earlier States keep their slice
func appendMessage(msgs []Message, m Message) []Message {
	out := make([]Message, len(msgs), len(msgs)+1)
	copy(out, msgs)
	return append(out, m)
}
