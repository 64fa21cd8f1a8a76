package chatui_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/korylprince/mians-chat/chatui"
)

func TestSubmitSuccess(t *testing.T) {
	s := chatui.State{Input: "hi there"}

	s, effects := chatui.Update(s, chatui.Submit{})
	want := chatui.State{
		Messages: []chatui.Message{{Sender: chatui.SenderUser, Text: "hi there"}},
		Loading:  true,
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("state after submit (-want +got):\n%s", diff)
	}
	wantEffects := []chatui.Effect{chatui.IssueRelayCall{Text: "hi there"}, chatui.ScrollToBottom{Smooth: true}}
	if diff := cmp.Diff(wantEffects, effects); diff != "" {
		t.Errorf("effects after submit (-want +got):\n%s", diff)
	}

	s, effects = chatui.Update(s, chatui.ResponseReceived{Reply: "Mians is here"})
	want = chatui.State{
		Messages: []chatui.Message{
			{Sender: chatui.SenderUser, Text: "hi there"},
			{Sender: chatui.SenderBot, Text: "Mians is here"},
		},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("state after reply (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]chatui.Effect{chatui.ScrollToBottom{Smooth: true}}, effects); diff != "" {
		t.Errorf("effects after reply (-want +got):\n%s", diff)
	}
}

func TestSubmitKeepsRawText(t *testing.T) {
	s, effects := chatui.Update(chatui.State{Input: "  padded\n"}, chatui.Submit{})
	if s.Messages[0].Text != "  padded\n" {
		t.Errorf("Expected raw input, got %q", s.Messages[0].Text)
	}
	if effects[0] != (chatui.IssueRelayCall{Text: "  padded\n"}) {
		t.Errorf("Expected relay call with raw input, got %#v", effects[0])
	}
}

func TestSubmitFailure(t *testing.T) {
	s, _ := chatui.Update(chatui.State{Input: "hi"}, chatui.Submit{})
	s, effects := chatui.Update(s, chatui.ResponseFailed{Err: errors.New("status 500")})

	want := chatui.State{
		Messages: []chatui.Message{
			{Sender: chatui.SenderUser, Text: "hi"},
			{Sender: chatui.SenderBot, Text: "❌ Error: Failed to get response"},
		},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("state after failure (-want +got):\n%s", diff)
	}
	if len(effects) != 1 {
		t.Errorf("Expected a single scroll effect, got %#v", effects)
	}
}

func TestSubmitEmptyIsNoop(t *testing.T) {
	for _, input := range []string{"", " ", "\n\t "} {
		before := chatui.State{Input: input}
		after, effects := chatui.Update(before, chatui.Submit{})
		if diff := cmp.Diff(before, after); diff != "" {
			t.Errorf("input %q changed state (-want +got):\n%s", input, diff)
		}
		if len(effects) != 0 {
			t.Errorf("input %q produced effects %#v", input, effects)
		}
	}
}

func TestSubmitWhileLoadingIsNoop(t *testing.T) {
	s, _ := chatui.Update(chatui.State{Input: "first"}, chatui.Submit{})
	s, _ = chatui.Update(s, chatui.InputChanged{Text: "second"})
	if s.CanSend() {
		t.Error("Expected send to be disabled while loading")
	}

	after, effects := chatui.Update(s, chatui.Submit{})
	if diff := cmp.Diff(s, after); diff != "" {
		t.Errorf("submit while loading changed state (-want +got):\n%s", diff)
	}
	if len(effects) != 0 {
		t.Errorf("submit while loading produced effects %#v", effects)
	}
}

func TestEnterSubmits(t *testing.T) {
	s, effects := chatui.Update(chatui.State{Input: "hello"}, chatui.KeyPressed{Key: chatui.KeyEnter})

	want := []chatui.Effect{chatui.PreventDefault{}, chatui.IssueRelayCall{Text: "hello"}, chatui.ScrollToBottom{Smooth: true}}
	if diff := cmp.Diff(want, effects); diff != "" {
		t.Errorf("effects (-want +got):\n%s", diff)
	}
	if s.Input != "" || !s.Loading || len(s.Messages) != 1 {
		t.Errorf("Expected submitted state, got %#v", s)
	}
}

func TestEnterOnEmptyInputOnlyPreventsDefault(t *testing.T) {
	s, effects := chatui.Update(chatui.State{}, chatui.KeyPressed{Key: chatui.KeyEnter})
	if diff := cmp.Diff([]chatui.Effect{chatui.PreventDefault{}}, effects); diff != "" {
		t.Errorf("effects (-want +got):\n%s", diff)
	}
	if len(s.Messages) != 0 || s.Input != "" {
		t.Errorf("Expected unchanged state, got %#v", s)
	}
}

func TestShiftEnterInsertsNewline(t *testing.T) {
	s, effects := chatui.Update(chatui.State{Input: "line one"}, chatui.KeyPressed{Key: chatui.KeyEnter, Shift: true})

	if diff := cmp.Diff([]chatui.Effect{chatui.InsertNewline{}}, effects); diff != "" {
		t.Errorf("effects (-want +got):\n%s", diff)
	}
	want := chatui.State{Input: "line one\n"}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("state (-want +got):\n%s", diff)
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	before := chatui.State{Input: "x"}
	after, effects := chatui.Update(before, chatui.KeyPressed{Key: "a"})
	if diff := cmp.Diff(before, after); diff != "" || len(effects) != 0 {
		t.Errorf("Expected key to be ignored, got %#v %#v", after, effects)
	}
}

func TestUpdateDoesNotAliasMessages(t *testing.T) {
	base := chatui.State{Messages: make([]chatui.Message, 1, 4), Input: "a"}
	first, _ := chatui.Update(base, chatui.Submit{})
	second, _ := chatui.Update(base, chatui.ResponseReceived{Reply: "b"})

	if first.Messages[1].Text != "a" || second.Messages[1].Text != "b" {
		t.Errorf("States share a backing array: %#v %#v", first.Messages, second.Messages)
	}
	if len(base.Messages) != 1 {
		t.Errorf("Original state modified: %#v", base.Messages)
	}
}

func TestViewRules(t *testing.T) {
	tests := []struct {
		name    string
		state   chatui.State
		hint    bool
		canSend bool
	}{
		{"empty", chatui.State{}, true, false},
		{"typing", chatui.State{Input: "hi"}, true, true},
		{"loading", chatui.State{Input: "hi", Loading: true}, false, false},
		{"history", chatui.State{Messages: []chatui.Message{{Sender: chatui.SenderUser, Text: "hi"}}, Input: " "}, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.state.ShowEmptyHint(); got != tc.hint {
				t.Errorf("ShowEmptyHint: expected %v, got %v", tc.hint, got)
			}
			if got := tc.state.CanSend(); got != tc.canSend {
				t.Errorf("CanSend: expected %v, got %v", tc.canSend, got)
			}
		})
	}
}

func TestTitles(t *testing.T) {
	if got := chatui.Title("Mians"); got != "MIANS AI Chatbot" {
		t.Errorf("Expected title, got %q", got)
	}
	if got := chatui.Subtitle("Mians"); got != "Powered by MIANS" {
		t.Errorf("Expected subtitle, got %q", got)
	}
}
