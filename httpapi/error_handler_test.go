package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/korylprince/mians-chat/relay"
)

func TestRelayErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"validation", &relay.Error{Type: relay.ErrorTypeValidation, Err: errors.New("empty")}, http.StatusBadRequest, "Message is required"},
		{"provider", &relay.Error{Type: relay.ErrorTypeProvider, Err: errors.New("timeout")}, http.StatusInternalServerError, "Something went wrong with Gemini"},
		{"wrapped", fmt.Errorf("outer: %w", &relay.Error{Type: relay.ErrorTypeValidation}), http.StatusBadRequest, "Message is required"},
		{"untyped", errors.New("surprise"), http.StatusInternalServerError, "Something went wrong with Gemini"},
		{"unknown type", &relay.Error{Type: relay.ErrorType(99)}, http.StatusInternalServerError, "Something went wrong with Gemini"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := relayErrorMessage(tc.err, "Gemini")
			if code != tc.code {
				t.Errorf("Expected code %d, got %d", tc.code, code)
			}
			if msg != tc.msg {
				t.Errorf("Expected %q, got %q", tc.msg, msg)
			}
		})
	}
}

func TestCheckRelayErrorNil(t *testing.T) {
	if resp := checkRelayError(nil, "Cohere"); resp != nil {
		t.Errorf("Expected nil response, got %#v", resp)
	}
}
