package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/korylprince/mians-chat/relay"
)

//maxRequestBytes limits the size of a chat request body
const maxRequestBytes = 64 * 1024

//POST /api/chat
func handleChat(rl *relay.Relay) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		if r.Method != http.MethodPost {
			return handleError(http.StatusMethodNotAllowed, MethodNotAllowed, fmt.Errorf("Method %s not allowed", r.Method))
		}

		req := new(ChatRequest)
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(req); err != nil {
			return checkRelayError(&relay.Error{Description: "Could not decode request", Type: relay.ErrorTypeValidation, Err: err}, rl.ProviderName())
		}

		reply, err := rl.Reply(r.Context(), req.Message)
		if resp := checkRelayError(err, rl.ProviderName()); resp != nil {
			return resp
		}

		return &handlerResponse{Code: http.StatusOK, Body: &ChatResponse{Reply: reply}}
	}
}

//GET /healthz
func handleHealth(w http.ResponseWriter, r *http.Request) *handlerResponse {
	return &handlerResponse{Code: http.StatusOK, Body: &HealthResponse{Status: "ok"}}
}

//wsErrorMessage maps relay errors to client messages for the WebSocket transport
func wsErrorMessage(rl *relay.Relay) relay.ErrorMessageFunc {
	return func(err error) string {
		_, msg := relayErrorMessage(err, rl.ProviderName())
		return msg
	}
}
