package relay

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ErrorMessageFunc maps a relay error to the text sent to the client
type ErrorMessageFunc func(err error) string

// Handler handles WebSocket relay connections. Each connection carries
// exactly one message and one reply.
type Handler struct {
	relay    *Relay
	errorMsg ErrorMessageFunc
	logger   *zap.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(r *Relay, errorMsg ErrorMessageFunc, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{relay: r, errorMsg: errorMsg, logger: logger}
}

// ServeHTTP handles the WebSocket upgrade and a single relay exchange
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	var clientMsg ClientMessage
	if err := conn.ReadJSON(&clientMsg); err != nil {
		h.sendError(conn, &Error{Description: "Message is required", Type: ErrorTypeValidation, Err: err})
		return
	}

	reply, err := h.relay.Reply(r.Context(), clientMsg.Message)
	if err != nil {
		h.sendError(conn, err)
		return
	}

	if err := conn.WriteJSON(ServerMessage{Type: MessageTypeReply, Reply: reply}); err != nil {
		h.logger.Warn("Failed to write reply", zap.Error(err))
	}
}

func (h *Handler) sendError(conn *websocket.Conn, err error) {
	msg := err.Error()
	if h.errorMsg != nil {
		msg = h.errorMsg(err)
	} else {
		var e *Error
		if errors.As(err, &e) {
			msg = e.Description
		}
	}
	if wErr := conn.WriteJSON(ServerMessage{Type: MessageTypeError, Error: msg}); wErr != nil {
		h.logger.Warn("Failed to write error", zap.Error(wErr))
	}
}
