package relay

// ClientMessage is the message format from client to server
type ClientMessage struct {
	Message string `json:"message"`
}

// ServerMessage is the message format from server to client
type ServerMessage struct {
	Type  string `json:"type"`            // "reply" or "error"
	Reply string `json:"reply,omitempty"` // sent with "reply"
	Error string `json:"error,omitempty"` // sent with "error"
}

// Message types
const (
	MessageTypeReply = "reply"
	MessageTypeError = "error"
)
