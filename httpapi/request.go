package httpapi

//ChatRequest is a single message to relay
type ChatRequest struct {
	Message string `json:"message"`
}
