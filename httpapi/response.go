package httpapi

//ChatResponse is a successful relay reply
type ChatResponse struct {
	Reply string `json:"reply"`
}

//HealthResponse reports the server is up
type HealthResponse struct {
	Status string `json:"status"`
}
