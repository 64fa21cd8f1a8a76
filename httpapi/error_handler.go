package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/korylprince/mians-chat/relay"
)

//ErrorResponse represents an HTTP error
type ErrorResponse struct {
	Error string `json:"error"`
}

//Error messages returned to clients
const (
	MessageRequired  = "Message is required"
	MethodNotAllowed = "Only POST allowed"
	ProviderFailed   = "Something went wrong with {provider}"
)

//errorMapping is a status code and client message for a relay.ErrorType
type errorMapping struct {
	Code    int
	Message string
}

//relayErrors maps relay errors to responses. {provider} is replaced with the provider's name.
var relayErrors = map[relay.ErrorType]errorMapping{
	relay.ErrorTypeValidation: {Code: http.StatusBadRequest, Message: MessageRequired},
	relay.ErrorTypeProvider:   {Code: http.StatusInternalServerError, Message: ProviderFailed},
}

//handleError returns a handlerResponse response for the given code and client message
func handleError(code int, msg string, err error) *handlerResponse {
	return &handlerResponse{Code: code, Body: &ErrorResponse{Error: msg}, Err: err}
}

//notFoundHandler returns a 404 handlerResponse
func notFoundHandler(w http.ResponseWriter, r *http.Request) *handlerResponse {
	return handleError(http.StatusNotFound, http.StatusText(http.StatusNotFound), errors.New("Could not find handler"))
}

//relayErrorMessage returns the client message for err
func relayErrorMessage(err error, provider string) (code int, msg string) {
	var e *relay.Error
	if !errors.As(err, &e) {
		e = &relay.Error{Type: relay.ErrorTypeProvider, Err: err}
	}

	m, ok := relayErrors[e.Type]
	if !ok {
		m = relayErrors[relay.ErrorTypeProvider]
	}
	return m.Code, strings.ReplaceAll(m.Message, "{provider}", provider)
}

//checkRelayError checks a relay error and returns a handlerResponse for it, or nil if there was no error
func checkRelayError(err error, provider string) *handlerResponse {
	if err == nil {
		return nil
	}

	code, msg := relayErrorMessage(err, provider)
	return handleError(code, msg, err)
}
