package relay

import "fmt"

//ErrorType are relay Error types
type ErrorType int

//ErrorTypes
const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeProvider
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeProvider:
		return "provider"
	}
	return fmt.Sprintf("ErrorType(%d)", int(t))
}

//Error wraps errors returned by Relay.Reply
type Error struct {
	Description string
	Type        ErrorType
	Err         error
}

func (e *Error) Error() string {
	if e.Type == ErrorTypeValidation {
		return fmt.Sprintf("Validation Error: %s: %v", e.Description, e.Err)
	}
	return fmt.Sprintf("Provider Error: %s: %v", e.Description, e.Err)
}

//Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}
