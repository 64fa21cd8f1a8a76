package relay

import "fmt"

// Preamble returns the instruction placed before every user message. The
// model is asked to introduce itself as brand; compliance is not guaranteed.
func Preamble(brand string) string {
	return fmt.Sprintf(`
If the user asks "Who are you?", respond with "%s".
Otherwise, answer naturally.
`, brand)
}

// BuildPrompt joins the preamble and the user's message into a single
// completion prompt.
func BuildPrompt(brand, message string) string {
	return Preamble(brand) + "\nUser: " + message + "\nBot:\n"
}
