package relay

import (
	"regexp"
	"strings"
)

// Rebrander replaces one brand with another, ignoring case
type Rebrander struct {
	re *regexp.Regexp
	to string
}

// NewRebrander compiles a Rebrander replacing from with to. An empty from
// only trims.
func NewRebrander(from, to string) *Rebrander {
	b := &Rebrander{to: to}
	if from != "" {
		b.re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(from))
	}
	return b
}

// Rebrand replaces every occurrence of the brand in text and trims
// surrounding whitespace from the result.
func (b *Rebrander) Rebrand(text string) string {
	if b.re != nil {
		text = b.re.ReplaceAllLiteralString(text, b.to)
	}
	return strings.TrimSpace(text)
}

// Rebrand replaces every occurrence of from in text with to, ignoring case,
// and trims surrounding whitespace from the result.
func Rebrand(text, from, to string) string {
	return NewRebrander(from, to).Rebrand(text)
}
