package pointer

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Dot renders a path in the human-oriented dot notation: the root is the
// literal "root", identifier-shaped keys append ".key", other keys append a
// bracketed JSON-quoted form, and indices append "[i]". Dot output is for
// display only and does not round-trip.
func Dot(path Path) string {
	var b strings.Builder
	b.WriteString("root")
	for _, token := range path {
		switch {
		case token.IsIndex:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(token.Index))
			b.WriteByte(']')
		case identifier.MatchString(token.Key):
			b.WriteByte('.')
			b.WriteString(token.Key)
		default:
			quoted, _ := json.Marshal(token.Key)
			b.WriteByte('[')
			b.Write(quoted)
			b.WriteByte(']')
		}
	}
	return b.String()
}
