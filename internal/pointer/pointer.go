// Package pointer converts tree addresses between their token form and the
// two textual notations used by the query tools: slash-delimited pointer
// notation (RFC 6901 conventions) and a display-only dot notation.
package pointer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is the sentinel error for malformed pointer input.
var ErrSyntax = errors.New("pointer must start with '/'")

// Token is a single step in a Path: either a mapping key or a sequence index.
type Token struct {
	Key     string
	Index   int
	IsIndex bool
}

// KeyToken returns a Token addressing a mapping entry.
func KeyToken(key string) Token {
	return Token{Key: key}
}

// IndexToken returns a Token addressing a sequence element.
func IndexToken(index int) Token {
	return Token{Index: index, IsIndex: true}
}

// String returns the unescaped text form of the token.
func (t Token) String() string {
	if t.IsIndex {
		return strconv.Itoa(t.Index)
	}
	return t.Key
}

// Path locates a node relative to the document root. The empty path is the
// root itself.
type Path []Token

// Escape encodes a mapping key for use as a pointer segment.
// "~" must be escaped before "/" so the output never double-escapes.
func Escape(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

// Unescape reverses Escape. The order is the mirror image: "~1" is restored
// before "~0" so a literal "~1" in a key survives the round trip.
func Unescape(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}

// Encode renders a path in pointer notation. The empty path encodes to "".
func Encode(path Path) string {
	if len(path) == 0 {
		return ""
	}

	var b strings.Builder
	for _, token := range path {
		b.WriteByte('/')
		if token.IsIndex {
			b.WriteString(strconv.Itoa(token.Index))
		} else {
			b.WriteString(Escape(token.Key))
		}
	}
	return b.String()
}

// EncodeStrings renders already-decoded string tokens in pointer notation,
// escaping every token as a mapping key.
func EncodeStrings(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder
	for _, token := range tokens {
		b.WriteByte('/')
		b.WriteString(Escape(token))
	}
	return b.String()
}

// Decode parses pointer notation into string tokens. "" and "/" address the
// root and decode to nil. Trailing slashes are tolerated and trimmed. Empty
// segments between two interior slashes are kept: an empty string is a legal
// mapping key. Decoded tokens are always strings; descending into a sequence
// is what turns a token into an index.
func Decode(ptr string) ([]string, error) {
	trimmed := strings.TrimRight(ptr, "/")
	if trimmed == "" {
		return nil, nil
	}
	if !strings.HasPrefix(trimmed, "/") {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, ptr)
	}

	segments := strings.Split(trimmed[1:], "/")
	tokens := make([]string, len(segments))
	for i, segment := range segments {
		tokens[i] = Unescape(segment)
	}
	return tokens, nil
}
