package resolve

import (
	"fmt"
	"strings"

	"github.com/jacoelho/yamlgrep/internal/document"
	"github.com/jacoelho/yamlgrep/internal/pointer"
)

// NotAnIndexError reports a non-numeric token applied to a sequence.
type NotAnIndexError struct {
	Consumed []string
	Token    string
}

func (e *NotAnIndexError) Error() string {
	return fmt.Sprintf("expected list index at %s but got key %q", consumedPath(e.Consumed), e.Token)
}

// IndexOutOfRangeError reports a numeric token outside a sequence's bounds.
type IndexOutOfRangeError struct {
	Consumed []string
	Index    int
	Length   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range at %s (len=%d)", e.Index, consumedPath(e.Consumed), e.Length)
}

// KeyNotFoundError reports a token absent from a mapping. Available holds
// up to ten of the mapping's keys for the diagnostic; Total is the full
// key count.
type KeyNotFoundError struct {
	Consumed  []string
	Token     string
	Available []string
	Total     int
}

func (e *KeyNotFoundError) Error() string {
	msg := fmt.Sprintf("key %q not found at %s", e.Token, consumedPath(e.Consumed))
	if len(e.Available) == 0 {
		return msg
	}
	quoted := make([]string, len(e.Available))
	for i, key := range e.Available {
		quoted[i] = fmt.Sprintf("%q", key)
	}
	suffix := ""
	if e.Total > len(e.Available) {
		suffix = "..."
	}
	return fmt.Sprintf("%s (available keys: %s%s)", msg, strings.Join(quoted, ", "), suffix)
}

// CannotDescendError reports remaining tokens at a non-container node.
type CannotDescendError struct {
	Consumed []string
	Kind     document.Kind
}

func (e *CannotDescendError) Error() string {
	return fmt.Sprintf("cannot descend into non-container at %s (kind=%s)", consumedPath(e.Consumed), e.Kind)
}

// consumedPath renders the tokens walked before the failure in pointer
// notation, with the root shown as "/".
func consumedPath(tokens []string) string {
	if encoded := pointer.EncodeStrings(tokens); encoded != "" {
		return encoded
	}
	return "/"
}
