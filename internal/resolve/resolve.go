// Package resolve walks a document tree token by token to the node a
// pointer addresses. Failures identify the failing token and the tree
// state at that point.
package resolve

import (
	"errors"
	"strconv"

	"github.com/jacoelho/yamlgrep/internal/document"
)

// maxKeySample bounds the available-keys hint in KeyNotFoundError.
const maxKeySample = 10

// Resolve descends from root one token at a time and returns the node the
// tokens address. An empty token list resolves to the root without
// inspecting its kind. Sequence tokens must parse as base-10 indices;
// mapping tokens must name a present key.
func Resolve(root *document.Node, tokens []string) (*document.Node, error) {
	current := root
	for depth, token := range tokens {
		consumed := tokens[:depth]

		switch current.Kind {
		case document.KindSequence:
			index, err := strconv.Atoi(token)
			if err != nil {
				// A well-formed number beyond the int range is out of
				// range, not a key.
				if errors.Is(err, strconv.ErrRange) {
					return nil, &IndexOutOfRangeError{Consumed: consumed, Index: index, Length: len(current.Items)}
				}
				return nil, &NotAnIndexError{Consumed: consumed, Token: token}
			}
			if index < 0 || index >= len(current.Items) {
				return nil, &IndexOutOfRangeError{Consumed: consumed, Index: index, Length: len(current.Items)}
			}
			current = current.Items[index]
		case document.KindMapping:
			value, ok := current.Lookup(token)
			if !ok {
				keys := current.Keys()
				sample := keys
				if len(sample) > maxKeySample {
					sample = sample[:maxKeySample]
				}
				return nil, &KeyNotFoundError{
					Consumed:  consumed,
					Token:     token,
					Available: sample,
					Total:     len(keys),
				}
			}
			current = value
		default:
			return nil, &CannotDescendError{Consumed: consumed, Kind: current.Kind}
		}
	}
	return current, nil
}
