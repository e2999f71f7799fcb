// Package document holds the in-memory tree parsed from a YAML or JSON
// source and the codec that produces and re-serializes it. A tree is one of
// three node kinds: scalar, sequence, or mapping. Mappings preserve the
// source's entry order and hold one entry per key: parsing collapses a
// repeated key into its first occurrence's slot with the newest value.
// Everything downstream (search reports, pointer resolution) relies on
// that order being stable.
package document

import (
	"math"
	"strconv"
	"strings"
)

// Kind classifies a Node. All traversal code dispatches on this tag.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

// String returns the lowercase kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// ScalarType classifies the value held by a Scalar.
type ScalarType int

const (
	TypeNull ScalarType = iota
	TypeString
	TypeInt
	TypeFloat
	TypeBool
)

// Scalar is a leaf value. Exactly one of the value fields is meaningful,
// selected by Type; the zero Scalar is null.
type Scalar struct {
	Type  ScalarType
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

// Render returns the canonical text form used for regex matching and key
// stringification: strings verbatim, everything else in its JSON literal
// form ("42", "1.5", "true", "null").
func (s Scalar) Render() string {
	switch s.Type {
	case TypeString:
		return s.Str
	case TypeInt:
		return strconv.FormatInt(s.Int, 10)
	case TypeFloat:
		return renderFloat(s.Float)
	case TypeBool:
		return strconv.FormatBool(s.Bool)
	default:
		return "null"
	}
}

// renderFloat keeps the integer/float distinction visible ("1" vs "1.0") and
// follows encoding/json's exponent threshold for very large and very small
// magnitudes.
func renderFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if format == 'f' && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Entry is a single mapping pair. Keys are always strings; non-string source
// keys are stringified through Scalar.Render at parse time.
type Entry struct {
	Key   string
	Value *Node
}

// Node is the closed tagged union over the three tree variants. Scalar is
// meaningful only for KindScalar, Items for KindSequence, and Entries for
// KindMapping. Trees are never mutated after parsing.
type Node struct {
	Kind    Kind
	Scalar  Scalar
	Items   []*Node
	Entries []Entry
}

// IsContainer reports whether the node can hold children.
func (n *Node) IsContainer() bool {
	return n.Kind == KindSequence || n.Kind == KindMapping
}

// Lookup returns the value of the entry with the given key.
func (n *Node) Lookup(key string) (*Node, bool) {
	if n.Kind != KindMapping {
		return nil, false
	}
	for _, entry := range n.Entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}

// Keys returns the mapping keys in document order.
func (n *Node) Keys() []string {
	if n.Kind != KindMapping || len(n.Entries) == 0 {
		return nil
	}
	keys := make([]string, len(n.Entries))
	for i, entry := range n.Entries {
		keys[i] = entry.Key
	}
	return keys
}

// NewString returns a string scalar node.
func NewString(v string) *Node {
	return &Node{Kind: KindScalar, Scalar: Scalar{Type: TypeString, Str: v}}
}

// NewInt returns an integer scalar node.
func NewInt(v int64) *Node {
	return &Node{Kind: KindScalar, Scalar: Scalar{Type: TypeInt, Int: v}}
}

// NewFloat returns a float scalar node.
func NewFloat(v float64) *Node {
	return &Node{Kind: KindScalar, Scalar: Scalar{Type: TypeFloat, Float: v}}
}

// NewBool returns a boolean scalar node.
func NewBool(v bool) *Node {
	return &Node{Kind: KindScalar, Scalar: Scalar{Type: TypeBool, Bool: v}}
}

// NewNull returns a null scalar node.
func NewNull() *Node {
	return &Node{Kind: KindScalar}
}

// NewSequence returns a sequence node over the given items.
func NewSequence(items ...*Node) *Node {
	return &Node{Kind: KindSequence, Items: items}
}

// NewMapping returns a mapping node over the given entries.
func NewMapping(entries ...Entry) *Node {
	return &Node{Kind: KindMapping, Entries: entries}
}

// setEntry folds a pair into the entry list with last-wins duplicate
// semantics: a repeated key keeps its first position and takes the new
// value.
func setEntry(entries []Entry, key string, value *Node) []Entry {
	for i := range entries {
		if entries[i].Key == key {
			entries[i].Value = value
			return entries
		}
	}
	return append(entries, Entry{Key: key, Value: value})
}
