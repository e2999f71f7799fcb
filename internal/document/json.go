package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// parseJSON decodes one JSON document from the token stream, keeping object
// members in source order and collapsing repeated keys last-wins. The
// decoder is strict: anything after the top value is an error.
func parseJSON(data []byte) (*Node, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	tok, err := decoder.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty JSON input", ErrParse)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	root, err := buildJSON(decoder, tok)
	if err != nil {
		return nil, err
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON document", ErrParse)
	}

	return root, nil
}

func buildJSON(decoder *json.Decoder, tok json.Token) (*Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return buildJSONObject(decoder)
		case '[':
			return buildJSONArray(decoder)
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrParse, t.String())
		}
	case string:
		return NewString(t), nil
	case json.Number:
		return numberNode(t), nil
	case bool:
		return NewBool(t), nil
	case nil:
		return NewNull(), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
	}
}

func buildJSONObject(decoder *json.Decoder) (*Node, error) {
	var entries []Entry
	for {
		tok, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return NewMapping(entries...), nil
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key must be a string", ErrParse)
		}

		valueTok, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		value, err := buildJSON(decoder, valueTok)
		if err != nil {
			return nil, err
		}

		entries = setEntry(entries, key, value)
	}
}

func buildJSONArray(decoder *json.Decoder) (*Node, error) {
	var items []*Node
	for {
		tok, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return NewSequence(items...), nil
		}

		item, err := buildJSON(decoder, tok)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

// numberNode keeps the integer/float distinction the literal expresses.
func numberNode(num json.Number) *Node {
	if v, err := strconv.ParseInt(num.String(), 10, 64); err == nil {
		return NewInt(v)
	}
	// The decoder already validated the literal; out-of-range magnitudes
	// saturate to the float limits.
	f, _ := strconv.ParseFloat(num.String(), 64)
	return NewFloat(f)
}

// marshalJSON renders the tree with two-space indentation and object members
// in tree order, ending with a newline.
func marshalJSON(root *Node) []byte {
	out := appendJSON(nil, root, 0)
	return append(out, '\n')
}

func appendJSON(dst []byte, n *Node, depth int) []byte {
	switch n.Kind {
	case KindSequence:
		if len(n.Items) == 0 {
			return append(dst, "[]"...)
		}
		dst = append(dst, '[', '\n')
		for i, item := range n.Items {
			dst = appendIndent(dst, depth+1)
			dst = appendJSON(dst, item, depth+1)
			if i < len(n.Items)-1 {
				dst = append(dst, ',')
			}
			dst = append(dst, '\n')
		}
		dst = appendIndent(dst, depth)
		return append(dst, ']')
	case KindMapping:
		if len(n.Entries) == 0 {
			return append(dst, "{}"...)
		}
		dst = append(dst, '{', '\n')
		for i, entry := range n.Entries {
			dst = appendIndent(dst, depth+1)
			dst = appendQuoted(dst, entry.Key)
			dst = append(dst, ':', ' ')
			dst = appendJSON(dst, entry.Value, depth+1)
			if i < len(n.Entries)-1 {
				dst = append(dst, ',')
			}
			dst = append(dst, '\n')
		}
		dst = appendIndent(dst, depth)
		return append(dst, '}')
	default:
		if n.Scalar.Type == TypeString {
			return appendQuoted(dst, n.Scalar.Str)
		}
		return append(dst, n.Scalar.Render()...)
	}
}

// appendQuoted writes a JSON string without HTML escaping, so "<" and "&"
// survive serialization verbatim.
func appendQuoted(dst []byte, s string) []byte {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); err != nil {
		// Strings always encode; fall back to the escaped form.
		quoted, _ := json.Marshal(s)
		return append(dst, quoted...)
	}
	b := buf.Bytes()
	return append(dst, b[:len(b)-1]...)
}

func appendIndent(dst []byte, depth int) []byte {
	for range depth {
		dst = append(dst, ' ', ' ')
	}
	return dst
}
