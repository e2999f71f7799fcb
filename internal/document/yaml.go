package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	yaml "github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
)

// yamlRoot adapts goccy's AST callback into tree construction. Decoding
// through the AST instead of a plain map keeps mapping entries in document
// order.
type yamlRoot struct {
	node    *Node
	anchors map[string]*Node
}

// UnmarshalYAML builds the tree for one document.
func (r *yamlRoot) UnmarshalYAML(node ast.Node) error {
	r.anchors = make(map[string]*Node)
	built, err := r.build(node)
	if err != nil {
		return err
	}
	r.node = built
	return nil
}

func parseYAML(data []byte) (*Node, error) {
	// Repeated keys pass the parser and collapse in the mapping build.
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.AllowDuplicateMapKey())

	var root yamlRoot
	if err := decoder.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty stream is a null document.
			return NewNull(), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var extra any
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: expected a single document", ErrParse)
	}

	return root.node, nil
}

func (r *yamlRoot) build(node ast.Node) (*Node, error) {
	switch n := node.(type) {
	case *ast.DocumentNode:
		return r.build(n.Body)
	case *ast.MappingNode:
		entries := make([]Entry, 0, len(n.Values))
		for _, pair := range n.Values {
			entry, err := r.buildEntry(pair)
			if err != nil {
				return nil, err
			}
			entries = setEntry(entries, entry.Key, entry.Value)
		}
		return NewMapping(entries...), nil
	case *ast.MappingValueNode:
		// A single-pair mapping arrives as the pair itself.
		entry, err := r.buildEntry(n)
		if err != nil {
			return nil, err
		}
		return NewMapping(entry), nil
	case *ast.SequenceNode:
		items := make([]*Node, 0, len(n.Values))
		for _, value := range n.Values {
			item, err := r.build(value)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return NewSequence(items...), nil
	case *ast.StringNode:
		return NewString(n.Value), nil
	case *ast.LiteralNode:
		return NewString(n.Value.Value), nil
	case *ast.IntegerNode:
		switch v := n.Value.(type) {
		case int64:
			return NewInt(v), nil
		case uint64:
			if v <= math.MaxInt64 {
				return NewInt(int64(v)), nil
			}
			return NewFloat(float64(v)), nil
		default:
			return nil, fmt.Errorf("%w: unexpected integer value type %T", ErrParse, n.Value)
		}
	case *ast.FloatNode:
		return NewFloat(n.Value), nil
	case *ast.BoolNode:
		return NewBool(n.Value), nil
	case *ast.NullNode:
		return NewNull(), nil
	case *ast.InfinityNode:
		return NewFloat(n.Value), nil
	case *ast.NanNode:
		return NewFloat(math.NaN()), nil
	case *ast.TagNode:
		return r.build(n.Value)
	case *ast.AnchorNode:
		name, ok := n.Name.(*ast.StringNode)
		if !ok {
			return nil, fmt.Errorf("%w: anchor name must be a string", ErrParse)
		}
		built, err := r.build(n.Value)
		if err != nil {
			return nil, err
		}
		r.anchors[name.Value] = built
		return built, nil
	case *ast.AliasNode:
		name, ok := n.Value.(*ast.StringNode)
		if !ok {
			return nil, fmt.Errorf("%w: alias name must be a string", ErrParse)
		}
		target, ok := r.anchors[name.Value]
		if !ok {
			return nil, fmt.Errorf("%w: undefined alias %q", ErrParse, name.Value)
		}
		return target, nil
	default:
		return nil, fmt.Errorf("%w: unsupported node type %T", ErrParse, node)
	}
}

func (r *yamlRoot) buildEntry(pair *ast.MappingValueNode) (Entry, error) {
	if _, ok := pair.Key.(*ast.MergeKeyNode); ok {
		return Entry{}, fmt.Errorf("%w: merge keys are not supported", ErrParse)
	}

	key, err := r.build(pair.Key)
	if err != nil {
		return Entry{}, err
	}
	if key.Kind != KindScalar {
		return Entry{}, fmt.Errorf("%w: mapping key must be a scalar, got %s", ErrParse, key.Kind)
	}

	value, err := r.build(pair.Value)
	if err != nil {
		return Entry{}, err
	}

	return Entry{Key: key.Scalar.Render(), Value: value}, nil
}
