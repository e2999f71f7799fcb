package document

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	yaml "github.com/goccy/go-yaml"
)

var (
	// ErrParse is the sentinel error for all parse failures.
	ErrParse = fmt.Errorf("parse error")
	// ErrYAMLUnavailable reports that YAML support was requested from a
	// codec constructed without it.
	ErrYAMLUnavailable = errors.New("YAML support is not available")
	// ErrFormat reports an unknown output format name.
	ErrFormat = errors.New("format must be one of: auto, yaml, json")
)

// Hint tells Parse what syntax the byte source claims to be.
type Hint string

const (
	HintYAML    Hint = "yaml"
	HintJSON    Hint = "json"
	HintUnknown Hint = "unknown"
)

// Format selects a serialization syntax.
type Format string

const (
	FormatAuto Format = "auto"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat parses a format name from user input.
func ParseFormat(input string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", string(FormatAuto):
		return FormatAuto, nil
	case string(FormatYAML):
		return FormatYAML, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w, got: %s", ErrFormat, input)
	}
}

// HintForPath guesses the input syntax from the file name. The stdin
// sentinel "-" and unknown extensions map to HintUnknown.
func HintForPath(path string) Hint {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return HintYAML
	case ".json":
		return HintJSON
	default:
		return HintUnknown
	}
}

// Codec parses documents into trees and serializes trees back to bytes.
// The YAML capability is fixed at construction so callers and tests decide
// what the codec can do instead of consulting process-wide state.
type Codec struct {
	yamlCapable bool
}

// NewCodec builds a codec with or without YAML support.
func NewCodec(yamlCapable bool) *Codec {
	return &Codec{yamlCapable: yamlCapable}
}

// Parse decodes document bytes according to the hint. HintUnknown tries
// strict JSON first and falls back to YAML when the codec supports it.
func (c *Codec) Parse(data []byte, hint Hint) (*Node, error) {
	switch hint {
	case HintYAML:
		if !c.yamlCapable {
			return nil, fmt.Errorf("%w: %w", ErrParse, ErrYAMLUnavailable)
		}
		return parseYAML(data)
	case HintJSON:
		return parseJSON(data)
	default:
		node, jsonErr := parseJSON(data)
		if jsonErr == nil {
			return node, nil
		}
		if !c.yamlCapable {
			return nil, fmt.Errorf("%w: input is not valid JSON and %w", ErrParse, ErrYAMLUnavailable)
		}
		return parseYAML(data)
	}
}

// ResolveFormat maps FormatAuto to a concrete syntax: YAML when the codec
// can serialize it, JSON otherwise.
func (c *Codec) ResolveFormat(format Format) Format {
	if format != FormatAuto {
		return format
	}
	if c.yamlCapable {
		return FormatYAML
	}
	return FormatJSON
}

// Serialize renders a tree in the requested format.
func (c *Codec) Serialize(node *Node, format Format) ([]byte, error) {
	switch c.ResolveFormat(format) {
	case FormatYAML:
		if !c.yamlCapable {
			return nil, fmt.Errorf("encode YAML: %w", ErrYAMLUnavailable)
		}
		payload, err := yaml.Marshal(toYAMLValue(node))
		if err != nil {
			return nil, fmt.Errorf("encode YAML: %w", err)
		}
		return payload, nil
	default:
		return marshalJSON(node), nil
	}
}
