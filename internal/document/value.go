package document

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"

	yaml "github.com/goccy/go-yaml"
)

// toYAMLValue converts a tree into values the YAML encoder renders with
// mapping keys in document order.
func toYAMLValue(node *Node) any {
	switch node.Kind {
	case KindSequence:
		items := make([]any, 0, len(node.Items))
		for _, item := range node.Items {
			items = append(items, toYAMLValue(item))
		}
		return items
	case KindMapping:
		entries := make(yaml.MapSlice, 0, len(node.Entries))
		for _, entry := range node.Entries {
			entries = append(entries, yaml.MapItem{Key: entry.Key, Value: toYAMLValue(entry.Value)})
		}
		return entries
	default:
		return scalarValue(node.Scalar)
	}
}

func scalarValue(scalar Scalar) any {
	switch scalar.Type {
	case TypeString:
		return scalar.Str
	case TypeInt:
		return scalar.Int
	case TypeFloat:
		return scalar.Float
	case TypeBool:
		return scalar.Bool
	default:
		return nil
	}
}

// ToValue converts a tree into plain maps and slices.
func ToValue(node *Node) any {
	switch node.Kind {
	case KindSequence:
		items := make([]any, 0, len(node.Items))
		for _, item := range node.Items {
			items = append(items, ToValue(item))
		}
		return items
	case KindMapping:
		object := make(map[string]any, len(node.Entries))
		for _, entry := range node.Entries {
			object[entry.Key] = ToValue(entry.Value)
		}
		return object
	default:
		return scalarValue(node.Scalar)
	}
}

// FromValue converts plain Go values into a tree. Plain maps carry no
// document order, so mapping keys come out sorted.
func FromValue(value any) *Node {
	switch current := value.(type) {
	case nil:
		return NewNull()
	case bool:
		return NewBool(current)
	case string:
		return NewString(current)
	case []any:
		items := make([]*Node, 0, len(current))
		for _, item := range current {
			items = append(items, FromValue(item))
		}
		return NewSequence(items...)
	case map[string]any:
		keys := slices.Sorted(maps.Keys(current))
		entries := make([]Entry, 0, len(keys))
		for _, key := range keys {
			entries = append(entries, Entry{Key: key, Value: FromValue(current[key])})
		}
		return NewMapping(entries...)
	case json.Number:
		if parsed, err := current.Int64(); err == nil {
			return NewInt(parsed)
		}
		parsed, _ := current.Float64()
		return NewFloat(parsed)
	default:
		if parsed, ok := toInt64(current); ok {
			return NewInt(parsed)
		}
		if parsed, ok := toFloat64(current); ok {
			return NewFloat(parsed)
		}
		return NewString(fmt.Sprint(current))
	}
}

// toInt64 converts integer-typed values to int64.
func toInt64(value any) (int64, bool) {
	switch current := value.(type) {
	case int:
		return int64(current), true
	case int8:
		return int64(current), true
	case int16:
		return int64(current), true
	case int32:
		return int64(current), true
	case int64:
		return current, true
	case uint:
		if uint64(current) > math.MaxInt64 {
			return 0, false
		}
		return int64(current), true
	case uint8:
		return int64(current), true
	case uint16:
		return int64(current), true
	case uint32:
		return int64(current), true
	case uint64:
		if current > math.MaxInt64 {
			return 0, false
		}
		return int64(current), true
	default:
		return 0, false
	}
}

// toFloat64 converts supported numeric values to float64.
func toFloat64(value any) (float64, bool) {
	switch current := value.(type) {
	case int:
		return float64(current), true
	case int8:
		return float64(current), true
	case int16:
		return float64(current), true
	case int32:
		return float64(current), true
	case int64:
		return float64(current), true
	case uint:
		return float64(current), true
	case uint8:
		return float64(current), true
	case uint16:
		return float64(current), true
	case uint32:
		return float64(current), true
	case uint64:
		return float64(current), true
	case float32:
		return float64(current), true
	case float64:
		return current, true
	default:
		return 0, false
	}
}
