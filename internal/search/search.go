// Package search implements the recursive pattern walk over a document
// tree. Matches are reported in document order with the structural path of
// every hit; a global cap can stop the walk early at any depth.
package search

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/jacoelho/yamlgrep/internal/document"
	"github.com/jacoelho/yamlgrep/internal/pointer"
	"github.com/jacoelho/yamlgrep/internal/stack"
)

// ErrInvalidPattern reports a regular expression that failed to compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// CompilePatterns compiles every expression before any traversal starts.
// A single failing expression rejects the whole set.
func CompilePatterns(exprs []string, ignoreCase bool) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		source := expr
		if ignoreCase {
			source = "(?i)" + source
		}
		compiled, err := regexp.Compile(source)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, expr, err)
		}
		patterns = append(patterns, compiled)
	}
	return patterns, nil
}

// MatchKind tags a hit as a key or value match.
type MatchKind int

const (
	MatchKey MatchKind = iota
	MatchValue
)

// String returns the report tag for the kind.
func (k MatchKind) String() string {
	if k == MatchKey {
		return "KEY"
	}
	return "VAL"
}

// Match is one reported hit: where it was found, whether the key or the
// value matched, and the text the patterns matched against.
type Match struct {
	Path pointer.Path
	Kind MatchKind
	Text string
}

// Options control what a search reports. MaxMatches caps the total number
// of matches across the whole walk; zero means unlimited.
type Options struct {
	MatchKeys   bool
	MatchValues bool
	MaxMatches  int
}

// Search walks the tree depth-first in document order and reports every
// mapping key and scalar value that matches any of the patterns. A match
// on any single pattern counts. The returned order is the traversal order
// and is deterministic for a given tree.
func Search(root *document.Node, patterns []*regexp.Regexp, opts Options) []Match {
	w := &walker{
		patterns: patterns,
		opts:     opts,
		path:     stack.New[pointer.Token](),
	}

	if root.Kind == document.KindScalar {
		// Degenerate document: a single value at the root address.
		if opts.MatchValues {
			w.test(root.Scalar.Render(), MatchValue)
		}
		return w.matches
	}

	w.walk(root)
	return w.matches
}

type walker struct {
	patterns []*regexp.Regexp
	opts     Options
	path     *stack.Stack[pointer.Token]
	matches  []Match
	full     bool
}

func (w *walker) walk(node *document.Node) {
	switch node.Kind {
	case document.KindMapping:
		for _, entry := range node.Entries {
			w.path.Push(pointer.KeyToken(entry.Key))
			if w.opts.MatchKeys {
				w.test(entry.Key, MatchKey)
			}
			if !w.full && w.opts.MatchValues && entry.Value.Kind == document.KindScalar {
				w.test(entry.Value.Scalar.Render(), MatchValue)
			}
			if !w.full && entry.Value.IsContainer() {
				w.walk(entry.Value)
			}
			w.path.Pop()
			if w.full {
				return
			}
		}
	case document.KindSequence:
		for i, item := range node.Items {
			w.path.Push(pointer.IndexToken(i))
			// Indices are addresses, not keys; only scalar elements are
			// candidates, and only as values.
			if w.opts.MatchValues && item.Kind == document.KindScalar {
				w.test(item.Scalar.Render(), MatchValue)
			}
			if !w.full && item.IsContainer() {
				w.walk(item)
			}
			w.path.Pop()
			if w.full {
				return
			}
		}
	}
}

// test applies every pattern to text and records one match on the first
// pattern that hits.
func (w *walker) test(text string, kind MatchKind) {
	if w.full {
		return
	}
	for _, pattern := range w.patterns {
		if pattern.MatchString(text) {
			w.emit(text, kind)
			return
		}
	}
}

// emit records the match and checks the global cap immediately, so the cap
// bounds work across arbitrarily deep recursion.
func (w *walker) emit(text string, kind MatchKind) {
	w.matches = append(w.matches, Match{
		Path: pointer.Path(w.path.ToSlice()),
		Kind: kind,
		Text: text,
	})
	if w.opts.MaxMatches > 0 && len(w.matches) >= w.opts.MaxMatches {
		w.full = true
	}
}
