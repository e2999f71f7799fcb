// Package highlight renders regexp matches in bold for terminal output.
package highlight

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/fatih/color"
)

// Highlighter wraps the matched regions of a line in a bold style.
// Overlapping and touching regions merge into a single styled span.
type Highlighter struct {
	style    *color.Color
	patterns []*regexp.Regexp
	enabled  bool
}

// New builds a highlighter for the given patterns. The enabled flag is
// decided by the caller, so output redirection and --color flags stay a
// command-line concern.
func New(enabled bool, patterns []*regexp.Regexp) *Highlighter {
	style := color.New(color.Bold)
	if enabled {
		style.EnableColor()
	} else {
		style.DisableColor()
	}
	return &Highlighter{style: style, patterns: patterns, enabled: enabled}
}

// Apply returns text with every pattern match wrapped in the style.
// Disabled highlighters return text unchanged.
func (h *Highlighter) Apply(text string) string {
	if !h.enabled {
		return text
	}

	spans := h.spans(text)
	if len(spans) == 0 {
		return text
	}

	var out strings.Builder
	last := 0
	for _, s := range spans {
		out.WriteString(text[last:s.start])
		out.WriteString(h.style.Sprint(text[s.start:s.end]))
		last = s.end
	}
	out.WriteString(text[last:])
	return out.String()
}

type span struct {
	start int
	end   int
}

// spans collects the match regions of every pattern, sorted and merged.
// Empty matches highlight nothing and are dropped.
func (h *Highlighter) spans(text string) []span {
	var spans []span
	for _, pattern := range h.patterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			if loc[0] == loc[1] {
				continue
			}
			spans = append(spans, span{start: loc[0], end: loc[1]})
		}
	}
	if len(spans) == 0 {
		return nil
	}

	slices.SortFunc(spans, func(a, b span) int {
		if c := cmp.Compare(a.start, b.start); c != 0 {
			return c
		}
		return cmp.Compare(a.end, b.end)
	})

	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start <= last.end {
			last.end = max(last.end, s.end)
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
