package search

import (
	"errors"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jacoelho/yamlgrep/internal/document"
	"github.com/jacoelho/yamlgrep/internal/pointer"
)

func mustCompile(t *testing.T, exprs ...string) []*regexp.Regexp {
	t.Helper()
	patterns, err := CompilePatterns(exprs, false)
	if err != nil {
		t.Fatalf("CompilePatterns(%q) error = %v", exprs, err)
	}
	return patterns
}

func TestCompilePatterns(t *testing.T) {
	t.Parallel()

	patterns, err := CompilePatterns([]string{"foo", "^bar$"}, false)
	if err != nil {
		t.Fatalf("CompilePatterns() error = %v", err)
	}
	if len(patterns) != 2 {
		t.Fatalf("CompilePatterns() returned %d patterns, want 2", len(patterns))
	}
	if patterns[0].MatchString("FOO") {
		t.Error("case-sensitive pattern matched different case")
	}

	insensitive, err := CompilePatterns([]string{"foo"}, true)
	if err != nil {
		t.Fatalf("CompilePatterns() error = %v", err)
	}
	if !insensitive[0].MatchString("FOO") {
		t.Error("case-insensitive pattern did not match different case")
	}
}

func TestCompilePatternsInvalid(t *testing.T) {
	t.Parallel()

	_, err := CompilePatterns([]string{"ok", "["}, false)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("error = %v, want ErrInvalidPattern", err)
	}
	if got := err.Error(); !regexp.MustCompile(`"\["`).MatchString(got) {
		t.Fatalf("error %q does not name the offending pattern", got)
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tree  *document.Node
		exprs []string
		opts  Options
		want  []Match
	}{
		{
			name: "keys_only",
			tree: document.NewMapping(
				document.Entry{Key: "secret_password", Value: document.NewString("x")},
			),
			exprs: []string{"secret"},
			opts:  Options{MatchKeys: true},
			want: []Match{
				{Path: pointer.Path{pointer.KeyToken("secret_password")}, Kind: MatchKey, Text: "secret_password"},
			},
		},
		{
			name: "values_only_skips_matching_key",
			tree: document.NewMapping(
				document.Entry{Key: "secret_password", Value: document.NewString("secret stuff")},
			),
			exprs: []string{"secret"},
			opts:  Options{MatchValues: true},
			want: []Match{
				{Path: pointer.Path{pointer.KeyToken("secret_password")}, Kind: MatchValue, Text: "secret stuff"},
			},
		},
		{
			name: "key_and_value_hits_at_same_entry",
			tree: document.NewMapping(
				document.Entry{Key: "token", Value: document.NewString("token-123")},
			),
			exprs: []string{"token"},
			opts:  Options{MatchKeys: true, MatchValues: true},
			want: []Match{
				{Path: pointer.Path{pointer.KeyToken("token")}, Kind: MatchKey, Text: "token"},
				{Path: pointer.Path{pointer.KeyToken("token")}, Kind: MatchValue, Text: "token-123"},
			},
		},
		{
			name: "sequence_index_is_address_not_key",
			tree: document.NewMapping(
				document.Entry{Key: "a", Value: document.NewSequence(
					document.NewInt(1), document.NewInt(2), document.NewInt(3),
				)},
			),
			exprs: []string{"2"},
			opts:  Options{MatchValues: true},
			want: []Match{
				{Path: pointer.Path{pointer.KeyToken("a"), pointer.IndexToken(1)}, Kind: MatchValue, Text: "2"},
			},
		},
		{
			name: "any_pattern_counts",
			tree: document.NewMapping(
				document.Entry{Key: "alpha", Value: document.NewInt(1)},
				document.Entry{Key: "beta", Value: document.NewInt(2)},
			),
			exprs: []string{"^gamma$", "^beta$"},
			opts:  Options{MatchKeys: true, MatchValues: true},
			want: []Match{
				{Path: pointer.Path{pointer.KeyToken("beta")}, Kind: MatchKey, Text: "beta"},
			},
		},
		{
			name:  "root_scalar_matches_at_root_address",
			tree:  document.NewString("hello world"),
			exprs: []string{"world"},
			opts:  Options{MatchKeys: true, MatchValues: true},
			want: []Match{
				{Path: nil, Kind: MatchValue, Text: "hello world"},
			},
		},
		{
			name:  "root_scalar_ignored_without_value_matching",
			tree:  document.NewString("hello world"),
			exprs: []string{"world"},
			opts:  Options{MatchKeys: true},
			want:  nil,
		},
		{
			name: "rendered_scalar_forms",
			tree: document.NewMapping(
				document.Entry{Key: "pi", Value: document.NewFloat(3.14)},
				document.Entry{Key: "on", Value: document.NewBool(true)},
				document.Entry{Key: "none", Value: document.NewNull()},
			),
			exprs: []string{`^3\.14$`, "^true$", "^null$"},
			opts:  Options{MatchValues: true},
			want: []Match{
				{Path: pointer.Path{pointer.KeyToken("pi")}, Kind: MatchValue, Text: "3.14"},
				{Path: pointer.Path{pointer.KeyToken("on")}, Kind: MatchValue, Text: "true"},
				{Path: pointer.Path{pointer.KeyToken("none")}, Kind: MatchValue, Text: "null"},
			},
		},
		{
			name: "deep_nesting_paths",
			tree: document.NewMapping(
				document.Entry{Key: "a", Value: document.NewSequence(
					document.NewMapping(
						document.Entry{Key: "b", Value: document.NewString("needle")},
					),
				)},
			),
			exprs: []string{"needle"},
			opts:  Options{MatchKeys: true, MatchValues: true},
			want: []Match{
				{
					Path: pointer.Path{pointer.KeyToken("a"), pointer.IndexToken(0), pointer.KeyToken("b")},
					Kind: MatchValue,
					Text: "needle",
				},
			},
		},
		{
			name: "no_matches",
			tree: document.NewMapping(
				document.Entry{Key: "a", Value: document.NewInt(1)},
			),
			exprs: []string{"zzz"},
			opts:  Options{MatchKeys: true, MatchValues: true},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Search(tt.tree, mustCompile(t, tt.exprs...), tt.opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Search() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearchMatchCap(t *testing.T) {
	t.Parallel()

	tree := document.NewMapping(
		document.Entry{Key: "x1", Value: document.NewInt(1)},
		document.Entry{Key: "x2", Value: document.NewInt(2)},
		document.Entry{Key: "x3", Value: document.NewInt(3)},
	)
	patterns := mustCompile(t, "x")

	got := Search(tree, patterns, Options{MatchKeys: true, MaxMatches: 2})
	want := []Match{
		{Path: pointer.Path{pointer.KeyToken("x1")}, Kind: MatchKey, Text: "x1"},
		{Path: pointer.Path{pointer.KeyToken("x2")}, Kind: MatchKey, Text: "x2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchMatchCapStopsBetweenKeyAndValue(t *testing.T) {
	t.Parallel()

	tree := document.NewMapping(
		document.Entry{Key: "aa", Value: document.NewString("aa")},
	)
	patterns := mustCompile(t, "aa")

	got := Search(tree, patterns, Options{MatchKeys: true, MatchValues: true, MaxMatches: 1})
	want := []Match{
		{Path: pointer.Path{pointer.KeyToken("aa")}, Kind: MatchKey, Text: "aa"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchMatchCapStopsAcrossDepths(t *testing.T) {
	t.Parallel()

	tree := document.NewMapping(
		document.Entry{Key: "outer", Value: document.NewMapping(
			document.Entry{Key: "x1", Value: document.NewInt(1)},
			document.Entry{Key: "x2", Value: document.NewInt(2)},
		)},
		document.Entry{Key: "x3", Value: document.NewInt(3)},
	)
	patterns := mustCompile(t, "x")

	got := Search(tree, patterns, Options{MatchKeys: true, MaxMatches: 1})
	want := []Match{
		{
			Path: pointer.Path{pointer.KeyToken("outer"), pointer.KeyToken("x1")},
			Kind: MatchKey,
			Text: "x1",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchZeroCapIsUnlimited(t *testing.T) {
	t.Parallel()

	tree := document.NewMapping(
		document.Entry{Key: "x1", Value: document.NewInt(1)},
		document.Entry{Key: "x2", Value: document.NewInt(2)},
	)
	patterns := mustCompile(t, "x")

	got := Search(tree, patterns, Options{MatchKeys: true, MaxMatches: 0})
	if len(got) != 2 {
		t.Fatalf("Search() returned %d matches, want 2", len(got))
	}
}

func TestSearchDeterministic(t *testing.T) {
	t.Parallel()

	tree := document.NewMapping(
		document.Entry{Key: "b", Value: document.NewSequence(
			document.NewString("m1"), document.NewString("m2"),
		)},
		document.Entry{Key: "a", Value: document.NewString("m3")},
	)
	patterns := mustCompile(t, "m")

	first := Search(tree, patterns, Options{MatchKeys: true, MatchValues: true})
	second := Search(tree, patterns, Options{MatchKeys: true, MatchValues: true})
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Search() differs (-first +second):\n%s", diff)
	}

	wantOrder := []string{"m1", "m2", "m3"}
	for i, m := range first {
		if m.Text != wantOrder[i] {
			t.Fatalf("match %d = %q, want %q (document order)", i, m.Text, wantOrder[i])
		}
	}
}

func TestMatchKindString(t *testing.T) {
	t.Parallel()

	if got := MatchKey.String(); got != "KEY" {
		t.Errorf("MatchKey.String() = %q, want KEY", got)
	}
	if got := MatchValue.String(); got != "VAL" {
		t.Errorf("MatchValue.String() = %q, want VAL", got)
	}
}
