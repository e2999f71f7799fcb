package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacoelho/yamlgrep/internal/config"
	"github.com/jacoelho/yamlgrep/internal/document"
	"github.com/jacoelho/yamlgrep/internal/exit"
	"github.com/jacoelho/yamlgrep/internal/highlight"
	"github.com/jacoelho/yamlgrep/internal/pointer"
	"github.com/jacoelho/yamlgrep/internal/search"
	"github.com/mattn/go-isatty"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return finish(exit.Success(stdout, config.Usage()+"\n"))
		}
		return finish(exit.Errorf(stderr, "Error: %v\n\n%s\n", err, config.Usage()))
	}

	patterns, err := search.CompilePatterns(cfg.Patterns, cfg.IgnoreCase)
	if err != nil {
		return finish(exit.Errorf(stderr, "Error: %v\n", err))
	}

	data, err := document.ReadSource(cfg.File, stdin)
	if err != nil {
		return finish(exit.Errorf(stderr, "Error: %v\n", err))
	}

	// The binary always links YAML support.
	codec := document.NewCodec(true)
	root, err := codec.Parse(data, document.HintForPath(cfg.File))
	if err != nil {
		return finish(exit.Errorf(stderr, "Error: %v\n", err))
	}

	matches := search.Search(root, patterns, search.Options{
		MatchKeys:   !cfg.ValuesOnly,
		MatchValues: !cfg.KeysOnly,
		MaxMatches:  cfg.MaxMatches,
	})
	if len(matches) == 0 {
		return finish(exit.NoMatches(stdout))
	}

	emphasis := highlight.New(colorEnabled(cfg.Color, stdout), patterns)

	var report strings.Builder
	for _, match := range matches {
		fmt.Fprintf(&report, "%s\t(%s)\t%s\n", renderPath(match.Path, cfg.PathFormat), match.Kind, emphasis.Apply(match.Text))
	}
	return finish(exit.Success(stdout, report.String()))
}

// renderPath renders a match path in the configured notation. The root is
// the empty string in pointer notation and "root" in dot notation.
func renderPath(path pointer.Path, format config.PathFormat) string {
	if format == config.PathFormatDot {
		return pointer.Dot(path)
	}
	return pointer.Encode(path)
}

// colorEnabled resolves the configured color mode against the actual
// output stream: auto emphasizes only when stdout is a terminal.
func colorEnabled(mode config.ColorMode, stdout io.Writer) bool {
	switch mode {
	case config.ColorModeAlways:
		return true
	case config.ColorModeNever:
		return false
	default:
		if f, ok := stdout.(*os.File); ok {
			return isatty.IsTerminal(f.Fd())
		}
		return false
	}
}

func finish(result *exit.Result) int {
	result.Print()
	return result.ExitCode
}
