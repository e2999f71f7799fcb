package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/jacoelho/yamlgrep/internal/document"
	"github.com/jacoelho/yamlgrep/internal/exit"
	"github.com/jacoelho/yamlgrep/internal/resolve"
	"github.com/jacoelho/yamlgrep/internal/show/config"
	"github.com/theory/jsonpath"
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

	format := codec.ResolveFormat(cfg.Format)

	if cfg.Select != "" {
		return runSelect(codec, root, cfg.Select, format, stdout, stderr)
	}

	target, err := resolve.Resolve(root, cfg.Tokens)
	if err != nil {
		return finish(exit.Errorf(stderr, "Error: %v\n", err))
	}

	payload, err := codec.Serialize(target, format)
	if err != nil {
		return finish(exit.Errorf(stderr, "Error: %v\n", err))
	}
	return finish(exit.Success(stdout, string(payload)))
}

// runSelect prints every node a JSONPath expression selects. YAML results
// are separated by document markers; an empty selection exits like a
// search with no matches.
func runSelect(codec *document.Codec, root *document.Node, expr string, format document.Format, stdout, stderr io.Writer) int {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return finish(exit.Errorf(stderr, "Error: invalid JSONPath %s: %v\n", expr, err))
	}

	selected := path.Select(document.ToValue(root))
	if len(selected) == 0 {
		return finish(exit.NoMatches(stdout))
	}

	var report strings.Builder
	for i, value := range selected {
		if i > 0 && format == document.FormatYAML {
			report.WriteString("---\n")
		}
		payload, err := codec.Serialize(document.FromValue(value), format)
		if err != nil {
			return finish(exit.Errorf(stderr, "Error: %v\n", err))
		}
		report.Write(payload)
	}
	return finish(exit.Success(stdout, report.String()))
}

func finish(result *exit.Result) int {
	result.Print()
	return result.ExitCode
}
