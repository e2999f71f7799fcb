package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jacoelho/yamlgrep/internal/document"
	"github.com/jacoelho/yamlgrep/internal/pointer"
)

var (
	ErrNoArguments       = errors.New("no arguments provided")
	ErrHelp              = errors.New("help requested")
	ErrMissingArguments  = errors.New("a POINTER and a FILE (or '-') are required")
	ErrMissingFile       = errors.New("a FILE (or '-') is required")
	ErrSelectWithPointer = errors.New("--select replaces the POINTER argument")
	ErrTrailingArguments = errors.New("unexpected arguments after FILE")
)

// Config defines CLI options for the show command.
type Config struct {
	// Tokens is the decoded pointer path. Empty addresses the whole document.
	Tokens []string
	File   string
	Select string
	Format document.Format
}

// Parse parses and validates CLI arguments.
func Parse(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, ErrNoArguments
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	format := fs.String("format", "auto", "Output format: auto, yaml or json")
	selectExpr := fs.String("select", "", "JSONPath expression selecting the nodes to print")

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, ErrHelp
		}
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	parsedFormat, err := document.ParseFormat(*format)
	if err != nil {
		return nil, err
	}

	rest := fs.Args()

	if *selectExpr != "" {
		if len(rest) > 1 {
			return nil, ErrSelectWithPointer
		}
		if len(rest) == 0 {
			return nil, ErrMissingFile
		}
		return &Config{
			File:   rest[0],
			Select: *selectExpr,
			Format: parsedFormat,
		}, nil
	}

	if len(rest) < 2 {
		return nil, ErrMissingArguments
	}
	if len(rest) > 2 {
		return nil, fmt.Errorf("%w: %s", ErrTrailingArguments, strings.Join(rest[2:], " "))
	}

	tokens, err := pointer.Decode(rest[0])
	if err != nil {
		return nil, err
	}

	return &Config{
		Tokens: tokens,
		File:   rest[1],
		Format: parsedFormat,
	}, nil
}

// Usage returns command usage text.
func Usage() string {
	return `yamlshow - print a subtree of a YAML or JSON document

Usage:
  yamlshow [options] POINTER FILE
  yamlshow --select JSONPATH [options] FILE

POINTER is an RFC 6901 JSON Pointer: segments separated by '/', with "~0"
for "~" and "~1" for "/" inside a key. A trailing slash is ignored, and ""
or "/" addresses the whole document. FILE is a path or '-' for stdin.

Options:
  --format FORMAT   Output format: auto, yaml or json (default: auto,
                    YAML when available and JSON otherwise)
  --select EXPR     Print every node selected by a JSONPath expression
                    instead of a single pointer target
  -h, --help        Show this help message

Exit status is 0 on success, 1 when --select matches nothing and 2 on error.

Examples:
  yamlshow /services/api config.yaml       # Subtree under services -> api
  yamlshow /users/0/name users.json        # First element of the users list
  yamlshow /a~1b file.yaml                 # Key literally named "a/b"
  cat config.yaml | yamlshow /spec -       # Read the document from stdin
  yamlshow --select '$.users[*].name' users.json`
}
