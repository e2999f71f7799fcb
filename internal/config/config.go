package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
)

var (
	ErrNoArguments       = errors.New("no arguments provided")
	ErrHelp              = errors.New("help requested")
	ErrMissingFile       = errors.New("a FILE (or '-') and at least one PATTERN or -e are required")
	ErrNoPatterns        = errors.New("no patterns provided")
	ErrTrailingSeparator = errors.New("trailing '--' without FILE")
	ErrTrailingArguments = errors.New("unexpected arguments after FILE")
	ErrExclusiveFilters  = errors.New("--keys-only and --values-only are mutually exclusive")
	ErrInvalidPathFormat = errors.New("--path-format must be one of: pointer, dot")
	ErrInvalidColorMode  = errors.New("--color must be one of: auto, always, never")
	ErrInvalidMaxMatches = errors.New("--max-matches must be zero or positive")
)

// PathFormat selects the notation used to render match paths.
type PathFormat string

const (
	PathFormatPointer PathFormat = "pointer"
	PathFormatDot     PathFormat = "dot"
)

// ColorMode controls when match emphasis is applied.
type ColorMode string

const (
	ColorModeAuto   ColorMode = "auto"
	ColorModeAlways ColorMode = "always"
	ColorModeNever  ColorMode = "never"
)

// Config defines CLI options for the search command.
type Config struct {
	Patterns   []string
	File       string
	IgnoreCase bool
	KeysOnly   bool
	ValuesOnly bool
	PathFormat PathFormat
	Color      ColorMode
	MaxMatches int
}

// patternsFlag implements flag.Value for collecting repeated -e flags.
type patternsFlag []string

// String returns a string representation of the patterns flag for flag.Value interface.
func (p *patternsFlag) String() string {
	return strings.Join(*p, ", ")
}

// Set appends a pattern for flag.Value interface.
func (p *patternsFlag) Set(value string) error {
	*p = append(*p, value)
	return nil
}

// Parse parses and validates CLI arguments.
func Parse(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, ErrNoArguments
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	var patterns patternsFlag
	fs.Var(&patterns, "e", "Pattern to search for (can be used multiple times)")
	fs.Var(&patterns, "regexp", "Pattern to search for (can be used multiple times)")

	var ignoreCase, keysOnly, valuesOnly bool
	fs.BoolVar(&ignoreCase, "i", false, "Case-insensitive search")
	fs.BoolVar(&ignoreCase, "ignore-case", false, "Case-insensitive search")
	fs.BoolVar(&keysOnly, "k", false, "Search keys only")
	fs.BoolVar(&keysOnly, "keys-only", false, "Search keys only")
	fs.BoolVar(&valuesOnly, "v", false, "Search values only")
	fs.BoolVar(&valuesOnly, "values-only", false, "Search values only")

	pathFormat := fs.String("path-format", "pointer", "Path notation: pointer or dot")
	colorMode := fs.String("color", "auto", "Highlight matches: auto, always or never")
	maxMatches := fs.Int("max-matches", 0, "Stop after N total matches (0 = unlimited)")

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, ErrHelp
		}
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	if keysOnly && valuesOnly {
		return nil, ErrExclusiveFilters
	}
	if *maxMatches < 0 {
		return nil, fmt.Errorf("%w, got: %d", ErrInvalidMaxMatches, *maxMatches)
	}

	parsedPathFormat, err := parsePathFormat(*pathFormat)
	if err != nil {
		return nil, err
	}

	parsedColorMode, err := parseColorMode(*colorMode)
	if err != nil {
		return nil, err
	}

	finalPatterns, file, err := splitPatternsAndFile(fs.Args(), patterns)
	if err != nil {
		return nil, err
	}
	if len(finalPatterns) == 0 {
		return nil, ErrNoPatterns
	}

	return &Config{
		Patterns:   finalPatterns,
		File:       file,
		IgnoreCase: ignoreCase,
		KeysOnly:   keysOnly,
		ValuesOnly: valuesOnly,
		PathFormat: parsedPathFormat,
		Color:      parsedColorMode,
		MaxMatches: *maxMatches,
	}, nil
}

// splitPatternsAndFile separates the positional arguments into search
// patterns and the input file. An explicit "--" separator always wins.
// Otherwise the last positional is the file when at least one other
// positional or -e pattern supplies the patterns.
func splitPatternsAndFile(rest []string, flagPatterns []string) ([]string, string, error) {
	patterns := slices.Clone(flagPatterns)

	if len(rest) == 0 {
		return nil, "", ErrMissingFile
	}
	if rest[len(rest)-1] == "--" {
		return nil, "", ErrTrailingSeparator
	}

	if idx := slices.Index(rest, "--"); idx >= 0 {
		if extra := rest[idx+2:]; len(extra) > 0 {
			return nil, "", fmt.Errorf("%w: %s", ErrTrailingArguments, strings.Join(extra, " "))
		}
		patterns = append(patterns, rest[:idx]...)
		return patterns, rest[idx+1], nil
	}

	if len(rest) == 1 {
		if len(patterns) == 0 {
			return nil, "", ErrMissingFile
		}
		return patterns, rest[0], nil
	}

	patterns = append(patterns, rest[:len(rest)-1]...)
	return patterns, rest[len(rest)-1], nil
}

func parsePathFormat(input string) (PathFormat, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", string(PathFormatPointer):
		return PathFormatPointer, nil
	case string(PathFormatDot):
		return PathFormatDot, nil
	default:
		return "", fmt.Errorf("%w, got: %s", ErrInvalidPathFormat, input)
	}
}

func parseColorMode(input string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", string(ColorModeAuto):
		return ColorModeAuto, nil
	case string(ColorModeAlways):
		return ColorModeAlways, nil
	case string(ColorModeNever):
		return ColorModeNever, nil
	default:
		return "", fmt.Errorf("%w, got: %s", ErrInvalidColorMode, input)
	}
}

// Usage returns command usage text.
func Usage() string {
	return `yamlgrep - recursively search YAML or JSON keys and values

Usage:
  yamlgrep [options] [-e PATTERN ...] FILE
  yamlgrep [options] PATTERN [PATTERN ...] -- FILE
  yamlgrep [options] PATTERN FILE

FILE is a path or '-' for stdin.

Options:
  -e, --regexp PATTERN   Pattern to search for (can be used multiple times)
  -i, --ignore-case      Case-insensitive search
  -k, --keys-only        Search keys only
  -v, --values-only      Search values only
  --path-format FORMAT   Path notation: pointer or dot (default: pointer)
  --color WHEN           Highlight matches: auto, always or never (default: auto)
  --max-matches N        Stop after N total matches (0 = unlimited)
  -h, --help             Show this help message

Each match prints one line: PATH<TAB>(KEY|VAL)<TAB>TEXT.
Exit status is 0 when matches were found, 1 when none and 2 on error.

Examples:
  yamlgrep -e password config.yaml         # Keys or values matching "password"
  yamlgrep -k -e '^db_' settings.yml       # Keys starting with db_
  yamlgrep -i token secret -- deploy.json  # Two case-insensitive patterns
  cat config.yaml | yamlgrep -e host -     # Search stdin`
}
