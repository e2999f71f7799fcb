package config

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jacoelho/yamlgrep/internal/document"
	"github.com/jacoelho/yamlgrep/internal/pointer"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want *Config
	}{
		{
			name: "pointer_and_file",
			args: []string{"yamlshow", "/a/b", "config.yaml"},
			want: &Config{
				Tokens: []string{"a", "b"},
				File:   "config.yaml",
				Format: document.FormatAuto,
			},
		},
		{
			name: "empty_pointer_addresses_root",
			args: []string{"yamlshow", "", "config.yaml"},
			want: &Config{
				File:   "config.yaml",
				Format: document.FormatAuto,
			},
		},
		{
			name: "slash_pointer_addresses_root",
			args: []string{"yamlshow", "/", "config.yaml"},
			want: &Config{
				File:   "config.yaml",
				Format: document.FormatAuto,
			},
		},
		{
			name: "escaped_pointer_segments",
			args: []string{"yamlshow", "/a~1b/c~0d", "config.yaml"},
			want: &Config{
				Tokens: []string{"a/b", "c~d"},
				File:   "config.yaml",
				Format: document.FormatAuto,
			},
		},
		{
			name: "trailing_slash_ignored",
			args: []string{"yamlshow", "/a/", "config.yaml"},
			want: &Config{
				Tokens: []string{"a"},
				File:   "config.yaml",
				Format: document.FormatAuto,
			},
		},
		{
			name: "sequence_index_pointer",
			args: []string{"yamlshow", "/users/0/name", "users.json"},
			want: &Config{
				Tokens: []string{"users", "0", "name"},
				File:   "users.json",
				Format: document.FormatAuto,
			},
		},
		{
			name: "stdin_sentinel_file",
			args: []string{"yamlshow", "/a", "-"},
			want: &Config{
				Tokens: []string{"a"},
				File:   "-",
				Format: document.FormatAuto,
			},
		},
		{
			name: "json_format",
			args: []string{"yamlshow", "--format", "json", "/a", "config.yaml"},
			want: &Config{
				Tokens: []string{"a"},
				File:   "config.yaml",
				Format: document.FormatJSON,
			},
		},
		{
			name: "yaml_format_case_insensitive",
			args: []string{"yamlshow", "--format", "YAML", "/a", "config.yaml"},
			want: &Config{
				Tokens: []string{"a"},
				File:   "config.yaml",
				Format: document.FormatYAML,
			},
		},
		{
			name: "select_mode",
			args: []string{"yamlshow", "--select", "$.users[*].name", "users.json"},
			want: &Config{
				File:   "users.json",
				Select: "$.users[*].name",
				Format: document.FormatAuto,
			},
		},
		{
			name: "select_mode_with_format",
			args: []string{"yamlshow", "--select", "$.a", "--format", "json", "config.yaml"},
			want: &Config{
				File:   "config.yaml",
				Select: "$.a",
				Format: document.FormatJSON,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(cfg, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "no_arguments",
			args:    nil,
			wantErr: ErrNoArguments,
		},
		{
			name:    "no_positionals",
			args:    []string{"yamlshow"},
			wantErr: ErrMissingArguments,
		},
		{
			name:    "pointer_without_file",
			args:    []string{"yamlshow", "/a"},
			wantErr: ErrMissingArguments,
		},
		{
			name:    "arguments_after_file",
			args:    []string{"yamlshow", "/a", "config.yaml", "extra"},
			wantErr: ErrTrailingArguments,
		},
		{
			name:    "pointer_missing_leading_slash",
			args:    []string{"yamlshow", "a/b", "config.yaml"},
			wantErr: pointer.ErrSyntax,
		},
		{
			name:    "invalid_format",
			args:    []string{"yamlshow", "--format", "xml", "/a", "config.yaml"},
			wantErr: document.ErrFormat,
		},
		{
			name:    "select_combined_with_pointer",
			args:    []string{"yamlshow", "--select", "$.a", "/a", "config.yaml"},
			wantErr: ErrSelectWithPointer,
		},
		{
			name:    "select_without_file",
			args:    []string{"yamlshow", "--select", "$.a"},
			wantErr: ErrMissingFile,
		},
		{
			name:    "help_short",
			args:    []string{"yamlshow", "-h"},
			wantErr: ErrHelp,
		},
		{
			name:    "help_long",
			args:    []string{"yamlshow", "--help"},
			wantErr: ErrHelp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	usage := Usage()
	if usage == "" {
		t.Error("Usage() returned empty string")
	}

	expectedSections := []string{
		"yamlshow - print a subtree of a YAML or JSON document",
		"Usage:",
		"Options:",
		"--format",
		"--select",
		"--help",
		"Examples:",
	}

	for _, section := range expectedSections {
		if !strings.Contains(usage, section) {
			t.Errorf("Usage() missing expected section: %s", section)
		}
	}
}
