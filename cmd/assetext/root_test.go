package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/assetext/internal/report"
	"github.com/nao1215/assetext/internal/table"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has table and config flags", func(t *testing.T) {
		t.Parallel()
		for name, shorthand := range map[string]string{"table": "t", "config": "c", "no-config": ""} {
			flag := cmd.Flags().Lookup(name)
			if flag == nil {
				t.Errorf("expected %s flag", name)
				continue
			}
			if flag.Shorthand != shorthand {
				t.Errorf("expected shorthand %q for %s, got %q", shorthand, name, flag.Shorthand)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		want := map[string]bool{"init": false, "schema": false, "version": false}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Name()]; ok {
				want[sub.Name()] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("expected %s subcommand", name)
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: 0},
		{name: "lookup miss", err: report.ErrLookupMiss, want: 1},
		{name: "wrapped unknown mode", err: fmt.Errorf("%w: %q", report.ErrUnknownMode, "foo"), want: 1},
		{name: "load error", err: table.ErrTableNotFound, want: 2},
		{name: "missing extension", err: report.ErrMissingExtension, want: 2},
		{name: "other error", err: errors.New("boom"), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// TestRun exercises the full command line against the documented example table.
func TestRun(t *testing.T) {
	t.Parallel()

	imageTable := filepath.Join("testdata", "image.json")
	markdownTable := "File type | Format | Threshold\n--- | --- | ---\nImage | `png`, `jpg` | 500KB\n\n"

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "extension_list",
			args:       []string{imageTable, "extension_list"},
			wantStdout: "png,jpg,bmp\n",
		},
		{
			name:       "size_limit hit",
			args:       []string{imageTable, "size_limit", "png"},
			wantStdout: "500\n",
		},
		{
			name:     "size_limit of unsupported extension",
			args:     []string{imageTable, "size_limit", "bmp"},
			wantCode: 1,
		},
		{
			name:     "size_limit of unknown extension",
			args:     []string{imageTable, "size_limit", "gif"},
			wantCode: 1,
		},
		{
			name:       "supported_extensions",
			args:       []string{imageTable, "supported_extensions"},
			wantStdout: "png,jpg\n",
		},
		{
			name:       "supported_extension_table",
			args:       []string{imageTable, "supported_extension_table"},
			wantStdout: markdownTable,
		},
		{
			name:       "unknown mode",
			args:       []string{imageTable, "foo"},
			wantCode:   1,
			wantStdout: report.UnknownModeWarning + "\n",
		},
		{
			name:       "size_limit without extension",
			args:       []string{imageTable, "size_limit"},
			wantCode:   2,
			wantStderr: "size_limit requires an extension argument",
		},
		{
			name:       "missing table",
			args:       []string{filepath.Join("testdata", "missing.json"), "extension_list"},
			wantCode:   2,
			wantStderr: "file not found",
		},
		{
			name:       "malformed table wins over unknown mode",
			args:       []string{filepath.Join("testdata", "malformed.json"), "foo"},
			wantCode:   2,
			wantStderr: "malformed document",
		},
		{
			name:       "table without mode",
			args:       []string{imageTable},
			wantCode:   2,
			wantStderr: "no report mode",
		},
		{
			name:       "table flag",
			args:       []string{"--table", imageTable, "size_limit", "jpg"},
			wantStdout: "500\n",
		},
		{
			name:       "YAML table",
			args:       []string{filepath.Join("testdata", "image.yaml"), "supported_extension_table"},
			wantStdout: markdownTable,
		},
		{
			name:       "TOML table",
			args:       []string{filepath.Join("testdata", "image.toml"), "extension_list"},
			wantStdout: "png,jpg,bmp\n",
		},
		{
			name:       "invalid log format",
			args:       []string{"--log-format", "xml", imageTable, "extension_list"},
			wantCode:   2,
			wantStderr: "invalid log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			code := run(append([]string{"--no-config"}, tt.args...), &stdout, &stderr)

			if code != tt.wantCode {
				t.Errorf("expected exit code %d, got %d (stderr: %q)", tt.wantCode, code, stderr.String())
			}
			if got := stdout.String(); got != tt.wantStdout {
				t.Errorf("expected stdout %q, got %q", tt.wantStdout, got)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("expected stderr to contain %q, got %q", tt.wantStderr, stderr.String())
			}
			if tt.wantStderr == "" && tt.wantCode != 2 && stderr.Len() != 0 {
				t.Errorf("expected no stderr output, got %q", stderr.String())
			}
		})
	}
}

// TestRunWithConfigFile verifies that the table named in the config file is
// used when the first argument is a report mode.
func TestRunWithConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data, err := os.ReadFile(filepath.Join("testdata", "image.json"))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "assets.json"), data, 0600); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(dir, ".assetext")
	if err := os.WriteFile(configPath, []byte("table: assets.json\n"), 0600); err != nil {
		t.Fatal(err)
	}

	t.Run("mode only", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		code := run([]string{"--config", configPath, "size_limit", "jpg"}, &stdout, &stderr)
		if code != 0 {
			t.Fatalf("expected exit code 0, got %d (stderr: %q)", code, stderr.String())
		}
		if stdout.String() != "500\n" {
			t.Errorf("expected %q, got %q", "500\n", stdout.String())
		}
	})

	t.Run("explicit path still wins", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		code := run([]string{"--config", configPath, filepath.Join("testdata", "image.yaml"), "supported_extensions"}, &stdout, &stderr)
		if code != 0 {
			t.Fatalf("expected exit code 0, got %d (stderr: %q)", code, stderr.String())
		}
		if stdout.String() != "png,jpg\n" {
			t.Errorf("expected %q, got %q", "png,jpg\n", stdout.String())
		}
	})

	t.Run("config and no-config conflict", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		code := run([]string{"--config", configPath, "--no-config", "extension_list"}, &stdout, &stderr)
		if code != 2 {
			t.Errorf("expected exit code 2, got %d", code)
		}
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		code := run([]string{"--config", filepath.Join(dir, "nope.yaml"), "extension_list"}, &stdout, &stderr)
		if code != 2 {
			t.Errorf("expected exit code 2, got %d", code)
		}
		if !strings.Contains(stderr.String(), "configuration file not found") {
			t.Errorf("expected config not found error, got %q", stderr.String())
		}
	})
}

func TestRunVerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"--no-config", "-v", "--log-format", "json", filepath.Join("testdata", "image.json"), "supported_extensions"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %q)", code, stderr.String())
	}
	if stdout.String() != "png,jpg\n" {
		t.Errorf("expected report on stdout only, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), `"msg":"extension table loaded"`) {
		t.Errorf("expected debug log on stderr, got %q", stderr.String())
	}
}

// TestRunWithBrokenDiscoveredConfig covers a .assetext found in the home
// directory that cannot be used. It is only fatal when the table has to come
// from it. The test changes HOME, so it does not run in parallel.
func TestRunWithBrokenDiscoveredConfig(t *testing.T) {
	imageTable, err := filepath.Abs(filepath.Join("testdata", "image.json"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		config     string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "unparsable file with positional table",
			config:     "log_format: [broken",
			args:       []string{imageTable, "extension_list"},
			wantStdout: "png,jpg,bmp\n",
			wantStderr: "ignoring config file",
		},
		{
			name:       "unparsable file with table flag",
			config:     "log_format: [broken",
			args:       []string{"--table", imageTable, "size_limit", "png"},
			wantStdout: "500\n",
			wantStderr: "ignoring config file",
		},
		{
			name:       "unparsable file with mode first",
			config:     "log_format: [broken",
			args:       []string{"extension_list"},
			wantCode:   2,
			wantStderr: "failed to load config file",
		},
		{
			name:       "invalid log format with positional table",
			config:     "table: assets.json\nlog_format: xml\n",
			args:       []string{imageTable, "supported_extensions"},
			wantStdout: "png,jpg\n",
			wantStderr: "ignoring config file",
		},
		{
			name:       "invalid log format with mode first",
			config:     "table: assets.json\nlog_format: xml\n",
			args:       []string{"supported_extensions"},
			wantCode:   2,
			wantStderr: "invalid log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			t.Setenv("USERPROFILE", home)
			if err := os.WriteFile(filepath.Join(home, ".assetext"), []byte(tt.config), 0600); err != nil {
				t.Fatal(err)
			}

			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			if code != tt.wantCode {
				t.Errorf("expected exit code %d, got %d (stderr: %q)", tt.wantCode, code, stderr.String())
			}
			if got := stdout.String(); got != tt.wantStdout {
				t.Errorf("expected stdout %q, got %q", tt.wantStdout, got)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("expected stderr to contain %q, got %q", tt.wantStderr, stderr.String())
			}
		})
	}
}
