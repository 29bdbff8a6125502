package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-constrain"
	"github.com/grindlemire/go-constrain/internal/report"
)

// execute runs the CLI with args and returns what it wrote.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "constrain "+version+"\n"), out)
	assert.Contains(t, out, "commit:")
}

func TestApply(t *testing.T) {
	type tc struct {
		args    []string
		wantOut []string
		wantErr string
	}

	tests := map[string]tc{
		"text": {
			args: []string{"apply", "testdata/card.toml"},
			wantOut: []string{
				"window",
				"card.leading == window.leading * 1 + 8",
				"title.height == 1",
				"divider.top == title.bottom * 1 + 0",
			},
		},
		"dot": {
			args:    []string{"apply", "-f", "dot", "testdata/card.toml"},
			wantOut: []string{"digraph constraints {", `"card" -> "window"`},
		},
		"unknown format": {
			args:    []string{"apply", "--format", "png", "testdata/card.toml"},
			wantErr: `unknown format "png"`,
		},
		"missing file": {
			args:    []string{"apply", "testdata/nope.toml"},
			wantErr: "nope.toml",
		},
		"invalid document": {
			args:    []string{"apply", "testdata/broken.yaml"},
			wantErr: `unknown op "insets"`,
		},
		"engine rejection": {
			args:    []string{"apply", "testdata/rejected.toml"},
			wantErr: `subject "left" is not inside container "right"`,
		},
		"no file": {
			args:    []string{"apply"},
			wantErr: "accepts 1 arg(s)",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantOut {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestApply_JSON(t *testing.T) {
	out, stderr, err := execute(t, "apply", "--format", "json", "testdata/card.toml")
	require.NoError(t, err)

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "testdata/card.toml", doc.Source)
	assert.Equal(t, 4, doc.Elements)
	assert.Len(t, doc.Constraints, 10)

	assert.Contains(t, stderr, "Applied document")
	assert.NotContains(t, stderr, "constraint installed", "debug logs need -v")
}

func TestApply_Verbose(t *testing.T) {
	_, stderr, err := execute(t, "-v", "apply", "testdata/card.toml")
	require.NoError(t, err)
	assert.Contains(t, stderr, "constraint installed")
	assert.Contains(t, stderr, "document applied")
}

func TestApply_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.svg")

	out, _, err := execute(t, "apply", "-f", "svg", "-o", path, "testdata/card.toml")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestCheck(t *testing.T) {
	out, _, err := execute(t, "check", "testdata/card.toml", "testdata/broken.yaml", "testdata/rejected.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 document(s) failed")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, iconSuccess+" testdata/card.toml (4 elements, 10 constraints)", lines[0])
	assert.Equal(t, iconError+" testdata/broken.yaml", lines[1])
	assert.Contains(t, lines[2], `unknown op "insets"`)
	assert.Equal(t, iconError+" testdata/rejected.toml", lines[3])
	assert.Contains(t, lines[4], "not inside container")
}

func TestCheck_AllPass(t *testing.T) {
	out, _, err := execute(t, "check", "testdata/card.toml", "testdata/card.toml")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, iconSuccess))
}

func TestAttrs(t *testing.T) {
	out, _, err := execute(t, "attrs")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(constrain.Attributes()))
	assert.Regexp(t, `^top\s+position$`, lines[0])
	assert.Contains(t, out, "centerYWithinMargins")
	assert.Regexp(t, `width\s+dimension`, out)
}

func TestAttrs_Ops(t *testing.T) {
	out, _, err := execute(t, "attrs", "--ops")
	require.NoError(t, err)
	assert.Regexp(t, `insetEdges\s+composition`, out)
	assert.Regexp(t, `overrideSubject\s+modifier`, out)
	assert.Regexp(t, `done\s+terminal`, out)
	assert.Regexp(t, `alignAll\s+composition`, out)
	assert.Regexp(t, `alignBelow\s+arming`, out)
	assert.Regexp(t, `(?m)^top\s+attribute$`, out)
}
