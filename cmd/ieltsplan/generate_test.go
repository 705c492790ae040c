package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

var baseArgs = []string{"generate", "--current", "5.5", "--target", "7", "--hours", "4", "--weeks", "2"}

func TestGenerate_Text(t *testing.T) {
	out, _, err := run(t, baseArgs...)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "IELTS STUDY PLAN\n"))
	assert.Contains(t, out, "Test Type: Academic\n")
	assert.Contains(t, out, "    • Writing: 72 minutes\n")
	assert.Contains(t, out, "WEEK 2\n")
}

func TestGenerate_JSON(t *testing.T) {
	out, _, err := run(t, append(baseArgs, "--format", "json", "--type", "general")...)
	require.NoError(t, err)

	var plan map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, "general", plan["test_type"])
	assert.Equal(t, "Medium", plan["intensity"])
	assert.Len(t, plan["weekly_plan"], 2)
}

func TestGenerate_YAML(t *testing.T) {
	out, _, err := run(t, append(baseArgs, "-f", "yaml")...)
	require.NoError(t, err)

	var plan struct {
		Duration string `yaml:"duration"`
		Weeks    []struct {
			Name  string `yaml:"name"`
			Focus string `yaml:"focus"`
		} `yaml:"weekly_plan"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &plan))
	assert.Equal(t, "2 weeks", plan.Duration)
	require.Len(t, plan.Weeks, 2)
	assert.Equal(t, "Week 1", plan.Weeks[0].Name)
	assert.Equal(t, "Skill Development", plan.Weeks[0].Focus)
}

func TestGenerate_PDFToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")
	_, stderr, err := run(t, append(baseArgs, "--format", "pdf", "--out", path)...)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Contains(t, stderr, "Wrote pdf plan to "+path)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad weeks", []string{"generate", "--current", "5", "--target", "7", "--hours", "2", "--weeks", "abc"}, "num_weeks"},
		{"missing current", []string{"generate", "--target", "7", "--hours", "2", "--weeks", "4"}, "current_score"},
		{"bad type", append(append([]string{}, baseArgs...), "--type", "business"), "test_type"},
		{"bad format", append(append([]string{}, baseArgs...), "--format", "docx"), "unknown format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, out)
		})
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ieltsplan (devel)\n", out)
}
