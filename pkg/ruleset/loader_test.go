package ruleset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/getmockd/reqexpect/pkg/expect"
	"github.com/getmockd/reqexpect/pkg/request"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFileYAML(t *testing.T) {
	path := writeFile(t, "rules.yaml", `
name: checkout-contract
rules:
  - kind: method
    value: POST
  - kind: path
    value: /checkout
  - kind: queryEq
    key: step
    value: "2"
  - kind: headerExists
    key: X-Session
  - kind: fragmentMiss
`)

	rs, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "checkout-contract", rs.Name)
	assert.Equal(t, []expect.Matcher{
		expect.Method("POST"),
		expect.Path("/checkout"),
		expect.QueryEq("step", "2"),
		expect.HeaderExists("X-Session"),
		expect.FragmentMiss(),
	}, rs.Rules)

	req := request.Parse("/checkout?step=2").WithMethod("POST").WithHeader("X-Session", "s1")
	assert.True(t, rs.Matchers().IsMatched(req))
}

func TestLoadFromFileJSON(t *testing.T) {
	path := writeFile(t, "rules.json", `{
		"rules": [
			{"kind": "method", "value": "GET"},
			{"kind": "queryMiss", "key": "debug"}
		]
	}`)

	rs, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, rs.Rules, 2)
	assert.Equal(t, expect.QueryMiss("debug"), rs.Rules[1])
}

func TestLoadFromFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
		errText string
	}{
		{
			name:    "empty file",
			file:    "empty.yaml",
			content: "",
			wantErr: ErrEmptyFile,
		},
		{
			name:    "broken yaml",
			file:    "broken.yaml",
			content: "rules: [",
			wantErr: ErrInvalidYAML,
		},
		{
			name:    "broken json",
			file:    "broken.json",
			content: "{",
			wantErr: ErrInvalidJSON,
		},
		{
			name:    "unknown kind",
			file:    "unknown.yaml",
			content: "rules:\n  - kind: regex\n    value: .*",
			errText: `rule 0: unknown kind "regex"`,
		},
		{
			name:    "missing kind",
			file:    "nokind.yaml",
			content: "rules:\n  - key: k",
			errText: "rule 0: missing kind",
		},
		{
			name:    "keyed kind without key",
			file:    "nokey.yaml",
			content: "rules:\n  - kind: method\n    value: GET\n  - kind: headerEq\n    value: v",
			errText: `rule 1: kind "headerEq" requires a key`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := LoadFromFile(path)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errText != "" {
				assert.EqualError(t, err, tt.errText)
			}
		})
	}
}

func TestLoadFromFileNotFound(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestRuleSetRoundTripYAML(t *testing.T) {
	rs := &RuleSet{
		Name: "rt",
		Rules: []expect.Matcher{
			expect.Method("PUT"),
			expect.BodyMiss(),
			expect.HeaderEq("K", "v"),
		},
	}

	data, err := yaml.Marshal(rs)
	require.NoError(t, err)

	got, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, rs, got)
}
