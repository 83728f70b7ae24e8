package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/warp"
)

func TestScriptPath(t *testing.T) {
	cases := []struct {
		name string
		args []string
		path string
		ok   bool
	}{
		{"script", []string{"script.wl"}, "script.wl", true},
		{"script-args", []string{"script.wl", "--", "a", "b"}, "script.wl", true},
		{"script-no-args", []string{"script.wl", "--"}, "script.wl", true},
		{"two-scripts", []string{"a.wl", "b.wl"}, "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path, ok := scriptPath(c.args)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.path, path)
		})
	}
}

func TestScriptCommandLineFromArgs(t *testing.T) {
	defs, err := warp.NewBuiltinDefinitions(warp.WithCommandLine([]string{"warp", "-watch", "script.wl", "--", "a", "b"}))
	require.NoError(t, err)

	result, err := warp.NewSession(defs).EvaluateString("$ScriptCommandLine")
	require.NoError(t, err)
	assert.Equal(t, `List["script.wl", "a", "b"]`, warp.EncodeToString(result.Expr))
}
