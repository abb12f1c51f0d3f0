package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"avl"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestBuild(t *testing.T) {
	out, _, err := run(t, "build", "--delete", "3", "--less", "2", "--less", "1", "3", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "preorder: [2 1]\n"+
		"inorder: [1 2]\n"+
		"tree:\n"+
		"2 (2)\n"+
		"└─L─1 (1)\n"+
		"height: 2 size: 2\n"+
		"less than 2: 1\n"+
		"less than 1: none\n", out)
}

func TestBuild_MissingDelete(t *testing.T) {
	out, errOut, err := run(t, "build", "--delete", "9", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "inorder: [1]")
	assert.Contains(t, errOut, "delete skipped")
}

func TestBuild_BadValue(t *testing.T) {
	_, _, err := run(t, "build", "1", "x")
	assert.ErrorContains(t, err, `bad value "x"`)

	_, _, err = run(t, "build", "--delete", "y", "1")
	assert.ErrorContains(t, err, `bad value "y"`)
}

func TestPop(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "max",
			args: []string{"pop", "--max", "1", "5", "3"},
			want: "order: [5 3 1]\n",
		},
		{
			name: "min with duplicates",
			args: []string{"pop", "--min", "4", "2", "4", "9"},
			want: "order: [2 4 9]\n",
		},
		{
			name: "nothing",
			args: []string{"pop", "--min"},
			want: "order: []\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPop_OneEnd(t *testing.T) {
	_, _, err := run(t, "pop", "--min", "--max", "1")
	assert.ErrorContains(t, err, "exactly one of --min or --max")

	_, _, err = run(t, "pop", "1")
	assert.ErrorContains(t, err, "exactly one of --min or --max")
}

func TestPop_Verbose(t *testing.T) {
	_, errOut, err := run(t, "--verbose", "pop", "--min", "2", "1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "popped")
}

func TestRandom(t *testing.T) {
	out, _, err := run(t, "random", "--num", "50", "--seed", "7", "--trees", "3", "--parallel", "2")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "avl heights: ["), out)

	// same seeds, same trees
	again, _, err := run(t, "random", "--num", "50", "--seed", "7", "--trees", "3", "--parallel", "1")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestRandom_BadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"random", "--trees", "0"},
		{"random", "--num=-1"},
		{"random", "--parallel", "0"},
	} {
		_, _, err := run(t, args...)
		assert.Error(t, err, "%v", args)
	}
}
