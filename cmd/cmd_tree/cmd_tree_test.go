package cmd_tree

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rskv-p/bintree/constant"
	"github.com/rskv-p/bintree/pkg/x_tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetErr(&out)
	Cmd.SetIn(strings.NewReader(stdin))
	err := Execute(context.Background(), args)
	return out.String(), err
}

func TestShow(t *testing.T) {
	out, err := run(t, "",
		"show", "--level", "2", "--nodes", "5", "--traversal", "inorder",
		"--seed", "5", "--no-color", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "preorder:")
	assert.Contains(t, out, "inorder:")
	assert.Contains(t, out, "postorder:")
}

func TestPlay(t *testing.T) {
	out, err := run(t, "",
		"play", "--level", "1", "--nodes", "3", "--traversal", "preorder",
		"--seed", "3", "--delay", "0s", "--no-wait", "--no-color", "--log-level", "error")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "Output using preorder traversal:"))
	assert.NotContains(t, out, constant.StartPrompt)
}

func TestPlay_InvalidTraversal(t *testing.T) {
	_, err := run(t, "",
		"play", "--level", "1", "--nodes", "3", "--traversal", "levelorder",
		"--seed", "3", "--delay", "0s", "--no-wait", "--no-color", "--log-level", "error")
	assert.ErrorIs(t, err, x_tree.ErrInvalidTraversalKind)
	assert.ErrorIs(t, err, constant.ErrInvalidConfig)
}

func TestPlay_InterruptEndsCleanly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetIn(strings.NewReader(""))
	Cmd.SetArgs([]string{
		"play", "--level", "2", "--nodes", "4", "--traversal", "inorder",
		"--seed", "8", "--delay", "0s", "--no-wait", "--no-color", "--log-level", "error"})

	require.NoError(t, Cmd.ExecuteContext(ctx))
	assert.NotContains(t, out.String(), "Output using")
}

func TestShow_WideValueRange(t *testing.T) {
	_, err := run(t, "",
		"show", "--level", "4", "--nodes", "31", "--traversal", "inorder",
		"--value-min", "10000", "--value-max", "10100", "--no-color", "--log-level", "error")
	assert.ErrorIs(t, err, constant.ErrInvalidConfig)
}

func TestShow_Dump(t *testing.T) {
	out, err := run(t, "",
		"show", "--level", "1", "--nodes", "2", "--traversal", "preorder",
		"--value-min", "0", "--value-max", "100",
		"--seed", "11", "--no-color", "--log-level", "error", "--dump")
	require.NoError(t, err)

	assert.Contains(t, out, `"traversal": "preorder"`)
	assert.Contains(t, out, "-- ROOT: ")
	assert.Equal(t, 1, strings.Count(out, "|__ "))
}

func TestChangedFlags(t *testing.T) {
	require.NoError(t, showCmd.Flags().Set("theme", "light"))
	raw := changedFlags(showCmd)
	assert.Equal(t, "light", raw[constant.ConfigTheme])
	_, ok := raw[constant.ConfigDelay]
	assert.False(t, ok, "show has no delay flag")
}
