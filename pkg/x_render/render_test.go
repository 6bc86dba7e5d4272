package x_render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rskv-p/bintree/pkg/x_tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleLayout is 5 with children 3 and 8.
func sampleLayout() x_tree.Layout {
	root := &x_tree.Node{Value: 5, Left: &x_tree.Node{Value: 3}, Right: &x_tree.Node{Value: 8}}
	levels := x_tree.ComputeLayout(root)
	return x_tree.RenderPositions(levels, levels.MaxDepth())
}

func TestLines_Plain(t *testing.T) {
	r := New(&bytes.Buffer{}, WithColor(false))
	lines := r.Lines(sampleLayout(), None)

	assert.Equal(t, []string{
		"     5 ",
		"    / \\",
		"   3   8 ",
	}, lines)
}

func TestLines_SparseConnectors(t *testing.T) {
	root := &x_tree.Node{Value: 1, Right: &x_tree.Node{Value: 42, Left: &x_tree.Node{Value: 100}}}
	levels := x_tree.ComputeLayout(root)
	l := x_tree.RenderPositions(levels, levels.MaxDepth())

	r := New(&bytes.Buffer{}, WithColor(false))
	lines := r.Lines(l, None)
	require.Len(t, lines, 5)

	assert.Equal(t, strings.Repeat(" ", 8)+" 1 ", lines[0])
	assert.Equal(t, strings.Repeat(" ", 10)+"\\", lines[1])
	assert.Equal(t, strings.Repeat(" ", 12)+"42 ", lines[2])
	assert.Equal(t, strings.Repeat(" ", 12)+"/", lines[3])
	assert.Equal(t, strings.Repeat(" ", 10)+"100", lines[4])
}

func TestLines_HighlightOnlyMarkedValue(t *testing.T) {
	r := New(&bytes.Buffer{}, WithColor(true))
	plain := New(&bytes.Buffer{}, WithColor(false))

	marked := r.Lines(sampleLayout(), Mark(3))
	unmarked := r.Lines(sampleLayout(), None)

	assert.NotEqual(t, marked[2], unmarked[2], "highlight must change the styled row")
	assert.Equal(t, marked[0], unmarked[0])
	assert.Contains(t, marked[2], "\x1b[")

	// without colour the highlight is invisible
	assert.Equal(t, plain.Lines(sampleLayout(), Mark(3)), plain.Lines(sampleLayout(), None))
}

func TestDraw(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, WithColor(false))
	require.NoError(t, r.Draw(sampleLayout(), Mark(5)))
	assert.Equal(t, "\n     5 \n    / \\\n   3   8 \n", buf.String())

	buf.Reset()
	require.NoError(t, r.Draw(x_tree.Layout{MaxDepth: -1}, None))
	assert.Empty(t, buf.String())
}

func TestOutput(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, WithColor(false))
	require.NoError(t, r.Output("preorder", []int{5, 3, 8}))
	assert.Equal(t, "\n\nOutput using preorder traversal:\n5 3 8\n", buf.String())
}

func TestClear_NotATerminal(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	require.NoError(t, r.Clear())
	assert.Empty(t, buf.String())
	assert.False(t, IsTerminal(&buf))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, " 5 ", center("5", 3))
	assert.Equal(t, "42 ", center("42", 3))
	assert.Equal(t, "100", center("100", 3))
	assert.Equal(t, "1000", center("1000", 3))
}

func TestStylesByName_Themes(t *testing.T) {
	for _, theme := range []string{"dark", "light", "unknown"} {
		r := New(&bytes.Buffer{}, WithTheme(theme), WithColor(false))
		assert.Equal(t, "     5 ", r.Lines(sampleLayout(), None)[0], theme)
	}
}
