package x_prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraversal(t *testing.T) {
	for answer, want := range map[string]string{"1": "preorder", "2": "inorder", "3": "postorder"} {
		got, err := Traversal(answer)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, bad := range []string{"5", "0", "inorder", ""} {
		_, err := Traversal(bad)
		assert.ErrorIs(t, err, ErrInvalidTraversalChoice, bad)
	}
}

func TestLevel(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4} {
		got, err := Level(strings.Repeat(" ", n) + string(rune('0'+n)))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	for _, bad := range []string{"5", "0", "three", "-1"} {
		_, err := Level(bad)
		assert.ErrorIs(t, err, ErrInvalidLevel, bad)
	}
}

func TestNodes(t *testing.T) {
	valid := []struct {
		level  int
		answer string
		want   int
	}{
		{1, "2", 2},
		{2, "5", 5},
		{3, "12", 12},
		{4, "27", 27},
	}
	for _, c := range valid {
		got, err := Nodes(c.level, c.answer)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}

	invalid := []struct {
		level  int
		answer string
	}{
		{1, "4"},
		{2, "2"},
		{3, "2"},
		{4, "2"},
		{3, "twelve"},
	}
	for _, c := range invalid {
		_, err := Nodes(c.level, c.answer)
		assert.ErrorIs(t, err, ErrInvalidNodes, "level=%d answer=%s", c.level, c.answer)
	}
}

func TestNodeRange(t *testing.T) {
	lo, hi := NodeRange(3)
	assert.Equal(t, 4, lo)
	assert.Equal(t, 15, hi)
}

func TestPrompter_AskAll(t *testing.T) {
	in := strings.NewReader("3\n\"10\"\n 2 \n\n")
	var out bytes.Buffer
	p := New(in, &out)

	level, err := p.AskLevel()
	require.NoError(t, err)
	assert.Equal(t, 3, level)

	nodes, err := p.AskNodes(level)
	require.NoError(t, err)
	assert.Equal(t, 10, nodes)

	kind, err := p.AskTraversal()
	require.NoError(t, err)
	assert.Equal(t, "inorder", kind)

	require.NoError(t, p.WaitEnter("Press Enter to start the traversal..."))

	s := out.String()
	assert.Contains(t, s, "How many levels do you like? (1-4): ")
	assert.Contains(t, s, "How many nodes do you like? (4-15): ")
	assert.Contains(t, s, "Press Enter to start the traversal...")
}

func TestPrompter_InvalidAnswerPrintsBanner(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("9\n"), &out)

	_, err := p.AskLevel()
	assert.ErrorIs(t, err, ErrInvalidLevel)

	rule := strings.Repeat("-", 50)
	assert.Contains(t, out.String(), rule+"\nInvalid input. Please enter a valid number between 1 and 4.\n"+rule)
}

func TestPrompter_AnswersOnOneLine(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("2 '5' 1\n\n"), &out)

	level, err := p.AskLevel()
	require.NoError(t, err)
	assert.Equal(t, 2, level)

	nodes, err := p.AskNodes(level)
	require.NoError(t, err)
	assert.Equal(t, 5, nodes)

	kind, err := p.AskTraversal()
	require.NoError(t, err)
	assert.Equal(t, "preorder", kind)

	s := out.String()
	assert.Contains(t, s, "How many levels do you like?")
	assert.NotContains(t, s, "How many nodes do you like?", "queued answers skip the question")
	require.NoError(t, p.WaitEnter("go"))
}

func TestPrompter_InvalidAnswerDropsQueue(t *testing.T) {
	p := New(strings.NewReader("9 5 1\n3\n"), &bytes.Buffer{})
	_, err := p.AskLevel()
	assert.ErrorIs(t, err, ErrInvalidLevel)

	// the queued "5 1" is discarded, the next line is read
	level, err := p.AskLevel()
	require.NoError(t, err)
	assert.Equal(t, 3, level)
}

func TestPrompter_UnbalancedQuoteRejected(t *testing.T) {
	p := New(strings.NewReader("'1\n"), &bytes.Buffer{})
	_, err := p.AskTraversal()
	assert.ErrorIs(t, err, ErrInvalidTraversalChoice)
}

func TestPrompter_EOF(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.AskLevel()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidLevel)

	// last line without newline is still an answer
	p = New(strings.NewReader("2"), &bytes.Buffer{})
	level, err := p.AskLevel()
	require.NoError(t, err)
	assert.Equal(t, 2, level)

	assert.NoError(t, p.WaitEnter("go"))
}
