// Package x_prompt asks for and validates the tree shape and traversal.
package x_prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/rskv-p/bintree/constant"
	"github.com/rskv-p/bintree/pkg/x_tree"
)

var (
	ErrInvalidLevel           = errors.New("invalid level")
	ErrInvalidNodes           = errors.New("invalid node count")
	ErrInvalidTraversalChoice = errors.New("invalid traversal choice")
)

// choices maps the menu number to a traversal name.
var choices = map[int]string{
	1: constant.TraversalPreorder,
	2: constant.TraversalInorder,
	3: constant.TraversalPostorder,
}

// inputError carries the hint shown to the user next to the sentinel.
type inputError struct {
	kind error
	hint string
}

func invalid(kind error, format string, args ...any) error {
	return &inputError{kind: kind, hint: fmt.Sprintf(format, args...)}
}

func (e *inputError) Error() string { return e.kind.Error() + ": want " + e.hint }
func (e *inputError) Unwrap() error { return e.kind }

// ----------------------------------------------------
// Validation
// ----------------------------------------------------

// Level parses answer as a level in [MinLevel, MaxLevelLimit].
func Level(answer string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n < constant.MinLevel || n > constant.MaxLevelLimit {
		return 0, invalid(ErrInvalidLevel, "a valid number between %d and %d", constant.MinLevel, constant.MaxLevelLimit)
	}
	return n, nil
}

// NodeRange returns the allowed node counts for level.
func NodeRange(level int) (lo, hi int) {
	return level + 1, 1<<(level+1) - 1
}

// Nodes parses answer as a node count valid for level.
func Nodes(level int, answer string) (int, error) {
	lo, hi := NodeRange(level)
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || x_tree.Validate(level, n) != nil {
		return 0, invalid(ErrInvalidNodes, "a valid number between %d and %d", lo, hi)
	}
	return n, nil
}

// Traversal parses a menu answer: 1 preorder, 2 inorder, 3 postorder.
func Traversal(answer string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	name, ok := choices[n]
	if err != nil || !ok {
		return "", invalid(ErrInvalidTraversalChoice, "1, 2, or 3")
	}
	return name, nil
}

// ----------------------------------------------------
// Prompter
// ----------------------------------------------------

// Prompter asks questions on Out and reads answers from In. A line may hold
// several answers, e.g. "3 10 2", which are consumed by the following
// questions in order.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	pending []string
}

// New returns a Prompter reading in and writing out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// AskLevel asks for the number of levels.
func (p *Prompter) AskLevel() (int, error) {
	answer, err := p.ask(fmt.Sprintf("How many levels do you like? (%d-%d): ",
		constant.MinLevel, constant.MaxLevelLimit))
	if err != nil {
		return 0, err
	}
	return p.check(Level(answer))
}

// AskNodes asks for the number of nodes allowed by level.
func (p *Prompter) AskNodes(level int) (int, error) {
	lo, hi := NodeRange(level)
	answer, err := p.ask(fmt.Sprintf("How many nodes do you like? (%d-%d): ", lo, hi))
	if err != nil {
		return 0, err
	}
	return p.check(Nodes(level, answer))
}

// AskTraversal asks for the traversal order.
func (p *Prompter) AskTraversal() (string, error) {
	answer, err := p.ask("Which traversal would you prefer? (Preorder - 1 / Inorder - 2 / Postorder - 3): ")
	if err != nil {
		return "", err
	}
	name, err := Traversal(answer)
	if err != nil {
		p.pending = nil
		p.banner(err)
		return "", err
	}
	return name, nil
}

// WaitEnter prints msg and blocks until a line is read. Leftover answers
// are dropped.
func (p *Prompter) WaitEnter(msg string) error {
	p.pending = nil
	fmt.Fprintf(p.out, "\n%s\n", msg)
	_, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ask returns the next queued answer, or prints question and reads a line.
// Extra tokens on the line are queued for the next questions.
func (p *Prompter) ask(question string) (string, error) {
	if len(p.pending) > 0 {
		answer := p.pending[0]
		p.pending = p.pending[1:]
		return answer, nil
	}

	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read answer: %w", err)
	}

	tokens, err := shlex.Split(line)
	if err != nil || len(tokens) == 0 {
		return line, nil
	}
	p.pending = tokens[1:]
	return tokens[0], nil
}

func (p *Prompter) check(n int, err error) (int, error) {
	if err != nil {
		p.pending = nil
		p.banner(err)
		return 0, err
	}
	return n, nil
}

// banner prints the user-facing message for err between dashed rules.
func (p *Prompter) banner(err error) {
	msg := err.Error()
	var ie *inputError
	if errors.As(err, &ie) {
		msg = "Invalid input. Please enter " + ie.hint + "."
	}
	rule := strings.Repeat("-", constant.ErrorBannerWidth)
	fmt.Fprintf(p.out, "%s\n%s\n%s\n", rule, msg, rule)
}
