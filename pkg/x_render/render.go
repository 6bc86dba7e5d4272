// Package x_render draws tree layouts as text frames.
package x_render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rskv-p/bintree/constant"
	"github.com/rskv-p/bintree/pkg/x_tree"
)

// Highlight marks the node value drawn in the highlight style.
type Highlight struct {
	Value int
	On    bool
}

// None draws no highlight.
var None = Highlight{}

// Mark highlights v.
func Mark(v int) Highlight { return Highlight{Value: v, On: true} }

// Renderer writes frames to Out.
type Renderer struct {
	Out    io.Writer
	styles *Styles
}

type options struct {
	theme   string
	profile termenv.Profile
	forced  bool
}

// Option configures a Renderer.
type Option func(*options)

// WithTheme selects the "dark" or "light" theme.
func WithTheme(name string) Option {
	return func(o *options) { o.theme = name }
}

// WithColor forces colour on or off instead of detecting it from Out.
func WithColor(on bool) Option {
	return func(o *options) {
		o.forced = true
		o.profile = termenv.Ascii
		if on {
			o.profile = termenv.TrueColor
		}
	}
}

// New returns a Renderer writing to out.
func New(out io.Writer, opts ...Option) *Renderer {
	o := options{theme: constant.DefaultTheme}
	for _, opt := range opts {
		opt(&o)
	}

	lr := lipgloss.NewRenderer(out)
	if o.forced {
		lr.SetColorProfile(o.profile)
	} else if !IsTerminal(out) {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{Out: out, styles: StylesByName(lr, o.theme)}
}

//---------------------
// Frame
//---------------------

// Lines returns the text lines of l: one node line per depth and a
// connector line between consecutive depths.
func (r *Renderer) Lines(l x_tree.Layout, hl Highlight) []string {
	lines := make([]string, 0, 2*len(l.Rows))
	for i, row := range l.Rows {
		lines = append(lines, r.nodeLine(row, hl))
		if i < len(l.Rows)-1 {
			lines = append(lines, r.styles.Edge.Render(connectorLine(row)))
		}
	}
	return lines
}

// Draw writes a full frame preceded by a blank line.
func (r *Renderer) Draw(l x_tree.Layout, hl Highlight) error {
	if len(l.Rows) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteByte('\n')
	for _, line := range r.Lines(l, hl) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.Out, b.String())
	return err
}

// Output writes the values visited so far under the frame.
func (r *Renderer) Output(kind string, visited []int) error {
	vals := make([]string, len(visited))
	for i, v := range visited {
		vals[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintf(r.Out, "\n\n%s\n%s\n",
		r.styles.Output.Render(fmt.Sprintf("Output using %s traversal:", kind)),
		r.styles.Output.Render(strings.Join(vals, " ")))
	return err
}

// Clear wipes the screen if Out is a terminal.
func (r *Renderer) Clear() error {
	return Clear(r.Out)
}

func (r *Renderer) nodeLine(row x_tree.Row, hl Highlight) string {
	var b strings.Builder
	width := 0
	for _, c := range row.Cells {
		if pad := c.Column - width; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
			width += pad
		}
		cell := center(strconv.Itoa(c.Value), constant.CellWidth)
		style := r.styles.Node
		if hl.On && hl.Value == c.Value {
			style = r.styles.Highlight
		}
		b.WriteString(style.Render(cell))
		width += len(cell)
	}
	return b.String()
}

// connectorLine puts "/" and "\" under a node when its left or right slot
// is occupied one depth below.
func connectorLine(row x_tree.Row) string {
	var b strings.Builder
	for _, c := range row.Cells {
		if pad := c.Column - b.Len(); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(glyph(c.Left, "/"))
		b.WriteByte(' ')
		b.WriteString(glyph(c.Right, "\\"))
	}
	return strings.TrimRight(b.String(), " ")
}

func glyph(on bool, s string) string {
	if on {
		return s
	}
	return " "
}

// center pads s to width, extra space going right.
func center(s string, width int) string {
	pad := max(width-len(s), 0)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
