package x_render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rskv-p/bintree/constant"
)

// Styles holds the lipgloss styles used for one frame.
type Styles struct {
	Node      lipgloss.Style // regular node values
	Highlight lipgloss.Style // node currently visited
	Edge      lipgloss.Style // connector lines
	Output    lipgloss.Style // traversal output footer
}

// StylesByName returns the "dark" or "light" theme built on r.
func StylesByName(r *lipgloss.Renderer, name string) *Styles {
	switch strings.ToLower(name) {
	case "light":
		return &Styles{
			Node:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("#161616")),
			Highlight: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#b28600")),
			Edge:      r.NewStyle().Foreground(lipgloss.Color("#525252")),
			Output:    r.NewStyle().Bold(true),
		}
	default:
		return &Styles{
			Node:      r.NewStyle().Bold(true),
			Highlight: r.NewStyle().Bold(true).Foreground(lipgloss.Color(constant.HighlightColor)),
			Edge:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("#8d8d8d")),
			Output:    r.NewStyle().Bold(true),
		}
	}
}
