package x_log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

//
// ---------- IBM Carbon Colors ----------

const (
	ColorTeal40    = "#3ddbd9"
	ColorBlue60    = "#4589ff"
	ColorBlue40    = "#78a9ff"
	ColorBlue70    = "#0043ce"
	ColorBlueBase  = "#0f62fe"
	ColorRed60     = "#da1e28"
	ColorRedStrong = "#ff0000"
	ColorOrange40  = "#ff832b"
	ColorGray60    = "#8d8d8d"
	ColorGray10    = "#f4f4f4"
	ColorGray90    = "#262626"
)

// fieldKeys are the structured fields the tree commands log.
var fieldKeys = []string{"session", "max_level", "nodes", "traversal", "seed", "value", "module", "err"}

//
// ---------- Styles Definition ----------

// Styles defines all formatting styles used for structured output
type Styles struct {
	Out               io.Writer                 // output target
	Timestamp         lipgloss.Style            // style for timestamps
	Message           lipgloss.Style            // style for the message text
	Levels            map[Level]lipgloss.Style  // level-to-style mapping
	Keys              map[string]lipgloss.Style // custom field keys
	DefaultKeyStyle   lipgloss.Style            // fallback for unknown keys
	DefaultValueStyle lipgloss.Style            // fallback for unknown values
}

// DefaultStylesByName returns a theme by name ("dark", "light")
func DefaultStylesByName(name string) *Styles {
	switch strings.ToLower(name) {
	case "light":
		return DefaultStylesLight()
	default:
		return DefaultStylesDark()
	}
}

//
// ---------- Console Formatter ----------

// ConsoleWriterWithStyles builds a zerolog.ConsoleWriter with styles
func ConsoleWriterWithStyles(styles *Styles) zerolog.ConsoleWriter {
	out := styles.Out
	if out == nil {
		out = os.Stderr
	}

	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",

		FormatLevel: func(i any) string {
			lvl, err := ParseLevel(fmt.Sprint(i))
			label := strings.ToUpper(fmt.Sprint(i))
			if len(label) > 3 {
				label = label[:3]
			}
			style, ok := styles.Levels[lvl]
			if err != nil || !ok {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)).Render(label)
			}
			return style.Render(label)
		},

		FormatTimestamp: func(i any) string {
			return styles.Timestamp.Render(fmt.Sprintf("[%s]", i))
		},

		FormatFieldName: func(i any) string {
			key := fmt.Sprint(i)
			style, ok := styles.Keys[key]
			if !ok {
				style = styles.DefaultKeyStyle
			}
			return style.Render(key) + lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)).Render("=")
		},

		FormatFieldValue: func(i any) string {
			return styles.DefaultValueStyle.Render(fmt.Sprint(i))
		},

		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return styles.Message.Render(fmt.Sprint(i))
		},
	}
}

//
// ---------- Themes ----------

func levelBadge(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

func keyStyles(color string) map[string]lipgloss.Style {
	keys := make(map[string]lipgloss.Style, len(fieldKeys))
	for _, k := range fieldKeys {
		keys[k] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60))
	return keys
}

func DefaultStylesDark() *Styles {
	return &Styles{
		Timestamp:         lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
		Message:           lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray10)),
		DefaultKeyStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
		DefaultValueStyle: lipgloss.NewStyle(),

		Levels: map[Level]lipgloss.Style{
			DebugLevel: levelBadge(ColorTeal40),
			InfoLevel:  levelBadge(ColorBlue60),
			WarnLevel:  levelBadge(ColorOrange40),
			ErrorLevel: levelBadge(ColorRed60),
			FatalLevel: levelBadge(ColorRedStrong),
		},

		Keys: keyStyles(ColorBlue40),
	}
}

func DefaultStylesLight() *Styles {
	return &Styles{
		Timestamp:         lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
		Message:           lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray90)),
		DefaultKeyStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
		DefaultValueStyle: lipgloss.NewStyle(),

		Levels: map[Level]lipgloss.Style{
			DebugLevel: levelBadge(ColorTeal40),
			InfoLevel:  levelBadge(ColorBlue70),
			WarnLevel:  levelBadge(ColorOrange40),
			ErrorLevel: levelBadge(ColorRed60),
			FatalLevel: levelBadge(ColorRedStrong),
		},

		Keys: keyStyles(ColorBlueBase),
	}
}
