package spinner

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultAccessibilityLabel = "loading"
	defaultColor              = "69"
)

// Props configure a Spinner. Zero values pick the defaults: not focusable and
// an accessibility label of "loading".
type Props struct {
	// Label is shown next to the spinner. AccessibilityLabel is used when empty.
	Label              string
	AccessibilityLabel string
	Focusable          *bool
	// ClassName takes space separated utility classes such as "text-red bold".
	ClassName string
	// Ref, when set, receives the underlying bubbles model on creation and
	// again once the spinner stops.
	Ref *spinner.Model
}

func (p Props) withDefaults() Props {
	if p.AccessibilityLabel == "" {
		p.AccessibilityLabel = DefaultAccessibilityLabel
	}
	if p.Focusable == nil {
		focusable := false
		p.Focusable = &focusable
	}

	return p
}

func (p Props) text() string {
	if p.Label != "" {
		return p.Label
	}

	return p.AccessibilityLabel
}

var classColors = map[string]string{
	"black":   "0",
	"red":     "203",
	"green":   "42",
	"yellow":  "220",
	"blue":    "69",
	"magenta": "170",
	"cyan":    "159",
	"white":   "15",
	"gray":    "245",
	"grey":    "245",
	"orange":  "208",
}

// StyleFromClass maps utility classes onto a lipgloss style. Colors come from
// "text-<name>", "text-<0-255>" or "text-#rrggbb"; "bold", "italic" and
// "faint" toggle attributes. Unknown classes are ignored.
func StyleFromClass(className string) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(defaultColor))

	for _, class := range strings.Fields(className) {
		switch {
		case class == "bold":
			style = style.Bold(true)
		case class == "italic":
			style = style.Italic(true)
		case class == "faint":
			style = style.Faint(true)
		case strings.HasPrefix(class, "text-"):
			if color, ok := classColor(strings.TrimPrefix(class, "text-")); ok {
				style = style.Foreground(lipgloss.Color(color))
			}
		}
	}

	return style
}

func classColor(value string) (string, bool) {
	// Tailwind-style shades such as "red-500" share their base color.
	if base, _, found := strings.Cut(value, "-"); found {
		value = base
	}

	if color, ok := classColors[value]; ok {
		return color, true
	}
	if strings.HasPrefix(value, "#") && (len(value) == 4 || len(value) == 7) {
		return value, true
	}
	if isANSI256(value) {
		return value, true
	}

	return "", false
}

func isANSI256(value string) bool {
	if value == "" || len(value) > 3 {
		return false
	}

	n := 0
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
		n = n*10 + int(r-'0')
	}

	return n <= 255
}
