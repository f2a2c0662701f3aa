package console

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the lipgloss styles bound to one renderer
type styles struct {
	header  lipgloss.Style
	dealer  lipgloss.Style
	redCard lipgloss.Style
	win     lipgloss.Style
	lose    lipgloss.Style
	tie     lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2E7D32")).
			Bold(true),
		dealer: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		redCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		win: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		lose: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		tie: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
		info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

var redCardPattern = regexp.MustCompile(`(?:10|[2-9AJQK])[♥♦]`)

// colorCards highlights hearts and diamonds inside a plain line
func (s styles) colorCards(line string) string {
	return redCardPattern.ReplaceAllStringFunc(line, func(card string) string {
		return s.redCard.Render(card)
	})
}

// colorDealerLine renders a dealer line, keeping the dealer colour on the text
// between red cards. Each rendered card ends with a reset, so the base style
// is applied to every segment separately.
func (s styles) colorDealerLine(line string) string {
	var b strings.Builder
	last := 0
	for _, m := range redCardPattern.FindAllStringIndex(line, -1) {
		if m[0] > last {
			b.WriteString(s.dealer.Render(line[last:m[0]]))
		}
		b.WriteString(s.redCard.Render(line[m[0]:m[1]]))
		last = m[1]
	}
	if last < len(line) {
		b.WriteString(s.dealer.Render(line[last:]))
	}
	return b.String()
}
