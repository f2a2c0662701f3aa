package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/internal/game"
)

// Table palette
const (
	feltGreen = lipgloss.Color("#2E7D32")
	chalk     = lipgloss.Color("#FAFAFA")
	mint      = lipgloss.Color("#96CEB4")
	accent    = lipgloss.Color("#04B575")
	gold      = lipgloss.Color("#FFD700")
	cream     = lipgloss.Color("#FFEAA7")
	coral     = lipgloss.Color("#FF6B6B")
	muted     = lipgloss.Color("#626262")
)

var (
	HeaderStyle = lipgloss.NewStyle().Foreground(chalk).Background(feltGreen).Bold(true)
	TurnStyle   = lipgloss.NewStyle().Foreground(mint).Bold(true)
	PromptStyle = lipgloss.NewStyle().Foreground(gold).Bold(true)
	InfoStyle   = lipgloss.NewStyle().Foreground(muted)

	// Cards
	RedCardStyle    = lipgloss.NewStyle().Foreground(coral).Bold(true)
	BlackCardStyle  = lipgloss.NewStyle().Foreground(chalk).Bold(true)
	HiddenCardStyle = lipgloss.NewStyle().Foreground(muted)

	// Outcomes
	WinStyle  = lipgloss.NewStyle().Foreground(mint).Bold(true)
	LoseStyle = lipgloss.NewStyle().Foreground(coral).Bold(true)
	TieStyle  = lipgloss.NewStyle().Foreground(cream).Bold(true)

	WarningStyle = lipgloss.NewStyle().Foreground(cream)
	HelpStyle    = lipgloss.NewStyle().Foreground(muted).Italic(true)

	paneStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted)
)

// paneBorder highlights the border of the pane receiving keys
func paneBorder(focused bool) lipgloss.Style {
	if focused {
		return paneStyle.BorderForeground(accent)
	}
	return paneStyle
}

// cardStyle picks the style for one card as a table observer sees it
func cardStyle(c game.CardView) lipgloss.Style {
	switch {
	case !c.FaceUp:
		return HiddenCardStyle
	case c.Card.IsRed():
		return RedCardStyle
	default:
		return BlackCardStyle
	}
}

// statusBadge marks seats that have finished their turn
func statusBadge(s game.Status) string {
	switch s {
	case game.Busted:
		return LoseStyle.Render(" bust")
	case game.Standing:
		return InfoStyle.Render(" stay")
	}
	return ""
}

// resultStyle colours a line of the results block by its outcome
func resultStyle(line string) lipgloss.Style {
	switch {
	case strings.HasPrefix(line, "Winner"):
		return WinStyle
	case strings.HasPrefix(line, "Loser"), strings.HasPrefix(line, "Busted"):
		return LoseStyle
	case strings.HasPrefix(line, "Tie"):
		return TieStyle
	}
	return InfoStyle
}
