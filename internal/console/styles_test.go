package console

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func colorStyles() styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return newStyles(r)
}

func TestColorCardsLeavesPlainText(t *testing.T) {
	t.Parallel()

	s := colorStyles()
	line := "Alice is dealt 10♥: 7♠ 10♥ (17)"

	assert.Equal(t, "Alice is dealt "+s.redCard.Render("10♥")+": 7♠ "+s.redCard.Render("10♥")+" (17)",
		s.colorCards(line))
}

func TestColorDealerLineKeepsDealerColourAfterRedCards(t *testing.T) {
	t.Parallel()

	s := colorStyles()
	is := assert.New(t)
	is.NotEqual(" (7)", s.dealer.Render(" (7)"), "dealer style must emit colour")

	out := s.colorDealerLine("Dealer is dealt 7♦: ?? 7♦ (7)")

	is.Equal(s.dealer.Render("Dealer is dealt ")+
		s.redCard.Render("7♦")+
		s.dealer.Render(": ?? ")+
		s.redCard.Render("7♦")+
		s.dealer.Render(" (7)"), out)
	is.True(strings.HasSuffix(out, s.dealer.Render(" (7)")))

	plain := "Dealer is staying with 18"
	is.Equal(s.dealer.Render(plain), s.colorDealerLine(plain))
}
