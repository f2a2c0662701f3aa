// Package console renders a blackjack table on a plain terminal and reads
// the human players' answers from standard input.
package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
	"github.com/muesli/termenv"
)

// DisplayOptions configures a Display
type DisplayOptions struct {
	NoColor        bool
	ShowReasonings bool
	Pacer          *Pacer
	Logger         *log.Logger
}

// Display prints round events as styled lines. It subscribes to a round's
// event bus and never reads round state directly.
type Display struct {
	ctx       context.Context
	out       io.Writer
	formatter *game.EventFormatter
	styles    styles
	pacer     *Pacer
	logger    *log.Logger
}

// NewDisplay creates a display writing to out. Pauses stop early once ctx is
// done.
func NewDisplay(ctx context.Context, out io.Writer, opts DisplayOptions) *Display {
	renderer := lipgloss.NewRenderer(out)
	if opts.NoColor {
		renderer.SetColorProfile(termenv.Ascii)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Display{
		ctx:       ctx,
		out:       out,
		formatter: game.NewEventFormatter(game.FormattingOptions{ShowReasonings: opts.ShowReasonings}),
		styles:    newStyles(renderer),
		pacer:     opts.Pacer,
		logger:    logger.WithPrefix("display"),
	}
}

// OnEvent implements game.EventSubscriber
func (d *Display) OnEvent(event game.GameEvent) {
	if d.shouldPause(event) {
		if err := d.pacer.Pause(d.ctx); err != nil {
			d.logger.Debug("Pause interrupted", "error", err)
		}
	}

	switch e := event.(type) {
	case game.RoundStartEvent:
		fmt.Fprintln(d.out)
		d.println(d.styles.header.Render(" " + d.formatter.FormatRoundStart(e) + " "))
		return
	case game.TurnStartEvent:
		fmt.Fprintln(d.out)
	case game.RoundEndEvent:
		fmt.Fprintln(d.out)
		d.printResults(e)
		return
	case game.InvalidDecisionEvent:
		for _, l := range d.formatter.Format(e) {
			d.println(d.styles.warning.Render(l))
		}
		return
	}

	for _, l := range d.formatter.Format(event) {
		if dealerEvent(event) {
			d.println(d.styles.colorDealerLine(l))
			continue
		}
		d.println(d.styles.colorCards(l))
	}
}

// shouldPause slows down the dealer's play so each step can be read
func (d *Display) shouldPause(event game.GameEvent) bool {
	if d.pacer.Delay() <= 0 {
		return false
	}
	switch e := event.(type) {
	case game.HoleCardRevealedEvent, game.RoundEndEvent:
		return true
	case game.HitEvent:
		return e.Player.IsDealer
	}
	return false
}

func (d *Display) printResults(e game.RoundEndEvent) {
	for _, l := range d.formatter.FormatRoundEnd(e) {
		switch {
		case strings.HasPrefix(l, "Winner"):
			l = d.styles.win.Render(l)
		case strings.HasPrefix(l, "Loser"), strings.HasPrefix(l, "Busted"):
			l = d.styles.lose.Render(l)
		case strings.HasPrefix(l, "Tie"):
			l = d.styles.tie.Render(l)
		case strings.HasPrefix(l, "---"):
			l = d.styles.info.Render(l)
		}
		d.println(l)
	}
}

// Println writes a plain line outside of any round, e.g. the greeting
func (d *Display) Println(format string, args ...any) {
	d.println(fmt.Sprintf(format, args...))
}

func (d *Display) println(s string) {
	fmt.Fprintln(d.out, s)
}

func dealerEvent(event game.GameEvent) bool {
	switch e := event.(type) {
	case game.CardDealtEvent:
		return e.Player.IsDealer
	case game.HoleCardRevealedEvent:
		return true
	case game.TurnStartEvent:
		return e.Player.IsDealer
	case game.HitEvent:
		return e.Player.IsDealer
	case game.StandEvent:
		return e.Player.IsDealer
	case game.BustEvent:
		return e.Player.IsDealer
	}
	return false
}
