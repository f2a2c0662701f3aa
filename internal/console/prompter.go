package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
)

// ErrInputClosed is returned once the input stream has ended
var ErrInputClosed = errors.New("input closed")

type line struct {
	text string
	err  error
}

// Prompter asks questions on a line-based terminal. Every question loops
// until it gets an acceptable answer, the input ends or ctx is done.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	logger *log.Logger

	once      sync.Once
	closeOnce sync.Once
	lines     chan line
	done      chan struct{}
}

// NewPrompter creates a prompter reading answers from in and writing
// questions to out
func NewPrompter(in io.Reader, out io.Writer, logger *log.Logger) *Prompter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Prompter{
		in:     in,
		out:    out,
		logger: logger.WithPrefix("prompt"),
		done:   make(chan struct{}),
	}
}

// Close stops the background reader. A read already blocked on the terminal
// finishes on its own but its line is dropped.
func (p *Prompter) Close() error {
	p.closeOnce.Do(func() { close(p.done) })
	return nil
}

// start reads lines on a background goroutine so that a blocked terminal
// read never outlives a cancelled context
func (p *Prompter) start() {
	p.lines = make(chan line)
	go func() {
		defer close(p.lines)
		scanner := bufio.NewScanner(p.in)
		for scanner.Scan() {
			if !p.send(line{text: scanner.Text()}) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			p.send(line{err: err})
		}
	}()
}

// send hands a line to Ask, giving up once the prompter is closed
func (p *Prompter) send(l line) bool {
	select {
	case p.lines <- l:
		return true
	case <-p.done:
		return false
	}
}

// Ask writes the question and returns the next line of input, trimmed
func (p *Prompter) Ask(ctx context.Context, question string) (string, error) {
	p.once.Do(p.start)

	fmt.Fprint(p.out, question)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", ErrInputClosed
	case l, ok := <-p.lines:
		if !ok {
			return "", ErrInputClosed
		}
		if l.err != nil {
			return "", fmt.Errorf("reading input: %w", l.err)
		}
		p.logger.Debug("Answer", "question", strings.TrimSpace(question), "answer", l.text)
		return strings.TrimSpace(l.text), nil
	}
}

// PlayerCount asks how many players are at the table until the answer is a
// number between lo and hi
func (p *Prompter) PlayerCount(ctx context.Context, lo, hi int) (int, error) {
	question := fmt.Sprintf("How many players are playing today? (Please enter a number between %d and %d): ", lo, hi)
	for {
		answer, err := p.Ask(ctx, question)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= lo && n <= hi {
			return n, nil
		}
		fmt.Fprintln(p.out, "That was not a valid input. Please try again.")
	}
}

// Confirm asks a yes or no question until it gets "yes"/"y" or "no"/"n"
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		answer, err := p.Ask(ctx, question+" ('yes' or 'no'): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		fmt.Fprintln(p.out, "That is not a valid response. Try again.")
	}
}

// Agent returns a game.Agent that asks this prompter for hit or stay
func (p *Prompter) Agent() game.Agent {
	return &promptAgent{prompter: p}
}

type promptAgent struct {
	prompter *Prompter
}

// MakeDecision shows the player's hand and reads one answer. Anything other
// than hit or stay comes back as game.ErrInvalidDecision and the round asks
// again.
func (a *promptAgent) MakeDecision(ctx context.Context, view game.PlayerView) (game.Decision, error) {
	question := fmt.Sprintf("%s, you have %s for a total of %d. Would you like to 'hit' or 'stay'? ",
		view.Name, game.FormatCards(view.Cards), view.Points)

	answer, err := a.prompter.Ask(ctx, question)
	if err != nil {
		return game.Decision{}, err
	}

	action, err := game.ParseAction(answer)
	if err != nil {
		return game.Decision{}, err
	}
	return game.Decision{Action: action, Reasoning: "typed " + strings.ToLower(answer)}, nil
}
