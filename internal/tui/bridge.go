package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
)

// ErrQuit is returned when the user leaves the TUI while a question is open
var ErrQuit = errors.New("user quit")

// Sender delivers messages to a running program; *tea.Program implements it
type Sender interface {
	Send(msg tea.Msg)
}

// Bridge connects a round to the TUI. It forwards round events to the model
// and turns questions into prompts answered from the input line.
type Bridge struct {
	sender Sender
	model  *TUIModel
	logger *log.Logger
}

// NewBridge creates a bridge sending to the program that runs model
func NewBridge(sender Sender, model *TUIModel, logger *log.Logger) *Bridge {
	return &Bridge{
		sender: sender,
		model:  model,
		logger: logger.WithPrefix("bridge"),
	}
}

// OnEvent implements game.EventSubscriber
func (b *Bridge) OnEvent(event game.GameEvent) {
	b.sender.Send(EventMsg{Event: event})
}

// Println appends a plain line to the log
func (b *Bridge) Println(format string, args ...any) {
	b.sender.Send(LogMsg{Line: fmt.Sprintf(format, args...)})
}

// warn appends a styled line verbatim
func (b *Bridge) warn(line string) {
	b.sender.Send(LogMsg{Line: WarningStyle.Render(line)})
}

func (b *Bridge) ask(ctx context.Context, question string, player *game.PlayerView) (string, error) {
	b.sender.Send(PromptMsg{Question: question, Player: player})

	result, err := b.model.WaitForAction(ctx)
	if err != nil {
		return "", err
	}
	if !result.Continue {
		return "", ErrQuit
	}
	b.logger.Debug("Answer", "question", question, "answer", result.Input)
	return result.Input, nil
}

// PlayerCount asks how many players are at the table until the answer is a
// number between lo and hi
func (b *Bridge) PlayerCount(ctx context.Context, lo, hi int) (int, error) {
	question := fmt.Sprintf("How many players are playing today? (%d-%d)", lo, hi)
	for {
		answer, err := b.ask(ctx, question, nil)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= lo && n <= hi {
			return n, nil
		}
		b.warn("That was not a valid input. Please try again.")
	}
}

// Confirm asks a yes or no question
func (b *Bridge) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		answer, err := b.ask(ctx, question+" (yes/no)", nil)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		b.warn("That is not a valid response. Try again.")
	}
}

// Agent returns a game.Agent answered from the input line
func (b *Bridge) Agent() game.Agent {
	return game.AgentFunc(func(ctx context.Context, view game.PlayerView) (game.Decision, error) {
		answer, err := b.ask(ctx, "Would you like to 'hit' or 'stay'?", &view)
		if err != nil {
			return game.Decision{}, err
		}
		action, err := game.ParseAction(answer)
		if err != nil {
			return game.Decision{}, err
		}
		return game.Decision{Action: action, Reasoning: "typed " + strings.ToLower(answer)}, nil
	})
}
