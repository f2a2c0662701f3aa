package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFrontend struct {
	game.EventRecorder
	count    int
	confirms []bool
	lines    []string
	asked    int
}

func (f *fakeFrontend) PlayerCount(context.Context, int, int) (int, error) {
	f.asked++
	return f.count, nil
}

func (f *fakeFrontend) Confirm(context.Context, string) (bool, error) {
	if len(f.confirms) == 0 {
		return false, fmt.Errorf("unexpected question")
	}
	answer := f.confirms[0]
	f.confirms = f.confirms[1:]
	return answer, nil
}

func (f *fakeFrontend) Agent() game.Agent {
	return game.AgentFunc(func(context.Context, game.PlayerView) (game.Decision, error) {
		return game.Decision{Action: game.Stay}, nil
	})
}

func (f *fakeFrontend) Println(format string, args ...any) {
	f.lines = append(f.lines, fmt.Sprintf(format, args...))
}

func (f *fakeFrontend) roundStarts() []game.RoundStartEvent {
	var starts []game.RoundStartEvent
	for _, e := range f.Events() {
		if rs, ok := e.(game.RoundStartEvent); ok {
			starts = append(starts, rs)
		}
	}
	return starts
}

func TestSessionPlaysUntilDeclined(t *testing.T) {
	t.Parallel()

	fe := &fakeFrontend{count: 2, confirms: []bool{true, true, false}}
	s := New(fe, randutil.New(1), Config{})

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, 3, s.Rounds())
	assert.Equal(t, 1, fe.asked)
	assert.Equal(t, []string{"Great! Let's play with 2 players.", "Thanks for playing!"}, fe.lines)

	starts := fe.roundStarts()
	require.Len(t, starts, 3)
	for _, rs := range starts {
		assert.Equal(t, []string{"Player 1", "Player 2"}, rs.Players)
		assert.Equal(t, game.DefaultDealerName, rs.Dealer)
	}
	assert.NotEqual(t, starts[0].RoundID, starts[1].RoundID)
}

func TestSessionUsesConfiguredTable(t *testing.T) {
	t.Parallel()

	names := []string{"Alice"}
	fe := &fakeFrontend{confirms: []bool{false}}
	s := New(fe, randutil.New(2), Config{
		Players:    1,
		PlayerName: func(i int) string { return names[i] },
		DealerName: "House",
	})

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, 0, fe.asked, "configured player count is not asked")
	assert.Equal(t, "Great! Let's play with 1 player.", fe.lines[0])
	starts := fe.roundStarts()
	require.Len(t, starts, 1)
	assert.Equal(t, []string{"Alice"}, starts[0].Players)
	assert.Equal(t, "House", starts[0].Dealer)
}

func TestSessionStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fe := &fakeFrontend{count: 1}
	err := New(fe, randutil.New(3), Config{}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, fe.Types(), game.EventTypeRoundAborted)
}
