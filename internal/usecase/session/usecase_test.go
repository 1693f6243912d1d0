package session

import (
	"context"
	"testing"

	"github.com/kiryu-dev/knucklebones/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const draw = -1

// fakeMatch plays one scripted round per call: the seat at outcomes[i]
// scores a six and takes the win, draw leaves both boards empty.
type fakeMatch struct {
	outcomes []int
	entry    [][2]domain.PlayerView
	err      error
}

func (m *fakeMatch) Play(_ context.Context, players [2]*domain.Player) (*domain.MatchState, error) {
	m.entry = append(m.entry, [2]domain.PlayerView{players[0].View(), players[1].View()})
	if m.err != nil {
		return nil, m.err
	}
	state := domain.NewMatchState("match", players)
	outcome := m.outcomes[0]
	m.outcomes = m.outcomes[1:]
	if outcome != draw {
		if err := players[outcome].Place(6, domain.Left); err != nil {
			return nil, err
		}
		players[outcome].IncrementWins()
		state.Winner = players[outcome]
	}
	state.Status = domain.Finished
	return state, nil
}

type fakeInput struct {
	names   []string
	replays []bool
	seats   []int
}

func (in *fakeInput) AwaitRoll(context.Context, string) error {
	return nil
}

func (in *fakeInput) ChooseColumn(context.Context, string) (domain.ColumnIndex, error) {
	return domain.Left, nil
}

func (in *fakeInput) PlayerName(_ context.Context, seat int) (string, error) {
	if len(in.names) == 0 {
		return "", domain.ErrCancelled
	}
	in.seats = append(in.seats, seat)
	name := in.names[0]
	in.names = in.names[1:]
	return name, nil
}

func (in *fakeInput) ConfirmReplay(context.Context) (bool, error) {
	if len(in.replays) == 0 {
		return false, nil
	}
	again := in.replays[0]
	in.replays = in.replays[1:]
	return again, nil
}

type fakeRenderer struct {
	events []domain.Event
}

func (r *fakeRenderer) ShowBoard(domain.BoardView) error {
	return nil
}

func (r *fakeRenderer) Announce(event domain.Event) error {
	r.events = append(r.events, event)
	return nil
}

var nameFormat = domain.NameFormat{MaxLength: 24, Ellipsis: "..."}

func TestRun_SingleMatch(t *testing.T) {
	// Given: two named players and a single decided match
	match := &fakeMatch{outcomes: []int{0}}
	renderer := &fakeRenderer{}
	uc := New(match, &fakeInput{}, renderer, nameFormat, zap.NewNop())

	// When: the session runs and replay is declined
	standing, err := uc.Run(context.Background(), []string{"ann", "bob"})

	// Then: nothing is reported about the series
	require.NoError(t, err)
	assert.Equal(t, domain.SeriesSuppressed, standing.Outcome)
	assert.Empty(t, renderer.events)
	assert.Equal(t, domain.SessionEnded, uc.Status())
	assert.Equal(t, 1, uc.Rounds())
}

func TestRun_ReplayResetsBoardsButKeepsWins(t *testing.T) {
	// Given: ann wins the first round, then bob wins twice
	match := &fakeMatch{outcomes: []int{0, 1, 1}}
	input := &fakeInput{replays: []bool{true, true, false}}
	renderer := &fakeRenderer{}
	uc := New(match, input, renderer, nameFormat, zap.NewNop())

	// When: the session runs three rounds
	standing, err := uc.Run(context.Background(), []string{"ann", "bob"})

	// Then: every round started on empty boards with names and wins kept
	require.NoError(t, err)
	require.Len(t, match.entry, 3)
	for round, views := range match.entry {
		for _, view := range views {
			assert.Equal(t, domain.Grid{}, view.Grid, "round %d", round+1)
			assert.Zero(t, view.Score)
		}
		assert.Equal(t, "ann", views[0].Name)
		assert.Equal(t, "bob", views[1].Name)
	}
	assert.Equal(t, 1, match.entry[1][0].Wins)
	assert.Equal(t, 1, match.entry[2][1].Wins)

	// Then: bob leads the series
	assert.Equal(t, domain.SeriesDecided, standing.Outcome)
	players := uc.Players()
	assert.Same(t, players[1], standing.Leader)
	require.Len(t, renderer.events, 1)
	payload := renderer.events[0].Payload.(*domain.SeriesFinishedPayload)
	assert.Equal(t, [2]int{1, 2}, payload.Wins)
	require.NotNil(t, payload.Leader)
	assert.Equal(t, "bob", *payload.Leader)
}

func TestRun_SeriesTie(t *testing.T) {
	t.Run("after a draw", func(t *testing.T) {
		renderer := &fakeRenderer{}
		uc := New(&fakeMatch{outcomes: []int{draw}}, &fakeInput{}, renderer, nameFormat, zap.NewNop())

		standing, err := uc.Run(context.Background(), []string{"ann", "bob"})

		require.NoError(t, err)
		assert.Equal(t, domain.SeriesTie, standing.Outcome)
		require.Len(t, renderer.events, 1)
		assert.Equal(t, domain.SeriesFinished, renderer.events[0].Type)
	})

	t.Run("after split wins", func(t *testing.T) {
		renderer := &fakeRenderer{}
		input := &fakeInput{replays: []bool{true}}
		uc := New(&fakeMatch{outcomes: []int{1, 0}}, input, renderer, nameFormat, zap.NewNop())

		standing, err := uc.Run(context.Background(), []string{"ann", "bob"})

		require.NoError(t, err)
		assert.Equal(t, domain.SeriesTie, standing.Outcome)
		payload := renderer.events[0].Payload.(*domain.SeriesFinishedPayload)
		assert.Nil(t, payload.Leader)
	})
}

func TestRun_AsksForMissingNames(t *testing.T) {
	// Given: only the first name is provided and the prompt first gets a blank
	input := &fakeInput{names: []string{"   ", "a-name-that-is-much-too-long-to-show"}}
	uc := New(&fakeMatch{outcomes: []int{draw}}, input, &fakeRenderer{}, nameFormat, zap.NewNop())

	// When: the session starts
	_, err := uc.Run(context.Background(), []string{"ann"})

	// Then: the second seat is asked until a name is given, and it is truncated
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, input.seats)
	players := uc.Players()
	assert.Equal(t, "ann", players[0].Name())
	assert.Equal(t, "a-name-that-is-much-t...", players[1].Name())
}

func TestRun_Cancelled(t *testing.T) {
	t.Run("while naming players", func(t *testing.T) {
		match := &fakeMatch{}
		uc := New(match, &fakeInput{}, &fakeRenderer{}, nameFormat, zap.NewNop())

		_, err := uc.Run(context.Background(), nil)

		require.ErrorIs(t, err, domain.ErrCancelled)
		assert.Empty(t, match.entry)
	})

	t.Run("during a match", func(t *testing.T) {
		renderer := &fakeRenderer{}
		uc := New(&fakeMatch{err: domain.ErrCancelled}, &fakeInput{}, renderer, nameFormat, zap.NewNop())

		_, err := uc.Run(context.Background(), []string{"ann", "bob"})

		require.ErrorIs(t, err, domain.ErrCancelled)
		assert.Empty(t, renderer.events)
		assert.Zero(t, uc.Rounds())
	})
}
