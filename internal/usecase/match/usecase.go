package match

import (
	"context"

	"github.com/google/uuid"
	"github.com/kiryu-dev/knucklebones/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type useCase struct {
	dice     domain.Dice
	input    domain.Input
	renderer domain.Renderer
	logger   *zap.Logger
}

func New(dice domain.Dice, input domain.Input, renderer domain.Renderer, logger *zap.Logger) useCase {
	return useCase{
		dice:     dice,
		input:    input,
		renderer: renderer,
		logger:   logger,
	}
}

// Play runs one match on the players' current boards until the active
// player's grid is full. On ErrCancelled the partial state is returned.
func (u useCase) Play(ctx context.Context, players [2]*domain.Player) (*domain.MatchState, error) {
	state := domain.NewMatchState(uuid.NewString(), players)
	logger := u.logger.With(zap.String("match", state.Uuid))
	state.Order = u.dice.Shuffle(players)
	state.Status = domain.Active
	logger.Info("match started", zap.String("first player", state.Order[0].Name()))
	err := u.renderer.Announce(domain.Event{
		Type:    domain.FirstPlayerChosen,
		Payload: domain.FirstPlayerPayload{Player: state.Order[0].Name()},
	})
	if err != nil {
		return state, errors.WithMessage(err, "announce first player")
	}
	for state.Active() {
		for i, player := range state.Order {
			opponent := state.Order[1-i]
			if err := u.playTurn(ctx, logger, state, player, opponent); err != nil {
				return state, errors.WithMessagef(err, "%s's turn", player.Name())
			}
			if player.IsGridFull() {
				state.Status = domain.Finished
				break
			}
		}
	}
	if err := u.finish(logger, state); err != nil {
		return state, errors.WithMessage(err, "finish match")
	}
	return state, nil
}

func (u useCase) playTurn(ctx context.Context, logger *zap.Logger, state *domain.MatchState,
	player, opponent *domain.Player) error {
	if err := u.renderer.ShowBoard(state.View()); err != nil {
		return errors.WithMessage(err, "show board")
	}
	if err := u.input.AwaitRoll(ctx, player.Name()); err != nil {
		return errors.WithMessage(err, "await roll")
	}
	value := u.dice.Roll()
	if value < domain.MinDieValue || value > domain.MaxDieValue {
		return errors.WithMessagef(errUnexpectedDieValue, "rolled %d", value)
	}
	state.CurrentDieValue = value
	err := u.renderer.Announce(domain.Event{
		Type:    domain.DieRolled,
		Payload: domain.DieRolledPayload{Player: player.Name(), Value: value},
	})
	if err != nil {
		return errors.WithMessage(err, "announce roll")
	}
	column, err := u.chooseColumn(ctx, player)
	if err != nil {
		return errors.WithMessage(err, "choose column")
	}
	if err := player.Place(value, column); err != nil {
		return errors.WithMessage(err, "place die")
	}
	removed, err := opponent.RemoveMatching(value, player.CurrentColumn())
	if err != nil {
		return errors.WithMessage(err, "remove opponent's dice")
	}
	logger.Debug("die placed",
		zap.String("player", player.Name()),
		zap.Int("value", value),
		zap.Stringer("column", column),
		zap.Int("removed", removed),
		zap.Int("score", player.Score()),
		zap.Int("opponent score", opponent.Score()),
	)
	return nil
}

func (u useCase) chooseColumn(ctx context.Context, player *domain.Player) (domain.ColumnIndex, error) {
	for {
		column, err := u.input.ChooseColumn(ctx, player.Name())
		switch {
		case errors.Is(err, domain.ErrInvalidColumnSelector):
			continue
		case err != nil:
			return 0, err
		case !column.Valid():
			continue
		}
		if !player.IsColumnFull(column) {
			return column, nil
		}
		err = u.renderer.Announce(domain.Event{
			Type:    domain.ColumnRejected,
			Payload: domain.ColumnRejectedPayload{Player: player.Name(), Column: column},
		})
		if err != nil {
			return 0, errors.WithMessage(err, "announce rejected column")
		}
	}
}

func (u useCase) finish(logger *zap.Logger, state *domain.MatchState) error {
	state.Winner = domain.DetermineWinner(state.Players[0], state.Players[1])
	var opts []domain.MatchFinishedPayloadOption
	if state.Winner != nil {
		state.Winner.IncrementWins()
		opts = append(opts, domain.WithWinner(state.Winner.Name()))
	}
	logger.Info("match finished",
		zap.Bool("draw", state.Draw()),
		zap.Ints("scores", []int{state.Players[0].Score(), state.Players[1].Score()}),
	)
	if err := u.renderer.ShowBoard(state.View()); err != nil {
		return errors.WithMessage(err, "show board")
	}
	if err := u.renderer.Announce(domain.NewMatchFinishedEvent(state, opts...)); err != nil {
		return errors.WithMessage(err, "announce result")
	}
	return nil
}
