package session

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/kiryu-dev/knucklebones/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const seats = 2

type useCase struct {
	uuid       string
	match      domain.MatchUseCase
	input      domain.Input
	renderer   domain.Renderer
	nameFormat domain.NameFormat
	players    [seats]*domain.Player
	status     domain.MatchStatus
	rounds     int
	logger     *zap.Logger
}

func New(match domain.MatchUseCase, input domain.Input, renderer domain.Renderer,
	nameFormat domain.NameFormat, logger *zap.Logger) *useCase {
	id := uuid.NewString()
	return &useCase{
		uuid:       id,
		match:      match,
		input:      input,
		renderer:   renderer,
		nameFormat: nameFormat,
		status:     domain.NotStarted,
		logger:     logger.With(zap.String("session", id)),
	}
}

// Run seats the players and plays matches until replay is declined. Names
// missing from names are asked through the input.
func (u *useCase) Run(ctx context.Context, names []string) (domain.SeriesStanding, error) {
	if err := u.seatPlayers(ctx, names); err != nil {
		return domain.SeriesStanding{}, errors.WithMessage(err, "seat players")
	}
	for {
		for _, player := range u.players {
			player.ResetBoard()
		}
		u.status = domain.Active
		state, err := u.match.Play(ctx, u.players)
		if err != nil {
			return domain.SeriesStanding{}, errors.WithMessagef(err, "play match %d", u.rounds+1)
		}
		u.rounds++
		u.status = state.Status
		u.logger.Info("round over",
			zap.Int("round", u.rounds),
			zap.Ints("wins", []int{u.players[0].Wins(), u.players[1].Wins()}),
		)
		again, err := u.input.ConfirmReplay(ctx)
		if err != nil {
			return domain.SeriesStanding{}, errors.WithMessage(err, "confirm replay")
		}
		if !again {
			break
		}
	}
	u.status = domain.SessionEnded
	standing := domain.DetermineSeries(u.players[0], u.players[1])
	if standing.Outcome == domain.SeriesSuppressed {
		return standing, nil
	}
	if err := u.renderer.Announce(domain.NewSeriesFinishedEvent(standing)); err != nil {
		return standing, errors.WithMessage(err, "announce series result")
	}
	return standing, nil
}

func (u *useCase) seatPlayers(ctx context.Context, names []string) error {
	for seat := range u.players {
		name := ""
		if seat < len(names) {
			name = strings.TrimSpace(names[seat])
		}
		for name == "" {
			provided, err := u.input.PlayerName(ctx, seat+1)
			if err != nil {
				return errors.WithMessagef(err, "name of player %d", seat+1)
			}
			name = strings.TrimSpace(provided)
		}
		u.players[seat] = domain.NewPlayer(u.nameFormat.Apply(name))
	}
	u.logger.Info("players seated", zap.Strings("players", []string{u.players[0].Name(), u.players[1].Name()}))
	return nil
}

func (u *useCase) Players() [seats]*domain.Player {
	return u.players
}

func (u *useCase) Status() domain.MatchStatus {
	return u.status
}

func (u *useCase) Rounds() int {
	return u.rounds
}
