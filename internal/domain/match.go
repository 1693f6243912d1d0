package domain

import (
	"context"
)

type MatchStatus byte

const (
	NotStarted = MatchStatus(iota)
	Active
	Finished
	SessionEnded
)

func (s MatchStatus) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Active:
		return "active"
	case Finished:
		return "finished"
	case SessionEnded:
		return "session ended"
	default:
		return "unknown"
	}
}

type MatchState struct {
	Uuid string
	// Players keeps seat order (player one, player two); Order is the turn order.
	Players         [2]*Player
	Order           [2]*Player
	Status          MatchStatus
	CurrentDieValue int
	Winner          *Player
}

func NewMatchState(uuid string, players [2]*Player) *MatchState {
	return &MatchState{
		Uuid:    uuid,
		Players: players,
		Order:   players,
		Status:  NotStarted,
	}
}

func (s *MatchState) Active() bool {
	return s.Status == Active
}

func (s *MatchState) Draw() bool {
	return s.Status == Finished && s.Winner == nil
}

func (s *MatchState) View() BoardView {
	return BoardView{
		MatchUuid:       s.Uuid,
		Players:         [2]PlayerView{s.Players[0].View(), s.Players[1].View()},
		CurrentDieValue: s.CurrentDieValue,
	}
}

// DetermineWinner returns the player with the higher score, or nil on a tie.
func DetermineWinner(lhs, rhs *Player) *Player {
	switch {
	case lhs.Score() > rhs.Score():
		return lhs
	case rhs.Score() > lhs.Score():
		return rhs
	default:
		return nil
	}
}

type SeriesOutcome byte

const (
	SeriesSuppressed = SeriesOutcome(iota)
	SeriesTie
	SeriesDecided
)

type SeriesStanding struct {
	Outcome SeriesOutcome
	Leader  *Player
	Players [2]*Player
}

// DetermineSeries compares session wins. Equal wins is a tie even when only
// draws were played; a single decided match has nothing to report.
func DetermineSeries(lhs, rhs *Player) SeriesStanding {
	standing := SeriesStanding{Players: [2]*Player{lhs, rhs}}
	switch {
	case lhs.Wins() == rhs.Wins():
		standing.Outcome = SeriesTie
	case lhs.Wins()+rhs.Wins() == 1:
		standing.Outcome = SeriesSuppressed
	case lhs.Wins() > rhs.Wins():
		standing.Outcome = SeriesDecided
		standing.Leader = lhs
	default:
		standing.Outcome = SeriesDecided
		standing.Leader = rhs
	}
	return standing
}

type Dice interface {
	// Roll returns a value in [MinDieValue, MaxDieValue].
	Roll() int
	Shuffle(players [2]*Player) [2]*Player
}

// Input returns ErrCancelled from any prompt once the user asks to quit.
type Input interface {
	AwaitRoll(ctx context.Context, player string) error
	ChooseColumn(ctx context.Context, player string) (ColumnIndex, error)
	PlayerName(ctx context.Context, seat int) (string, error)
	ConfirmReplay(ctx context.Context) (bool, error)
}

type Renderer interface {
	ShowBoard(board BoardView) error
	Announce(event Event) error
}

type MatchUseCase interface {
	Play(ctx context.Context, players [2]*Player) (*MatchState, error)
}
