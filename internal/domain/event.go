package domain

import (
	"github.com/pkg/errors"
)

type eventType byte

const (
	BoardUpdated = eventType(iota)
	FirstPlayerChosen
	DieRolled
	ColumnRejected
	MatchFinished
	SeriesFinished
	EarlyQuit
)

var eventNames = map[eventType]string{
	BoardUpdated:      "board_updated",
	FirstPlayerChosen: "first_player_chosen",
	DieRolled:         "die_rolled",
	ColumnRejected:    "column_rejected",
	MatchFinished:     "match_finished",
	SeriesFinished:    "series_finished",
	EarlyQuit:         "early_quit",
}

func (t eventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

func (t eventType) MarshalText() ([]byte, error) {
	if _, ok := eventNames[t]; !ok {
		return nil, errors.Errorf("unknown event type %d", t)
	}
	return []byte(t.String()), nil
}

type Event struct {
	Type    eventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

type PlayerView struct {
	Name         string           `json:"name"`
	Grid         Grid             `json:"grid"`
	ColumnScores [ColumnCount]int `json:"column_scores"`
	Score        int              `json:"score"`
	Wins         int              `json:"wins"`
}

type BoardView struct {
	MatchUuid       string        `json:"match_uuid"`
	Players         [2]PlayerView `json:"players"`
	CurrentDieValue int           `json:"current_die_value,omitempty"`
}

type FirstPlayerPayload struct {
	Player string `json:"player"`
}

type DieRolledPayload struct {
	Player string `json:"player"`
	Value  int    `json:"value"`
}

type ColumnRejectedPayload struct {
	Player string      `json:"player"`
	Column ColumnIndex `json:"column"`
}

type MatchFinishedPayload struct {
	MatchUuid string    `json:"match_uuid"`
	Names     [2]string `json:"names"`
	Scores    [2]int    `json:"scores"`
	Winner    *string   `json:"winner,omitempty"`
}

type SeriesFinishedPayload struct {
	Names  [2]string `json:"names"`
	Wins   [2]int    `json:"wins"`
	Leader *string   `json:"leader,omitempty"`
}

type MatchFinishedPayloadOption func(p *MatchFinishedPayload)

func WithWinner(name string) MatchFinishedPayloadOption {
	return func(p *MatchFinishedPayload) {
		p.Winner = &name
	}
}

func NewMatchFinishedEvent(state *MatchState, opts ...MatchFinishedPayloadOption) Event {
	payload := &MatchFinishedPayload{
		MatchUuid: state.Uuid,
		Names:     [2]string{state.Players[0].Name(), state.Players[1].Name()},
		Scores:    [2]int{state.Players[0].Score(), state.Players[1].Score()},
	}
	for _, opt := range opts {
		opt(payload)
	}
	return Event{Type: MatchFinished, Payload: payload}
}

func NewSeriesFinishedEvent(standing SeriesStanding) Event {
	payload := &SeriesFinishedPayload{
		Names: [2]string{standing.Players[0].Name(), standing.Players[1].Name()},
		Wins:  [2]int{standing.Players[0].Wins(), standing.Players[1].Wins()},
	}
	if standing.Leader != nil {
		leader := standing.Leader.Name()
		payload.Leader = &leader
	}
	return Event{Type: SeriesFinished, Payload: payload}
}
