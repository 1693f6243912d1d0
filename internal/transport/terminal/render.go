package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kiryu-dev/knucklebones/internal/domain"
	"github.com/pkg/errors"
)

const (
	clearScreen = "\033[H\033[J"

	bannerWidth      = 100
	separatorWidth   = 99
	scoreboardWidth  = 30
	scoreboardIndent = 4
	scoreboardRow    = 1
	columnDivider    = " * "

	earlyQuitMsg      = "Game ended early after pressing 'Q'!"
	columnRejectedMsg = "Select a different column; the column you selected is full!"
)

var errUnexpectedPayload = errors.New("unexpected event payload")

type textRenderer struct {
	out         io.Writer
	clearScreen bool
}

func NewTextRenderer(w io.Writer, clearScreen bool) *textRenderer {
	return &textRenderer{
		out:         w,
		clearScreen: clearScreen,
	}
}

// ShowBoard draws player one's grid top-down and player two's mirrored below
// it, so both stacks grow towards the separator.
func (r *textRenderer) ShowBoard(board domain.BoardView) error {
	var sb strings.Builder
	if r.clearScreen {
		sb.WriteString(clearScreen)
	}
	writeGrid(&sb, board.Players[0], false)
	fmt.Fprintf(&sb, "\n%s\n\n", strings.Repeat("=", separatorWidth))
	writeGrid(&sb, board.Players[1], true)
	if _, err := io.WriteString(r.out, sb.String()); err != nil {
		return errors.WithMessage(err, "write board")
	}
	return nil
}

func writeGrid(sb *strings.Builder, player domain.PlayerView, mirrored bool) {
	for row := 0; row < domain.ColumnSize; row++ {
		slot := row
		if mirrored {
			slot = domain.ColumnSize - row - 1
		}
		for line := 0; line < glyphHeight; line++ {
			board, filler := scoreboardLine(player, row, line)
			left, right := board, filler
			if mirrored {
				left, right = filler, board
			}
			sb.WriteString(left)
			for col, column := range player.Grid {
				if col > 0 {
					sb.WriteString(columnDivider)
				}
				sb.WriteString(Glyph(column[slot])[line])
			}
			sb.WriteString(right)
			sb.WriteByte('\n')
		}
	}
}

// scoreboardLine returns the scoreboard segment for a line of the board and
// the plain filler drawn on the other side.
func scoreboardLine(player domain.PlayerView, row, line int) (string, string) {
	filler := strings.Repeat("*", scoreboardWidth)
	if row != scoreboardRow {
		return filler, filler
	}
	switch line {
	case 1:
		return scoreboardField(strings.ToUpper(player.Name)), filler
	case 2:
		return scoreboardField(strconv.Itoa(player.Score)), filler
	default:
		return "*" + strings.Repeat(" ", scoreboardWidth-2) + "*", filler
	}
}

func scoreboardField(text string) string {
	padding := scoreboardWidth - utf8.RuneCountInString(text) - scoreboardIndent
	if padding < 0 {
		padding = 0
	}
	return "*  " + text + strings.Repeat(" ", padding) + "*"
}

// Banner frames a message between dashed lines, upper-cased and padded with
// stars on both sides.
func Banner(message string) string {
	width := bannerWidth
	length := utf8.RuneCountInString(message)
	wrap := (width - length - 2) / 2
	if wrap < 0 {
		wrap = 0
	}
	if length%2 != 0 {
		width--
	}
	stars := strings.Repeat("*", wrap)
	dashes := strings.Repeat("-", width)
	return fmt.Sprintf("%s\n%s %s %s\n%s\n\n", dashes, stars, strings.ToUpper(message), stars, dashes)
}

func (r *textRenderer) Announce(event domain.Event) error {
	if event.Type == domain.BoardUpdated {
		board, ok := event.Payload.(domain.BoardView)
		if !ok {
			return errors.WithMessagef(errUnexpectedPayload, "render %s event", event.Type)
		}
		return r.ShowBoard(board)
	}
	text, err := eventText(event)
	if err != nil {
		return errors.WithMessagef(err, "render %s event", event.Type)
	}
	if _, err := io.WriteString(r.out, text); err != nil {
		return errors.WithMessage(err, "write event")
	}
	return nil
}

func eventText(event domain.Event) (string, error) {
	switch event.Type {
	case domain.FirstPlayerChosen:
		p, ok := event.Payload.(domain.FirstPlayerPayload)
		if !ok {
			return "", errUnexpectedPayload
		}
		return Banner(p.Player + " will go first!"), nil
	case domain.DieRolled:
		p, ok := event.Payload.(domain.DieRolledPayload)
		if !ok {
			return "", errUnexpectedPayload
		}
		return Banner(fmt.Sprintf("%s rolled a %d!", p.Player, p.Value)), nil
	case domain.ColumnRejected:
		return columnRejectedMsg + "\n", nil
	case domain.MatchFinished:
		p, ok := event.Payload.(*domain.MatchFinishedPayload)
		if !ok {
			return "", errUnexpectedPayload
		}
		if p.Winner == nil {
			return Banner("The game was a draw! Wow!"), nil
		}
		return Banner(fmt.Sprintf("%s was the winner! The score was %d to %d",
			*p.Winner, p.Scores[0], p.Scores[1])), nil
	case domain.SeriesFinished:
		p, ok := event.Payload.(*domain.SeriesFinishedPayload)
		if !ok {
			return "", errUnexpectedPayload
		}
		if p.Leader == nil {
			return Banner("Both players won an equal number of games! Wow!"), nil
		}
		return Banner(fmt.Sprintf("%s won more rounds! The round totals were %d to %d",
			*p.Leader, p.Wins[0], p.Wins[1])), nil
	case domain.EarlyQuit:
		return "\n" + earlyQuitMsg + "\n", nil
	default:
		return "", errors.Errorf("unknown event type %d", event.Type)
	}
}
