package terminal

import (
	"io"

	"github.com/kiryu-dev/knucklebones/internal/domain"
	"github.com/kiryu-dev/knucklebones/pkg/utils"
)

type jsonRenderer struct {
	out io.Writer
}

// NewJsonRenderer writes every board and event as one JSON object per line.
func NewJsonRenderer(w io.Writer) *jsonRenderer {
	return &jsonRenderer{out: w}
}

func (r *jsonRenderer) ShowBoard(board domain.BoardView) error {
	return r.Announce(domain.Event{Type: domain.BoardUpdated, Payload: board})
}

func (r *jsonRenderer) Announce(event domain.Event) error {
	return utils.WriteJsonLine(r.out, event)
}
