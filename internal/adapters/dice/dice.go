package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/kiryu-dev/knucklebones/internal/domain"
	"github.com/pkg/errors"
)

type dice struct {
	rng *rand.Rand
}

// New returns a six-sided die. The same seed always yields the same rolls
// and turn orders.
func New(seed uint64) *dice {
	return &dice{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewSeed reads a seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.WithMessage(err, "read random seed")
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func (d *dice) Roll() int {
	return domain.MinDieValue + d.rng.IntN(domain.MaxDieValue-domain.MinDieValue+1)
}

func (d *dice) Shuffle(players [2]*domain.Player) [2]*domain.Player {
	if d.rng.IntN(2) == 1 {
		players[0], players[1] = players[1], players[0]
	}
	return players
}
