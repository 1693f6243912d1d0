package dice

import (
	"testing"

	"github.com/kiryu-dev/knucklebones/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDice_Roll(t *testing.T) {
	d := New(42)
	seen := make(map[int]int)
	for i := 0; i < 6000; i++ {
		v := d.Roll()
		require.GreaterOrEqual(t, v, domain.MinDieValue)
		require.LessOrEqual(t, v, domain.MaxDieValue)
		seen[v]++
	}
	// every face shows up with a sane frequency
	require.Len(t, seen, 6)
	for face, count := range seen {
		assert.Greater(t, count, 800, "face %d", face)
	}
}

func TestDice_SameSeedSameGame(t *testing.T) {
	lhs, rhs := New(2024), New(2024)
	players := [2]*domain.Player{domain.NewPlayer("a"), domain.NewPlayer("b")}
	for i := 0; i < 50; i++ {
		require.Equal(t, lhs.Roll(), rhs.Roll())
		require.Equal(t, lhs.Shuffle(players), rhs.Shuffle(players))
	}
}

func TestDice_Shuffle(t *testing.T) {
	d := New(1)
	a, b := domain.NewPlayer("a"), domain.NewPlayer("b")
	firsts := make(map[*domain.Player]int)
	for i := 0; i < 1000; i++ {
		order := d.Shuffle([2]*domain.Player{a, b})
		require.NotSame(t, order[0], order[1])
		firsts[order[0]]++
	}
	assert.Greater(t, firsts[a], 400)
	assert.Greater(t, firsts[b], 400)
}

func TestNewSeed(t *testing.T) {
	seed, err := NewSeed()
	require.NoError(t, err)
	other, err := NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, seed, other)
}
