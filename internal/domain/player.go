package domain

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

type Player struct {
	name          string
	grid          Grid
	columnScores  [ColumnCount]int
	wins          int
	currentColumn ColumnIndex
}

func NewPlayer(name string) *Player {
	return &Player{name: name}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Grid() Grid {
	return p.grid
}

func (p *Player) ColumnScores() [ColumnCount]int {
	return p.columnScores
}

// Score is always the sum of the column scores.
func (p *Player) Score() int {
	return sum(p.columnScores[:])
}

func (p *Player) Wins() int {
	return p.wins
}

func (p *Player) IncrementWins() {
	p.wins++
}

// CurrentColumn is the column targeted by the player's last placement.
func (p *Player) CurrentColumn() ColumnIndex {
	return p.currentColumn
}

func (p *Player) IsColumnFull(column ColumnIndex) bool {
	if !column.Valid() {
		return false
	}
	return p.grid[column].IsFull()
}

func (p *Player) IsGridFull() bool {
	return p.grid.IsFull()
}

// Place pushes dieValue onto the column. A full column is rejected with
// ErrInvalidMove and the player is left untouched.
func (p *Player) Place(dieValue int, column ColumnIndex) error {
	if !column.Valid() {
		return errors.WithMessagef(ErrInvalidColumn, "column %d", column)
	}
	if !validDieValue(dieValue) {
		return errors.WithMessagef(ErrInvalidDieValue, "die value %d", dieValue)
	}
	updated, err := p.grid[column].place(dieValue)
	if err != nil {
		return errors.WithMessagef(err, "place %d in %s column", dieValue, column)
	}
	p.grid[column] = updated
	p.currentColumn = column
	p.updateColumnScore(column)
	return nil
}

// RemoveMatching drops every die equal to dieValue from the column and
// returns how many were removed.
func (p *Player) RemoveMatching(dieValue int, column ColumnIndex) (int, error) {
	if !column.Valid() {
		return 0, errors.WithMessagef(ErrInvalidColumn, "column %d", column)
	}
	updated, removed := p.grid[column].removeMatching(dieValue)
	if removed == 0 {
		return 0, nil
	}
	p.grid[column] = updated
	p.updateColumnScore(column)
	return removed, nil
}

func (p *Player) updateColumnScore(column ColumnIndex) {
	p.columnScores[column] = ComputeColumnScore(p.grid[column])
}

// ResetBoard empties the grid for a new match. Name and wins are kept.
func (p *Player) ResetBoard() {
	p.grid = Grid{}
	p.columnScores = [ColumnCount]int{}
	p.currentColumn = Left
}

func (p *Player) View() PlayerView {
	return PlayerView{
		Name:         p.name,
		Grid:         p.grid,
		ColumnScores: p.columnScores,
		Score:        p.Score(),
		Wins:         p.wins,
	}
}

type NameFormat struct {
	MaxLength int
	Ellipsis  string
}

// Apply truncates names longer than MaxLength so that the result, ellipsis
// included, is exactly MaxLength runes long.
func (f NameFormat) Apply(name string) string {
	if f.MaxLength <= 0 || utf8.RuneCountInString(name) <= f.MaxLength {
		return name
	}
	keep := f.MaxLength - utf8.RuneCountInString(f.Ellipsis)
	if keep < 0 {
		keep = 0
	}
	return string([]rune(name)[:keep]) + f.Ellipsis
}
