package domain

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidMove           = errors.New("column is full")
	ErrInvalidColumnSelector = errors.New("invalid column selector")
	ErrInvalidColumn         = errors.New("column index out of range")
	ErrInvalidDieValue       = errors.New("die value out of range")
	ErrCancelled             = errors.New("cancelled")
)

const (
	ColumnCount = 3
	ColumnSize  = 3

	MinDieValue = 1
	MaxDieValue = 6

	emptySlot = 0
)

type ColumnIndex int

const (
	Left = ColumnIndex(iota)
	Middle
	Right
)

func (c ColumnIndex) Valid() bool {
	return c >= Left && c <= Right
}

func (c ColumnIndex) String() string {
	switch c {
	case Left:
		return "left"
	case Middle:
		return "middle"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseColumn maps the L/M/R selectors (any case) to a column index.
func ParseColumn(selector string) (ColumnIndex, error) {
	switch strings.ToUpper(strings.TrimSpace(selector)) {
	case "L":
		return Left, nil
	case "M":
		return Middle, nil
	case "R":
		return Right, nil
	default:
		return 0, errors.WithMessagef(ErrInvalidColumnSelector, "selector %q", selector)
	}
}

func validDieValue(v int) bool {
	return v >= MinDieValue && v <= MaxDieValue
}

// Column is a stack of dice. Empty slots (zeros) are always at the front,
// dice are packed at the back.
type Column [ColumnSize]int

func (c Column) IsFull() bool {
	for _, v := range c {
		if v == emptySlot {
			return false
		}
	}
	return true
}

func (c Column) place(dieValue int) (Column, error) {
	if c.IsFull() {
		return c, ErrInvalidMove
	}
	openIdx := 0
	for i, v := range c {
		if v != emptySlot {
			break
		}
		openIdx = i
	}
	c[openIdx] = dieValue
	return c, nil
}

func (c Column) removeMatching(dieValue int) (Column, int) {
	var (
		kept    Column
		idx     = len(kept) - 1
		removed = 0
	)
	for i := len(c) - 1; i >= 0; i-- {
		switch c[i] {
		case emptySlot:
			continue
		case dieValue:
			removed++
		default:
			kept[idx] = c[i]
			idx--
		}
	}
	return kept, removed
}

// ComputeColumnScore sums the column, multiplying a pair by 2 and a triple by 3
// before adding: [5 5 4] scores (5*2)*2+4, [6 6 6] scores (6*3)*3.
func ComputeColumnScore(c Column) int {
	sorted := c
	sort.Ints(sorted[:])
	var (
		matches    = 0
		matchValue = 0
	)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			matches++
			matchValue = sorted[i]
		}
	}
	if matches == 0 {
		return sum(sorted[:])
	}
	remainder := 0
	for _, v := range sorted {
		if v != matchValue {
			remainder += v
		}
	}
	count := matches + 1
	return (matchValue*count)*count + remainder
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

type Grid [ColumnCount]Column

// IsFull reports whether no column can take another die.
func (g Grid) IsFull() bool {
	for _, column := range g {
		if !column.IsFull() {
			return false
		}
	}
	return true
}
