package grid

import (
	"fmt"
	"strings"
)

// Cell is a grid coordinate and the search state of the robot.
type Cell struct {
	Row, Col int
}

// C is shorthand for Cell{Row: row, Col: col}.
func C(row, col int) Cell { return Cell{Row: row, Col: col} }

// Less orders cells by row, then by column.
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Move returns the cell reached by applying a's delta. It performs no bounds check.
func (c Cell) Move(a Action) Cell {
	d := a.Delta()
	return Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |Δrow| + |Δcol|.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// CellKind marks a cell as traversable or not.
type CellKind uint8

const (
	// Free cells can be entered.
	Free CellKind = iota
	// Blocked cells are walls.
	Blocked
)

// Action is a movement label.
type Action string

// The four movements. Up and Down move along rows, Left and Right along columns.
const (
	Up    Action = "up"
	Down  Action = "down"
	Left  Action = "left"
	Right Action = "right"
)

// actionOrder is the canonical enumeration order used by every expansion.
var actionOrder = [...]Action{Up, Down, Left, Right}

// Actions returns the four actions in canonical order.
func Actions() []Action {
	out := make([]Action, len(actionOrder))
	copy(out, actionOrder[:])
	return out
}

// ParseAction accepts a label in any letter case.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	return a, nil
}

// Valid reports whether a is one of the four movements.
func (a Action) Valid() bool {
	switch a {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Delta returns the (row, col) offset of a; zero for an invalid action.
func (a Action) Delta() [2]int {
	switch a {
	case Up:
		return [2]int{-1, 0}
	case Down:
		return [2]int{1, 0}
	case Left:
		return [2]int{0, -1}
	case Right:
		return [2]int{0, 1}
	}
	return [2]int{0, 0}
}

// Mirror returns the opposite movement (up↔down, left↔right).
// Invalid actions mirror to themselves.
func (a Action) Mirror() Action {
	switch a {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return a
}

// Title returns the label with its first letter upper-cased, e.g. "Down".
func (a Action) Title() string {
	if a == "" {
		return ""
	}
	s := string(a)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Block is a rectangular obstacle. X is the left column and Y the top row,
// matching the (x,y,width,height) records of the navigation map format.
type Block struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Cells lists the cells covered by b in row-major order.
func (b Block) Cells() []Cell {
	if b.Width <= 0 || b.Height <= 0 {
		return nil
	}
	out := make([]Cell, 0, b.Width*b.Height)
	for r := b.Y; r < b.Y+b.Height; r++ {
		for c := b.X; c < b.X+b.Width; c++ {
			out = append(out, Cell{Row: r, Col: c})
		}
	}
	return out
}

// Option configures NewGrid.
type Option func(*gridOptions)

type gridOptions struct {
	blocks []Block
	cells  []Cell
}

// WithBlock adds a rectangular obstacle.
func WithBlock(b Block) Option {
	return func(o *gridOptions) { o.blocks = append(o.blocks, b) }
}

// WithBlocks adds several rectangular obstacles.
func WithBlocks(bs ...Block) Option {
	return func(o *gridOptions) { o.blocks = append(o.blocks, bs...) }
}

// WithBlockedCells marks individual cells as walls.
func WithBlockedCells(cs ...Cell) Option {
	return func(o *gridOptions) { o.cells = append(o.cells, cs...) }
}
