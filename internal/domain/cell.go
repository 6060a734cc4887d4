package domain

import "fmt"

// Cell is a grid position. Column grows to the right, row grows downward.
type Cell struct {
	X int
	Y int
}

func (c Cell) Add(other Cell) Cell {
	return Cell{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

func (c Cell) Equals(other Cell) bool {
	return c.X == other.X && c.Y == other.Y
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
