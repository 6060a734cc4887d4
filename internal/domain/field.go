package domain

// BoundaryPolicy decides what happens when the head leaves the grid.
type BoundaryPolicy int

const (
	// BoundaryWrap maps out-of-range coordinates modulo the grid size.
	BoundaryWrap BoundaryPolicy = iota
	// BoundarySolid treats leaving the grid as a fatal collision.
	BoundarySolid
)

func (p BoundaryPolicy) String() string {
	if p == BoundarySolid {
		return "solid"
	}
	return "wrap"
}

// Field is a square grid of Size x Size cells.
type Field struct {
	Size   int
	Policy BoundaryPolicy
}

func NewField(size int, policy BoundaryPolicy) *Field {
	return &Field{
		Size:   size,
		Policy: policy,
	}
}

func (f *Field) Contains(c Cell) bool {
	return c.X >= 0 && c.X < f.Size && c.Y >= 0 && c.Y < f.Size
}

func (f *Field) Normalize(c Cell) Cell {
	x := c.X % f.Size
	if x < 0 {
		x += f.Size
	}
	y := c.Y % f.Size
	if y < 0 {
		y += f.Size
	}
	return Cell{X: x, Y: y}
}

// Advance moves c one cell in direction d. The boolean is false when the
// policy is solid and the move leaves the grid; the raw position is returned
// in that case.
func (f *Field) Advance(c Cell, d Direction) (Cell, bool) {
	next := c.Add(d.Delta())
	if f.Contains(next) {
		return next, true
	}
	if f.Policy == BoundaryWrap {
		return f.Normalize(next), true
	}
	return next, false
}

func (f *Field) Center() Cell {
	mid := f.Size / 2
	return Cell{X: mid, Y: mid}
}

func (f *Field) CellCount() int {
	return f.Size * f.Size
}
