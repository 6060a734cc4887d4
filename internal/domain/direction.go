package domain

type Direction int

const (
	DirectionNone  Direction = 0
	DirectionUp    Direction = 1
	DirectionDown  Direction = 2
	DirectionLeft  Direction = 3
	DirectionRight Direction = 4
)

func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionRight
}

func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return DirectionNone
}

func (d Direction) Delta() Cell {
	switch d {
	case DirectionUp:
		return Cell{0, -1}
	case DirectionDown:
		return Cell{0, 1}
	case DirectionLeft:
		return Cell{-1, 0}
	case DirectionRight:
		return Cell{1, 0}
	}
	return Cell{}
}

func (d Direction) IsOpposite(other Direction) bool {
	return d.Valid() && d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "none"
}
