package domain

// Snake is the ordered body, head first.
type Snake struct {
	Body []Cell
}

// NewSnake lays out length contiguous cells starting at head and trailing
// away from the heading direction.
func NewSnake(head Cell, length int, heading Direction) *Snake {
	if length < 1 {
		length = 1
	}

	back := heading.Opposite().Delta()
	body := make([]Cell, 0, length)
	current := head
	for i := 0; i < length; i++ {
		body = append(body, current)
		current = current.Add(back)
	}
	return &Snake{Body: body}
}

func (s *Snake) Head() Cell {
	if len(s.Body) == 0 {
		return Cell{}
	}
	return s.Body[0]
}

func (s *Snake) Tail() Cell {
	if len(s.Body) == 0 {
		return Cell{}
	}
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether c is part of the body. With excludeTail the last
// segment is skipped, since it is vacated by a non-growing move.
func (s *Snake) Occupies(c Cell, excludeTail bool) bool {
	n := len(s.Body)
	if excludeTail {
		n--
	}
	for i := 0; i < n; i++ {
		if s.Body[i].Equals(c) {
			return true
		}
	}
	return false
}

// Advance prepends the new head and drops the tail unless grow is set.
func (s *Snake) Advance(newHead Cell, grow bool) {
	if grow {
		s.Body = append(s.Body, Cell{})
	}
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}

func (s *Snake) Cells() []Cell {
	result := make([]Cell, len(s.Body))
	copy(result, s.Body)
	return result
}

func (s *Snake) OccupiedCells() map[Cell]bool {
	occupied := make(map[Cell]bool, len(s.Body))
	for _, cell := range s.Body {
		occupied[cell] = true
	}
	return occupied
}
