package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"snake/internal/domain"
)

// TouchHandler follows the first finger down and feeds it to a SwipeDecoder.
type TouchHandler struct {
	decoder *SwipeDecoder
	touchID ebiten.TouchID
	active  bool
	ids     []ebiten.TouchID
}

func NewTouchHandler() *TouchHandler {
	return &TouchHandler{decoder: NewSwipeDecoder()}
}

func (th *TouchHandler) Update() domain.Direction {
	if th.active && inpututil.IsTouchJustReleased(th.touchID) {
		th.active = false
		th.decoder.End()
	}

	if !th.active {
		th.ids = inpututil.AppendJustPressedTouchIDs(th.ids[:0])
		if len(th.ids) == 0 {
			return domain.DirectionNone
		}
		th.touchID = th.ids[0]
		th.active = true
		x, y := ebiten.TouchPosition(th.touchID)
		th.decoder.Begin(float64(x), float64(y))
		return domain.DirectionNone
	}

	x, y := ebiten.TouchPosition(th.touchID)
	if dir, ok := th.decoder.Move(float64(x), float64(y)); ok {
		return dir
	}
	return domain.DirectionNone
}

func (th *TouchHandler) Unlock() {
	th.decoder.Unlock()
}

func (th *TouchHandler) Reset() {
	th.active = false
	th.decoder.Reset()
}
