package domain

type EventType int

const (
	EventMoved EventType = iota
	EventAte
	EventDied
	EventLevelMilestone
	EventLifeLost
	EventPowerUp
	EventPowerUpExpired
	EventSpeedChanged
)

func (t EventType) String() string {
	switch t {
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventDied:
		return "died"
	case EventLevelMilestone:
		return "level"
	case EventLifeLost:
		return "life-lost"
	case EventPowerUp:
		return "power-up"
	case EventPowerUpExpired:
		return "power-up-expired"
	case EventSpeedChanged:
		return "speed-changed"
	}
	return "unknown"
}

// Event is delivered synchronously to listeners from inside Step.
// Payload types: MovedPayload, AtePayload, GameOutcome, LevelPayload,
// LifeLostPayload, PowerUpPayload, SpeedPayload.
type Event struct {
	Type    EventType
	Payload interface{}
}

type Listener func(Event)

type MovedPayload struct {
	Head Cell
}

type AtePayload struct {
	Food   Food
	Points int
	Score  int
	Length int
}

type LevelPayload struct {
	Level int
}

type LifeLostPayload struct {
	Reason    DeathReason
	LivesLeft int
}

type PowerUpPayload struct {
	Kind       FoodKind
	DurationMs float64
}

type SpeedPayload struct {
	TickIntervalMs float64
}
