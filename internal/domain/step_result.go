package domain

type StepKind int

const (
	StepNone StepKind = iota
	StepMoved
	StepAte
	StepDied
	// StepLifeLost is a fatal collision absorbed by a spare life.
	StepLifeLost
)

func (k StepKind) String() string {
	switch k {
	case StepMoved:
		return "moved"
	case StepAte:
		return "ate"
	case StepDied:
		return "died"
	case StepLifeLost:
		return "life-lost"
	}
	return "none"
}

type StepResult struct {
	Kind            StepKind
	AlreadyTerminal bool
	Outcome         *GameOutcome
}

type DeathReason int

const (
	ReasonNone DeathReason = iota
	ReasonWall
	ReasonSelf
	ReasonTimeUp
	ReasonBoardFull
)

func (r DeathReason) String() string {
	switch r {
	case ReasonWall:
		return "hit the wall"
	case ReasonSelf:
		return "ran into itself"
	case ReasonTimeUp:
		return "time is up"
	case ReasonBoardFull:
		return "filled the board"
	}
	return "none"
}

// GameOutcome is produced once, on the transition to StateDead.
type GameOutcome struct {
	FinalScore int
	Reason     DeathReason
	Won        bool
	Length     int
	Ticks      int
}
