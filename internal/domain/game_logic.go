package domain

// Step advances the session by exactly one tick.
func (e *Engine) Step() StepResult {
	if e.state != StateRunning {
		return StepResult{AlreadyTerminal: true}
	}

	e.expirePowerUp()

	if e.cfg.TimeLimitMs > 0 && e.elapsedMs >= e.cfg.TimeLimitMs {
		return e.die(ReasonTimeUp)
	}

	e.ticks++
	e.elapsedMs += e.TickIntervalMs()

	e.direction = e.pending

	newHead, inside := e.field.Advance(e.snake.Head(), e.direction)
	if !inside {
		if !e.invincible() {
			return e.collide(ReasonWall)
		}
		newHead = e.field.Normalize(newHead)
	}

	willEat := newHead.Equals(e.food.Cell)

	// A growing snake keeps its tail this tick, so the tail only counts as
	// free when not eating.
	if e.snake.Occupies(newHead, !willEat) {
		return e.collide(ReasonSelf)
	}

	e.snake.Advance(newHead, willEat)

	if !willEat {
		e.emit(Event{Type: EventMoved, Payload: MovedPayload{Head: newHead}})
		return StepResult{Kind: StepMoved}
	}
	return e.eat()
}

func (e *Engine) eat() StepResult {
	eaten := e.food
	points := e.cfg.FoodValue
	if e.powerUp != nil && e.powerUp.rule.ScoreMultiplier > 1 {
		points *= e.powerUp.rule.ScoreMultiplier
	}

	e.score += points
	e.eaten++

	e.emit(Event{
		Type: EventAte,
		Payload: AtePayload{
			Food:   eaten,
			Points: points,
			Score:  e.score,
			Length: e.snake.Len(),
		},
	})

	intervalBefore := e.TickIntervalMs()

	if e.cfg.SpeedRampPerFood > 0 {
		e.speedMult += e.cfg.SpeedRampPerFood
		if e.speedMult > e.cfg.SpeedRampMax {
			e.speedMult = e.cfg.SpeedRampMax
		}
	}

	if rule, ok := e.cfg.PowerUps[eaten.Kind]; ok && eaten.Kind != FoodRegular {
		e.powerUp = &activePowerUp{
			kind:    eaten.Kind,
			rule:    rule,
			untilMs: e.elapsedMs + rule.DurationMs,
		}
		e.emit(Event{Type: EventPowerUp, Payload: PowerUpPayload{Kind: eaten.Kind, DurationMs: rule.DurationMs}})
	}

	if interval := e.TickIntervalMs(); interval != intervalBefore {
		e.emit(Event{Type: EventSpeedChanged, Payload: SpeedPayload{TickIntervalMs: interval}})
	}

	if e.cfg.LevelEvery > 0 && e.eaten%e.cfg.LevelEvery == 0 {
		e.emit(Event{Type: EventLevelMilestone, Payload: LevelPayload{Level: e.Level()}})
	}

	food, ok := e.spawnFood()
	if !ok {
		return e.die(ReasonBoardFull)
	}
	e.food = food

	return StepResult{Kind: StepAte}
}

// collide spends a spare life if there is one, otherwise ends the session.
func (e *Engine) collide(reason DeathReason) StepResult {
	if e.lives <= 1 {
		e.lives = 0
		return e.die(reason)
	}

	e.lives--
	e.snake = NewSnake(e.field.Center(), e.cfg.InitialLength, DirectionRight)
	e.direction = DirectionRight
	e.pending = DirectionRight

	if e.snake.Occupies(e.food.Cell, false) {
		food, ok := e.spawnFood()
		if !ok {
			return e.die(ReasonBoardFull)
		}
		e.food = food
	}

	e.emit(Event{Type: EventLifeLost, Payload: LifeLostPayload{Reason: reason, LivesLeft: e.lives}})
	return StepResult{Kind: StepLifeLost}
}

func (e *Engine) die(reason DeathReason) StepResult {
	e.state = StateDead

	outcome := GameOutcome{
		FinalScore: e.score,
		Reason:     reason,
		Won:        reason == ReasonBoardFull,
		Length:     e.snake.Len(),
		Ticks:      e.ticks,
	}
	e.outcome = &outcome

	e.emit(Event{Type: EventDied, Payload: outcome})

	result := outcome
	return StepResult{Kind: StepDied, Outcome: &result}
}

func (e *Engine) expirePowerUp() {
	if e.powerUp == nil || e.elapsedMs < e.powerUp.untilMs {
		return
	}

	kind := e.powerUp.kind
	e.powerUp = nil
	e.emit(Event{Type: EventPowerUpExpired, Payload: PowerUpPayload{Kind: kind}})
	e.emit(Event{Type: EventSpeedChanged, Payload: SpeedPayload{TickIntervalMs: e.TickIntervalMs()}})
}
