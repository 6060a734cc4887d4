package app

import (
	"fmt"

	"snake/internal/domain"
	"snake/internal/storage"
)

// BestScoreKeeper tracks the best final score across sessions.
type BestScoreKeeper struct {
	store storage.Store
	best  int
}

func NewBestScoreKeeper(store storage.Store) *BestScoreKeeper {
	k := &BestScoreKeeper{store: store}
	if v, ok := storage.GetInt(store, keyBestScore); ok && v > 0 {
		k.best = int(v)
	}
	return k
}

func (k *BestScoreKeeper) Best() int {
	return k.best
}

// Record stores score when it beats the best and reports whether it did.
func (k *BestScoreKeeper) Record(score int) (bool, error) {
	if score <= k.best {
		return false, nil
	}
	k.best = score
	if err := storage.SetInt(k.store, keyBestScore, int64(score)); err != nil {
		return true, fmt.Errorf("failed to save best score: %w", err)
	}
	return true, nil
}

// Listener records the final score of every finished session.
func (k *BestScoreKeeper) Listener(onRecord func(score int, newBest bool, err error)) domain.Listener {
	return func(event domain.Event) {
		if event.Type != domain.EventDied {
			return
		}
		outcome, ok := event.Payload.(domain.GameOutcome)
		if !ok {
			return
		}
		newBest, err := k.Record(outcome.FinalScore)
		if onRecord != nil {
			onRecord(outcome.FinalScore, newBest, err)
		}
	}
}
