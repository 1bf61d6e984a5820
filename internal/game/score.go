package game

// HighScoreStore persists the best score across sessions. Implementations
// treat an unreadable record as 0 rather than failing.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// ScoreKeeper tracks the current and all-time-high score. Each obstacle
// awards exactly one point the first time the player's horizontal position
// passes its trailing edge.
type ScoreKeeper struct {
	current int
	high    int
	store   HighScoreStore
}

// NewScoreKeeper loads the persisted high score. A nil store or a load
// error degrades to a high score of 0.
func NewScoreKeeper(store HighScoreStore) *ScoreKeeper {
	k := &ScoreKeeper{store: store}
	if store != nil {
		if high, err := store.LoadHighScore(); err == nil && high > 0 {
			k.high = high
		}
	}
	return k
}

// MaybeScore awards a point if the player has just passed the obstacle's
// trailing edge. The Scored flag guarantees at-most-once per obstacle.
func (k *ScoreKeeper) MaybeScore(playerX float64, ob *Obstacle, obstacleWidth float64) bool {
	if ob.Scored || playerX <= ob.X+obstacleWidth {
		return false
	}
	ob.Scored = true
	k.current++
	return true
}

// RecordIfHigh persists the current score as the new high score if it beats
// the old one. Called at the moment of scoring and at the moment of
// collision; the save is best-effort.
func (k *ScoreKeeper) RecordIfHigh() {
	if k.current <= k.high {
		return
	}
	k.high = k.current
	if k.store != nil {
		_ = k.store.SaveHighScore(k.high)
	}
}

// ResetCurrent zeroes the current score for a new run, keeping the high.
func (k *ScoreKeeper) ResetCurrent() {
	k.current = 0
}

// Current returns the score of the run in progress.
func (k *ScoreKeeper) Current() int {
	return k.current
}

// High returns the best score seen across sessions.
func (k *ScoreKeeper) High() int {
	return k.high
}
