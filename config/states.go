package config

// StateID is the player's animation state
type StateID int

const (
	Idle StateID = iota
	Walking
	Jumping
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walking:
		return "walking"
	case Jumping:
		return "jumping"
	default:
		return "unknown"
	}
}

// Outcome is what completing the current level means for the session
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLevelComplete
	OutcomeGameComplete
)
