package kick

// BallPhase is the aim/launch/flight state of the ball.
type BallPhase int

const (
	BallSetup    BallPhase = iota // Aiming; accepts adjustments and launch
	BallLaunched                  // In flight; aim frozen
	BallDone                      // Outcome decided; waits for reset
)

func (p BallPhase) String() string {
	switch p {
	case BallSetup:
		return "SETUP"
	case BallLaunched:
		return "LAUNCHED"
	case BallDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// GamePhase is the judging state of a round.
type GamePhase int

const (
	GameAdjusting GamePhase = iota // Idle until the ball is launched
	GameKicked                     // Judging every tick
	GameScored                     // Terminal for the round
	GameMissed                     // Terminal for the round
)

func (p GamePhase) String() string {
	switch p {
	case GameAdjusting:
		return "ADJUSTING"
	case GameKicked:
		return "KICKED"
	case GameScored:
		return "SCORED"
	case GameMissed:
		return "MISSED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the round outcome has been decided.
func (p GamePhase) Terminal() bool {
	return p == GameScored || p == GameMissed
}

// ValidPairing reports whether the two controllers agree with each other.
func ValidPairing(ball BallPhase, game GamePhase) bool {
	switch ball {
	case BallSetup:
		return game == GameAdjusting
	case BallLaunched:
		return game == GameKicked || game.Terminal()
	case BallDone:
		return game.Terminal()
	default:
		return false
	}
}
