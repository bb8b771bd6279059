package kick

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrMissingCollaborator is returned at construction when a required
	// collaborator is nil. It is a configuration error and must abort startup.
	ErrMissingCollaborator = errors.New("kick: missing collaborator")
	// ErrInvalidConfig is returned when tuning values cannot produce a valid shot.
	ErrInvalidConfig = errors.New("kick: invalid config")
	// ErrQuit is returned by Session.Tick when the player asked to leave.
	ErrQuit = errors.New("kick: quit requested")
)

// Config contains every gameplay constant of the mini-game.
// Vector fields come from the pitch layout; scalar fields may be tuned
// through the environment.
type Config struct {
	Gravity float64 `env:"GRAVITY"` // Downward acceleration magnitude

	// Ball and aim
	BallSpawn         mgl64.Vec3
	MarkerSpawn       mgl64.Vec3
	MarkerHidden      mgl64.Vec3
	MinTargetHeight   float64 `env:"MIN_TARGET_HEIGHT"`
	MaxTargetHeight   float64 `env:"MAX_TARGET_HEIGHT"`
	MinTargetDistance float64 `env:"MIN_TARGET_DISTANCE"` // Solver guard against a degenerate range
	RotationRate      float64 `env:"ROTATION_RATE"`       // Degrees per second while a rotate key is held
	HeightRate        float64 `env:"HEIGHT_RATE"`         // Units per second while a height key is held

	// Goal and goalie
	GoalCenter      mgl64.Vec3
	GoalHalfWidth   float64
	GoalieSpawn     mgl64.Vec3
	GoalieHalfWidth float64
	GoalieFollow    float64 `env:"GOALIE_FOLLOW"` // Lerp factor toward the ball's x

	// Judging
	RecedeThreshold float64 `env:"RECEDE_THRESHOLD"` // Distance past the closest approach that counts as a miss
	StopSpeed       float64 `env:"STOP_SPEED"`       // Speed at or below which the ball counts as stopped

	// Feedback text
	ScoredStatus string `env:"SCORED_STATUS"`
	MissedStatus string `env:"MISSED_STATUS"`
	ResetPrompt  string `env:"RESET_PROMPT"`

	// Debugf receives out-of-phase calls and transitions. Nil keeps the core silent.
	Debugf func(format string, args ...any)
}

// DefaultConfig returns the stock penalty spot layout and tuning.
func DefaultConfig() Config {
	return Config{
		Gravity: 9.81,

		BallSpawn:         mgl64.Vec3{0, 0.15, 0},
		MarkerSpawn:       mgl64.Vec3{0, 1, 25},
		MarkerHidden:      mgl64.Vec3{0, -10, 0},
		MinTargetHeight:   1,
		MaxTargetHeight:   10,
		MinTargetDistance: 0.5,
		RotationRate:      30,
		HeightRate:        3,

		GoalCenter:      mgl64.Vec3{0, 1.22, 33},
		GoalHalfWidth:   3.66,
		GoalieSpawn:     mgl64.Vec3{0, 0, 33},
		GoalieHalfWidth: 0.5,
		GoalieFollow:    0.8,

		RecedeThreshold: 5,
		StopSpeed:       1,

		ScoredStatus: "SCORE",
		MissedStatus: "MISSED",
		ResetPrompt:  "*SPACEBAR to Reset*",
	}
}

// Validate checks the values the solver and the judge depend on.
func (c Config) Validate() error {
	if c.Gravity <= 0 {
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidConfig, c.Gravity)
	}
	if c.MinTargetDistance <= 0 {
		return fmt.Errorf("%w: min target distance must be positive, got %v", ErrInvalidConfig, c.MinTargetDistance)
	}
	if c.MinTargetHeight <= 0 || c.MinTargetHeight > c.MaxTargetHeight {
		return fmt.Errorf("%w: target height range [%v, %v]", ErrInvalidConfig, c.MinTargetHeight, c.MaxTargetHeight)
	}
	if c.GoalieHalfWidth > c.GoalHalfWidth {
		return fmt.Errorf("%w: goalie wider than goal", ErrInvalidConfig)
	}
	return nil
}

func (c Config) debugf(format string, args ...any) {
	if c.Debugf != nil {
		c.Debugf(format, args...)
	}
}
