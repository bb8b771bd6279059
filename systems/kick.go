package systems

import (
	"errors"
	"log"

	"github.com/automoto/penaltykick/components"
	cfg "github.com/automoto/penaltykick/config"
	"github.com/automoto/penaltykick/shared/kick"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKick runs one tick of the ball and game controllers.
// Must run AFTER UpdateInput and BEFORE UpdatePhysics.
func UpdateKick(ecs *ecs.ECS) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	data := components.Session.Get(entry)
	if data.Err != nil {
		return
	}

	// Collisions from last frame may have ended the kick.
	queuePhaseSounds(ecs, data)

	if err := data.Session.Tick(dt()); err != nil {
		if !errors.Is(err, kick.ErrQuit) {
			log.Printf("Warning: session tick: %v", err)
		}
		data.Err = err
		return
	}

	queuePhaseSounds(ecs, data)
}

// SessionErr reports why the session stopped, or nil while it is running.
func SessionErr(ecs *ecs.ECS) error {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry).Err
}

// queuePhaseSounds plays the kick, goal and miss effects on phase changes.
func queuePhaseSounds(ecs *ecs.ECS, data *components.SessionData) {
	ball, game := data.Session.Phases()
	if ball == kick.BallLaunched && data.LastBall == kick.BallSetup {
		QueueSFX(ecs, cfg.SoundKick)
	}
	if game != data.LastGame {
		switch game {
		case kick.GameScored:
			QueueSFX(ecs, cfg.SoundGoal)
		case kick.GameMissed:
			QueueSFX(ecs, cfg.SoundMiss)
		}
	}
	data.LastBall, data.LastGame = ball, game
}

func dt() float64 {
	return 1 / float64(cfg.C.TickRate)
}
