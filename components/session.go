package components

import (
	"github.com/automoto/penaltykick/shared/kick"
	"github.com/yohamta/donburi"
)

// SessionData owns the kick controllers (singleton).
type SessionData struct {
	Session *kick.Session
	Err     error // Set once the session asks to stop, e.g. kick.ErrQuit

	// Phases seen at the end of the previous frame, for transition effects
	LastBall kick.BallPhase
	LastGame kick.GamePhase
}

var Session = donburi.NewComponentType[SessionData]()
