package factory

import (
	"fmt"

	"github.com/automoto/penaltykick/archetypes"
	"github.com/automoto/penaltykick/components"
	"github.com/automoto/penaltykick/shared/kick"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession wires the kick controllers to their collaborators.
func CreateSession(ecs *ecs.ECS, kcfg kick.Config, deps kick.Deps) (*donburi.Entry, error) {
	s, err := kick.NewSession(kcfg, deps)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	entry := archetypes.Session.Spawn(ecs)
	ball, game := s.Phases()
	components.Session.SetValue(entry, components.SessionData{
		Session:  s,
		LastBall: ball,
		LastGame: game,
	})
	return entry, nil
}
