package systems

import (
	"github.com/automoto/penaltykick/components"
	"github.com/automoto/penaltykick/config"
	"github.com/automoto/penaltykick/shared/kick"
	"github.com/automoto/penaltykick/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera advances the view blend and keeps the follow view on the ball.
func UpdateCamera(e *ecs.ECS) {
	camera := getOrCreateCamera(e)

	if camera.Blend != nil {
		pos, done := camera.Blend.Update(1)
		camera.BlendPos = pos
		if done {
			camera.Blend = nil
		}
	}

	ballEntry, ok := tags.Ball.First(e.World)
	if !ok {
		return
	}
	pos := components.RigidBody.Get(ballEntry).Body.Position()

	targetX := pos.Z() + config.Pitch.SideLookAhead
	targetY := pos.Y()
	if camera.Active == kick.CameraMain {
		// Snap back so the next kick starts framed on the spot.
		camera.Follow.X = targetX
		camera.Follow.Y = targetY
		return
	}

	camera.Follow.X += (targetX - camera.Follow.X) * config.Camera.FollowSmoothing
	camera.Follow.Y += (targetY - camera.Follow.Y) * config.Camera.FollowSmoothing
}

// startCameraBlend tweens BlendPos toward the view for id.
func startCameraBlend(camera *components.CameraData, id kick.CameraID) {
	var target float32
	if id == kick.CameraPlay {
		target = 1
	}
	camera.Blend = gween.New(camera.BlendPos, target, config.Camera.BlendFrames, ease.InOutQuad)
}
