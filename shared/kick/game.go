package kick

import (
	"fmt"
	"strconv"

	"github.com/automoto/penaltykick/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Game judges each kick and keeps the score.
type Game struct {
	cfg    Config
	body   RigidBody
	goalie Goalkeeper
	pres   Presentation
	ball   OutcomeListener

	phase            GamePhase
	score            int
	distance         float64 // Ball to goal center this tick
	shortestDistance float64 // Closest approach since the kick
	goalieX          float64
}

// NewGame creates a game controller in ADJUSTING. The ball handle is attached
// by the Session.
func NewGame(cfg Config, body RigidBody, goalie Goalkeeper, pres Presentation) (*Game, error) {
	switch {
	case body == nil:
		return nil, fmt.Errorf("%w: ball rigid body", ErrMissingCollaborator)
	case goalie == nil:
		return nil, fmt.Errorf("%w: goalkeeper", ErrMissingCollaborator)
	case pres == nil:
		return nil, fmt.Errorf("%w: presentation", ErrMissingCollaborator)
	}

	g := &Game{
		cfg:     cfg,
		body:    body,
		goalie:  goalie,
		pres:    pres,
		phase:   GameAdjusting,
		goalieX: cfg.GoalieSpawn.X(),
	}
	g.distance = g.distanceToGoal()
	g.shortestDistance = g.distance
	return g, nil
}

func (g *Game) Phase() GamePhase          { return g.phase }
func (g *Game) Score() int                { return g.score }
func (g *Game) Distance() float64         { return g.distance }
func (g *Game) ShortestDistance() float64 { return g.shortestDistance }
func (g *Game) GoalieX() float64          { return g.goalieX }

// EnterAdjusting starts a new round: new distance baseline, goalie back on
// the line, feedback cleared.
func (g *Game) EnterAdjusting() {
	g.phase = GameAdjusting
	g.distance = g.distanceToGoal()
	g.shortestDistance = g.distance

	g.goalieX = g.cfg.GoalieSpawn.X()
	g.goalie.SetPosition(g.cfg.GoalieSpawn)

	g.pres.SetStatusText("")
	g.pres.SetPromptText("")
}

// EnterKicked starts judging. Only a round waiting in ADJUSTING can be kicked.
func (g *Game) EnterKicked() {
	if g.phase != GameAdjusting {
		g.cfg.debugf("kick: kicked ignored in %s", g.phase)
		return
	}
	g.phase = GameKicked
}

// OnGoalSensor is the collision signal for the ball entering the goal.
// It wins over the per-tick miss heuristics.
func (g *Game) OnGoalSensor() {
	if g.phase != GameKicked {
		g.cfg.debugf("kick: goal sensor ignored in %s", g.phase)
		return
	}
	g.enterScored()
}

// Tick runs one judging step.
func (g *Game) Tick(dt float64) {
	switch g.phase {
	case GameKicked:
		g.judge()
	case GameAdjusting, GameScored, GameMissed:
		// Waiting for the ball controller.
	}
}

func (g *Game) judge() {
	g.updateGoalie()

	g.distance = g.distanceToGoal()
	if g.distance < g.shortestDistance {
		g.shortestDistance = g.distance
	}

	receded := g.distance-g.shortestDistance > g.cfg.RecedeThreshold
	stopped := g.body.Velocity().Len() <= g.cfg.StopSpeed
	if receded || stopped {
		g.cfg.debugf("kick: miss receded=%t stopped=%t dist=%.2f closest=%.2f", receded, stopped, g.distance, g.shortestDistance)
		g.enterMissed()
	}
}

func (g *Game) updateGoalie() {
	reach := g.cfg.GoalHalfWidth - g.cfg.GoalieHalfWidth
	center := g.cfg.GoalCenter.X()

	x := gamemath.Lerp(g.cfg.GoalieSpawn.X(), g.body.Position().X(), g.cfg.GoalieFollow)
	g.goalieX = gamemath.Clamp(x, center-reach, center+reach)
	g.goalie.SetPosition(mgl64.Vec3{g.goalieX, g.cfg.GoalieSpawn.Y(), g.cfg.GoalieSpawn.Z()})
}

func (g *Game) enterScored() {
	g.phase = GameScored
	g.score++
	g.pres.SetScoreText(strconv.Itoa(g.score))
	g.ball.FinishKick()
	g.pres.SetStatusText(g.cfg.ScoredStatus)
	g.pres.SetPromptText(g.cfg.ResetPrompt)
}

func (g *Game) enterMissed() {
	g.phase = GameMissed
	g.ball.FinishKick()
	g.pres.SetStatusText(g.cfg.MissedStatus)
	g.pres.SetPromptText(g.cfg.ResetPrompt)
}

func (g *Game) distanceToGoal() float64 {
	return g.body.Position().Sub(g.cfg.GoalCenter).Len()
}
