package kick

import "fmt"

// Deps are the external collaborators a Session runs against.
type Deps struct {
	Body         RigidBody
	Input        InputSource
	Presentation Presentation
	Goalie       Goalkeeper
}

// Session owns both controllers, wires their handles to each other and
// ticks them in a fixed order. Neither controller owns the other.
type Session struct {
	cfg   Config
	input InputSource
	ball  *Ball
	game  *Game
	ticks uint64
}

// NewSession validates the config and collaborators and returns a session
// with the ball on the spot and the game waiting in ADJUSTING.
func NewSession(cfg Config, deps Deps) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ball, err := NewBall(cfg, deps.Body, deps.Input, deps.Presentation)
	if err != nil {
		return nil, fmt.Errorf("new ball: %w", err)
	}
	game, err := NewGame(cfg, deps.Body, deps.Goalie, deps.Presentation)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	ball.game = game
	game.ball = ball

	s := &Session{
		cfg:   cfg,
		input: deps.Input,
		ball:  ball,
		game:  game,
	}

	deps.Presentation.SetScoreText("0")
	ball.reset()
	return s, nil
}

func (s *Session) Ball() *Ball   { return s.ball }
func (s *Session) Game() *Game   { return s.game }
func (s *Session) Ticks() uint64 { return s.ticks }

// Phases returns the current phase of each controller.
func (s *Session) Phases() (BallPhase, GamePhase) {
	return s.ball.Phase(), s.game.Phase()
}

// Consistent reports whether the two phases form a legal pair.
func (s *Session) Consistent() bool {
	return ValidPairing(s.Phases())
}

// Tick advances both controllers by one frame, ball first. It returns ErrQuit
// when quit is pressed while no kick is being judged.
func (s *Session) Tick(dt float64) error {
	if s.input.IsPressed(ActionQuit) && s.game.Phase() != GameKicked {
		return ErrQuit
	}

	s.ball.Tick(dt)
	s.game.Tick(dt)
	s.ticks++

	if !s.Consistent() {
		ball, game := s.Phases()
		s.cfg.debugf("kick: inconsistent phases ball=%s game=%s", ball, game)
	}
	return nil
}

// OnGoalSensor forwards the collision signal for the ball entering the goal.
func (s *Session) OnGoalSensor() {
	s.game.OnGoalSensor()
}
