package kick

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type fakeBody struct {
	pos, vel, angVel mgl64.Vec3
}

func (b *fakeBody) Position() mgl64.Vec3            { return b.pos }
func (b *fakeBody) SetPosition(p mgl64.Vec3)        { b.pos = p }
func (b *fakeBody) Velocity() mgl64.Vec3            { return b.vel }
func (b *fakeBody) SetVelocity(v mgl64.Vec3)        { b.vel = v }
func (b *fakeBody) SetAngularVelocity(w mgl64.Vec3) { b.angVel = w }

// fakeInput holds actions until released; pressed actions last one tick.
type fakeInput struct {
	held    [ActionCount]bool
	pressed [ActionCount]bool
}

func (in *fakeInput) IsHeld(a Action) bool    { return in.held[a] }
func (in *fakeInput) IsPressed(a Action) bool { return in.pressed[a] }
func (in *fakeInput) press(a Action)          { in.pressed[a] = true }
func (in *fakeInput) clear()                  { in.pressed = [ActionCount]bool{} }

type fakePresentation struct {
	marker        mgl64.Vec3
	markerVisible bool
	status        string
	prompt        string
	score         string
	camera        CameraID
	calls         int
}

func (p *fakePresentation) SetMarkerPosition(v mgl64.Vec3) { p.marker = v; p.calls++ }
func (p *fakePresentation) SetMarkerVisible(b bool)        { p.markerVisible = b; p.calls++ }
func (p *fakePresentation) SetStatusText(s string)         { p.status = s; p.calls++ }
func (p *fakePresentation) SetPromptText(s string)         { p.prompt = s; p.calls++ }
func (p *fakePresentation) SetScoreText(s string)          { p.score = s; p.calls++ }
func (p *fakePresentation) SetActiveCamera(c CameraID)     { p.camera = c; p.calls++ }

type fakeKeeper struct {
	pos mgl64.Vec3
}

func (k *fakeKeeper) Position() mgl64.Vec3     { return k.pos }
func (k *fakeKeeper) SetPosition(p mgl64.Vec3) { k.pos = p }

type harness struct {
	cfg     Config
	body    *fakeBody
	input   *fakeInput
	pres    *fakePresentation
	keeper  *fakeKeeper
	session *Session
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWithConfig(t, DefaultConfig())
}

func newHarnessWithConfig(t *testing.T, cfg Config) *harness {
	t.Helper()
	h := &harness{
		cfg:    cfg,
		body:   &fakeBody{},
		input:  &fakeInput{},
		pres:   &fakePresentation{},
		keeper: &fakeKeeper{},
	}
	s, err := NewSession(cfg, Deps{
		Body:         h.body,
		Input:        h.input,
		Presentation: h.pres,
		Goalie:       h.keeper,
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	h.session = s
	return h
}

// tick runs one frame and checks the phase pairing afterwards.
func (h *harness) tick(t *testing.T) {
	t.Helper()
	if err := h.session.Tick(1.0 / 60); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	h.input.clear()
	if !h.session.Consistent() {
		b, g := h.session.Phases()
		t.Fatalf("inconsistent phases ball=%s game=%s", b, g)
	}
}

// ballAt puts the ball dist units in front of the goal center, moving fast.
func (h *harness) ballAt(dist float64) {
	h.body.pos = h.cfg.GoalCenter.Sub(mgl64.Vec3{0, 0, dist})
	h.body.vel = mgl64.Vec3{0, 0, 10}
}

// vecNear compares componentwise with an absolute tolerance.
func vecNear(a, b mgl64.Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
