// Package player implements the player's contact controller: body-relative
// movement, heading control and the haptic/audio cue that signals wall
// contact.
package player

import (
	"errors"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/physics"
)

var (
	ErrNoBody  = errors.New("player: rigid body is required")
	ErrNoInput = errors.New("player: input is required")
)

// pointEpsilon is the tolerance for comparing contact point coordinates.
const pointEpsilon = 1e-4

// Body is the rigid body the controller drives.
type Body interface {
	Velocity() core.Vec2
	Rotation() float64
	Up() core.Vec2
	Right() core.Vec2
	AddForce(f core.Vec2)
	SetRotation(deg float64)
}

// Input supplies continuously sampled movement and look values.
type Input interface {
	MoveVector() core.Vec2
	LookDelta() float64
}

// Rumble receives left/right motor speeds in [0,1].
type Rumble interface {
	SetMotorSpeeds(left, right float64)
}

// Tone is a looping audio cue.
type Tone interface {
	Play()
	Stop()
	SetVolume(v float64)
	SetPan(p float64)
}

// Session is notified when the player reaches the goal.
type Session interface {
	OnGameWon()
}

type nopRumble struct{}

func (nopRumble) SetMotorSpeeds(float64, float64) {}

type nopTone struct{}

func (nopTone) Play()             {}
func (nopTone) Stop()             {}
func (nopTone) SetVolume(float64) {}
func (nopTone) SetPan(float64)    {}

// Option configures a Controller.
type Option func(*Controller)

// WithRumble sets the haptic sink.
func WithRumble(r Rumble) Option {
	return func(c *Controller) {
		if r != nil {
			c.rumble = r
		}
	}
}

// WithTone sets the audio sink.
func WithTone(t Tone) Option {
	return func(c *Controller) {
		if t != nil {
			c.tone = t
		}
	}
}

// WithSession sets the collaborator notified on a win.
func WithSession(s Session) Option {
	return func(c *Controller) {
		c.session = s
	}
}

// WithGoal sets the trigger that wins the game.
func WithGoal(id physics.BodyID) Option {
	return func(c *Controller) {
		c.goal = id
	}
}

// WithLogger sets the logger used for cue diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// Controller is the per-player state machine. The host calls FixedTick once
// per physics step, Tick once per frame and forwards collision events.
type Controller struct {
	cfg     Config
	body    Body
	input   Input
	rumble  Rumble
	tone    Tone
	session Session
	goal    physics.BodyID
	logger  *log.Logger

	contacts  ContactList
	state     State
	cue       Cue
	remaining time.Duration
	pulses    int
	playing   bool
	disabled  bool
	won       bool
}

// NewController validates its collaborators and returns an idle controller.
func NewController(cfg Config, body Body, input Input, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, ErrNoBody
	}
	if input == nil {
		return nil, ErrNoInput
	}

	c := &Controller{
		cfg:    cfg,
		body:   body,
		input:  input,
		rumble: nopRumble{},
		tone:   nopTone{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// State returns the current cue state.
func (c *Controller) State() State {
	return c.state
}

// Cue returns the cue last sent to the sinks.
func (c *Controller) Cue() Cue {
	return c.cue
}

// Contacts returns the tracked contacts, oldest first.
func (c *Controller) Contacts() []physics.Contact {
	return c.contacts.Items()
}

// Pulses returns how many collision pulses have started.
func (c *Controller) Pulses() int {
	return c.pulses
}

// Won reports whether the goal has been reached.
func (c *Controller) Won() bool {
	return c.won
}

// Disabled reports whether the controller is disabled.
func (c *Controller) Disabled() bool {
	return c.disabled
}

// FixedTick applies the movement force for one physics step.
func (c *Controller) FixedTick() {
	if c.disabled {
		return
	}
	m := c.input.MoveVector()
	mx := core.ClampF(m.X, -1, 1)
	my := core.ClampF(m.Y, -1, 1)
	force := c.body.Right().Scale(mx).Add(c.body.Up().Scale(my)).Scale(c.cfg.MovementSpeed)
	if force != (core.Vec2{}) {
		c.body.AddForce(force)
	}
}

// Tick advances rotation and the cue state machine by dt.
func (c *Controller) Tick(dt time.Duration) {
	if c.disabled {
		return
	}
	if look := c.input.LookDelta(); look != 0 {
		c.body.SetRotation(c.body.Rotation() - look*c.cfg.RotationSensitivity*dt.Seconds())
	}

	switch c.state {
	case PulseCue:
		c.remaining -= dt
		if c.remaining > 0 {
			c.apply()
			return
		}
		c.remaining = 0
		if c.dragging() {
			c.enterDrag()
		} else {
			c.enterIdle()
		}
	case DragCue:
		if !c.dragging() {
			c.enterIdle()
			return
		}
		c.enterDrag()
	case Idle:
		if c.dragging() {
			c.enterDrag()
		}
	}
}

// OnCollisionBegin records a contact and starts a pulse unless the contact
// continues the previous one along the same straight wall.
func (c *Controller) OnCollisionBegin(ct physics.Contact) {
	prev, hadPrev := c.contacts.Last()
	c.contacts.Begin(ct)
	if c.disabled {
		return
	}
	if hadPrev && !differsOnBothAxes(prev.Point, ct.Point) {
		return
	}
	c.startPulse(ct)
}

// OnCollisionEnd forgets a contact. Unknown ids are ignored.
func (c *Controller) OnCollisionEnd(other physics.BodyID) {
	c.contacts.End(other)
}

// OnTriggerEnter signals the session the first time the goal is entered.
func (c *Controller) OnTriggerEnter(other physics.BodyID) {
	if c.won || c.goal == physics.NoBody || other != c.goal {
		return
	}
	c.won = true
	c.logger.Info("goal reached")
	if c.session != nil {
		c.session.OnGameWon()
	}
}

// Disable stops any cue immediately and suspends the controller. It is safe
// to call repeatedly.
func (c *Controller) Disable() {
	c.disabled = true
	c.enterIdle()
	c.tone.Stop()
	c.playing = false
}

// Enable resumes a disabled controller in the idle state.
func (c *Controller) Enable() {
	c.disabled = false
}

func (c *Controller) dragging() bool {
	return c.contacts.Len() > 0 && c.body.Velocity().Len() > c.cfg.MoveThreshold
}

func (c *Controller) startPulse(ct physics.Contact) {
	c.state = PulseCue
	c.remaining = c.cfg.CueTime
	c.pulses++
	c.cue = Compute(ct.Normal, c.body.Up(), 1)
	c.logCue()
	c.apply()
}

func (c *Controller) enterDrag() {
	last, ok := c.contacts.Last()
	if !ok {
		c.enterIdle()
		return
	}
	c.cue = Compute(last.Normal, c.body.Up(), c.cfg.WallTouchScale)
	if c.state != DragCue {
		c.state = DragCue
		c.logCue()
	}
	c.apply()
}

func (c *Controller) enterIdle() {
	c.state = Idle
	c.remaining = 0
	c.cue = Cue{}
	c.rumble.SetMotorSpeeds(0, 0)
	c.tone.SetVolume(0)
	if c.playing {
		c.tone.Stop()
		c.playing = false
	}
}

func (c *Controller) apply() {
	c.rumble.SetMotorSpeeds(c.cue.Intensity.Left, c.cue.Intensity.Right)
	c.tone.SetVolume(c.cue.Intensity.Sum())
	c.tone.SetPan(c.cue.Orientation.Balance())
	if !c.playing {
		c.tone.Play()
		c.playing = true
	}
}

func (c *Controller) logCue() {
	if !c.cue.Active() {
		return
	}
	c.logger.Debug("playing cue",
		"state", c.state,
		"left", c.cue.Intensity.Left,
		"right", c.cue.Intensity.Right)
}

func differsOnBothAxes(a, b core.Vec2) bool {
	return math.Abs(a.X-b.X) > pointEpsilon && math.Abs(a.Y-b.Y) > pointEpsilon
}
