package maze

import "github.com/vovakirdan/tui-maze/internal/player"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	FixedSteps uint64
	Seed       int64
	Size       int
	Walls      int
	PlayerX    float64
	PlayerY    float64
	Rotation   float64
	Cue        player.State
	Contacts   int
	Pulses     int
	Wins       int
	Won        bool
	ElapsedMs  int64
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		FixedSteps: g.fixedSteps,
		Seed:       g.seed,
		Size:       g.size,
		Wins:       g.wins,
		Won:        g.won,
		ElapsedMs:  g.elapsed.Milliseconds(),
	}
	if g.world != nil {
		s.Walls = g.world.StaticCount()
	}
	if g.body != nil {
		p := g.body.Position()
		s.PlayerX, s.PlayerY = p.X, p.Y
		s.Rotation = g.body.Rotation()
	}
	if g.ctrl != nil {
		s.Cue = g.ctrl.State()
		s.Contacts = len(g.ctrl.Contacts())
		s.Pulses = g.ctrl.Pulses()
	}
	return s
}
