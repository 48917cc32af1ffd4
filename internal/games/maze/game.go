// Package maze implements the tactile maze: find the exit of a procedurally
// generated maze with hidden walls, guided by rumble and a stereo tone.
package maze

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/audio"
	"github.com/vovakirdan/tui-maze/internal/camera"
	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/haptics"
	mazegen "github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/physics"
	"github.com/vovakirdan/tui-maze/internal/player"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// Longest frame simulated at once; slower frames run in slow motion.
const maxFrame = 250 * time.Millisecond

// Minimum screen size to play.
const (
	minScreenW = 20
	minScreenH = 8
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// sizeOverride forces the maze size when positive
var sizeOverride int

// audioEnabled allows the contact tone to open the speaker
var audioEnabled bool

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the default variant.
// Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetSize forces every maze to n cells per side. Zero restores difficulty sizing.
func SetSize(n int) {
	sizeOverride = n
}

// SetAudioEnabled allows games to open the audio device.
func SetAudioEnabled(enabled bool) {
	audioEnabled = enabled
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

type variant struct {
	id, title, description string
	preset                 config.DifficultyPreset
}

var (
	normalVariant = variant{
		id:          "maze",
		title:       "Maze",
		description: "Find the exit by feel; difficulty follows --difficulty",
		preset:      "",
	}
	easyVariant = variant{
		id:          "maze_easy",
		title:       "Maze (Easy)",
		description: "Small mazes with a strong scraping cue",
		preset:      config.DifficultyEasy,
	}
	hardVariant = variant{
		id:          "maze_hard",
		title:       "Maze (Hard)",
		description: "Large mazes with a faint scraping cue",
		preset:      config.DifficultyHard,
	}
)

// Game implements the maze game logic.
type Game struct {
	variant variant
	logger  *log.Logger

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.MazeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	err        error

	// Current maze
	layout *mazegen.Layout
	world  *physics.World
	body   *physics.Body
	goal   physics.BodyID
	ctrl   *player.Controller
	path   []mazegen.Point
	seed   int64
	size   int

	// Collaborators
	frame core.InputFrame // Sampled by the controller through Input
	meter *haptics.Meter
	tone  *audio.Tone
	cam   *camera.Manager

	// Timing
	accumulator time.Duration
	elapsed     time.Duration
	restartIn   time.Duration
	tick        uint64
	fixedSteps  uint64

	// Session
	wins           int
	won            bool
	paused         bool
	screenTooSmall bool
}

// New creates a new maze game with the CLI difficulty.
func New() *Game {
	return newGame(normalVariant)
}

// NewEasy creates a maze game fixed to the easy preset.
func NewEasy() *Game {
	return newGame(easyVariant)
}

// NewHard creates a maze game fixed to the hard preset.
func NewHard() *Game {
	return newGame(hardVariant)
}

func newGame(v variant) *Game {
	return &Game{
		variant: v,
		logger:  logger.With("game", v.id),
		meter:   haptics.NewMeter(),
		cam:     camera.New(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.title
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return g.variant.description
}

// Reset loads configuration and starts a new session with a fresh maze.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.err = nil
	g.wins = 0
	g.paused = false
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	// Load game config
	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultMazeConfig()
	}

	// Variant preset wins over the CLI preset
	preset := g.variant.preset
	if preset == "" {
		preset = difficultyPreset
	}
	if preset != "" {
		config.ApplyMazePreset(&cfg, preset)
	}
	if sizeOverride != 0 {
		cfg.Maze.Size = sizeOverride
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
	}

	if err := cfg.Validate(); err != nil {
		g.fail(err)
		return
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.openAudio()
	g.startMaze(runtime.Seed)
}

func (g *Game) openAudio() {
	if !audioEnabled || !g.cfg.Audio.Enabled || g.tone != nil {
		return
	}
	g.tone = audio.NewTone(g.cfg.Audio.Frequency)
	if err := g.tone.Init(); err != nil {
		g.logger.Warn("audio unavailable, tone is silent", "err", err)
	}
}

func (g *Game) fail(err error) {
	g.err = err
	g.logger.Error("cannot start maze", "err", err)
	if g.ctrl != nil {
		g.ctrl.Disable()
	}
}

// startMaze generates and places a maze from seed.
func (g *Game) startMaze(seed int64) {
	if g.ctrl != nil {
		g.ctrl.Disable()
	}

	size := g.difficulty.Size(g.cfg.Maze.Size, g.wins)
	layout, err := mazegen.Generate(size, g.cfg.Maze.Scale, rand.New(rand.NewSource(seed)))
	if err != nil {
		g.fail(err)
		return
	}

	w, err := buildWorld(layout, g.cfg.Physics)
	if err != nil {
		g.fail(err)
		return
	}

	pcfg := player.Config{
		MovementSpeed:       g.cfg.Player.MovementSpeed,
		RotationSensitivity: g.cfg.Player.RotationSensitivity,
		CueTime:             g.cfg.Player.CueTime,
		WallTouchScale:      g.difficulty.TouchScale(g.cfg.Player.WallTouchScale, g.wins),
		MoveThreshold:       g.cfg.Player.MoveThreshold,
	}
	opts := []player.Option{
		player.WithRumble(g.meter),
		player.WithSession(g),
		player.WithGoal(w.goal),
		player.WithLogger(g.logger),
	}
	if g.tone != nil {
		opts = append(opts, player.WithTone(g.tone))
	}
	ctrl, err := player.NewController(pcfg, w.body, &g.frame, opts...)
	if err != nil {
		g.fail(err)
		return
	}
	w.body.SetListener(ctrl)

	g.layout = layout
	g.world = w.world
	g.body = w.body
	g.goal = w.goal
	g.ctrl = ctrl
	g.path = nil
	g.seed = seed
	g.size = size

	g.meter.Reset()
	g.cam.OnMazeGenerated(layout.EdgeSize(), layout.WorldSize())
	if g.cfg.Session.ShowWalls {
		g.cam.ToggleWalls()
	}
	g.cam.Follow(g.body.Position())

	g.accumulator = 0
	g.elapsed = 0
	g.restartIn = 0
	g.won = false
	g.frame = core.NewInputFrame()

	g.logger.Info("maze generated", "size", size, "seed", seed, "walls", w.walls)
}

// OnGameWon is called by the controller when the goal trigger is entered.
func (g *Game) OnGameWon() {
	if g.won {
		return
	}
	g.won = true
	g.wins++
	g.restartIn = g.cfg.Session.RestartDelay
	g.ctrl.Disable()
	g.cam.OnGameWon()
	g.path = g.layout.Grid.Solve(g.layout.Entry, g.layout.Exit)
	g.logger.Info("maze solved", "elapsed", g.elapsed, "pulses", g.ctrl.Pulses(), "wins", g.wins)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil || g.ctrl == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.won {
		g.paused = !g.paused
		if g.paused {
			g.ctrl.Disable()
		} else {
			g.ctrl.Enable()
		}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.startMaze(g.rng.Int63())
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionToggleWalls) {
		g.cam.ToggleWalls()
	}

	dt := in.DT
	if dt <= 0 {
		dt = g.runtime.FrameDuration()
	}
	dt = min(dt, maxFrame)
	g.tick++

	if g.won {
		g.restartIn -= dt
		if g.restartIn <= 0 {
			g.startMaze(g.rng.Int63())
		}
		return core.StepResult{State: g.State()}
	}

	g.frame = in
	g.simulate(dt)
	return core.StepResult{State: g.State()}
}

// simulate runs the fixed physics steps owed by dt, then the frame tick.
func (g *Game) simulate(dt time.Duration) {
	step := g.cfg.FixedStep()
	g.accumulator += dt
	for g.accumulator >= step && !g.won {
		g.ctrl.FixedTick()
		g.world.Step(step)
		g.accumulator -= step
		g.fixedSteps++
	}
	if g.won {
		g.accumulator = 0
		return
	}

	g.ctrl.Tick(dt)
	g.elapsed += dt
	g.cam.Follow(g.body.Position())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Elapsed:  g.elapsed,
		Size:     g.size,
		Seed:     g.seed,
		Won:      g.won,
		GameOver: g.err != nil,
		Paused:   g.paused,
	}
	if g.ctrl != nil {
		st.Contacts = g.ctrl.Pulses()
	}
	return st
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}

// Close silences and releases the audio device.
func (g *Game) Close() error {
	if g.ctrl != nil {
		g.ctrl.Disable()
	}
	if g.tone != nil {
		g.tone.Close()
		g.tone = nil
	}
	return nil
}

// Register the games with the registry
func init() {
	registry.Register("maze", func() registry.Game {
		return New()
	})
	registry.Register("maze_easy", func() registry.Game {
		return NewEasy()
	})
	registry.Register("maze_hard", func() registry.Game {
		return NewHard()
	})
}
