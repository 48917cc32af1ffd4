// Package config provides YAML-based game configuration loading and
// difficulty management for the maze.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	Maze       MazeLayout       `yaml:"maze"`
	Player     MazePlayer       `yaml:"player"`
	Physics    MazePhysics      `yaml:"physics"`
	Audio      MazeAudio        `yaml:"audio"`
	Session    MazeSession      `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MazeLayout defines maze generation parameters.
type MazeLayout struct {
	Size  int     `yaml:"size"`  // Cells per side before difficulty scaling
	Scale float64 `yaml:"scale"` // World size of one wall block
}

// MazePlayer defines movement and cue tuning.
type MazePlayer struct {
	MovementSpeed       float64       `yaml:"movement_speed"`
	RotationSensitivity float64       `yaml:"rotation_sensitivity"` // Degrees per second
	CueTime             time.Duration `yaml:"cue_time"`
	WallTouchScale      float64       `yaml:"wall_touch_scale"`
	MoveThreshold       float64       `yaml:"move_threshold"`
}

// MazePhysics defines the rigid body and simulation rate.
type MazePhysics struct {
	FixedRate  int     `yaml:"fixed_rate"` // Physics steps per second
	Radius     float64 `yaml:"radius"`
	Mass       float64 `yaml:"mass"`
	LinearDrag float64 `yaml:"linear_drag"`
	MaxSpeed   float64 `yaml:"max_speed"`
	Skin       float64 `yaml:"skin"`
}

// MazeAudio defines the contact tone.
type MazeAudio struct {
	Enabled   bool    `yaml:"enabled"`
	Frequency float64 `yaml:"frequency"`
}

// MazeSession defines what happens around a run.
type MazeSession struct {
	RestartDelay time.Duration `yaml:"restart_delay"` // Pause on the overview after a win
	ShowWalls    bool          `yaml:"show_walls"`    // Start with walls visible
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases across a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wins" or "none"
	MaxAt int    `yaml:"max_at"` // Wins at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SizeGrowth     int     `yaml:"size_growth"`     // Cells added per side at max difficulty
	TouchReduction float64 `yaml:"touch_reduction"` // Fraction of the drag cue removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks preconditions the game refuses to start without.
func (c MazeConfig) Validate() error {
	switch {
	case c.Maze.Size <= 0:
		return fmt.Errorf("%w: maze.size must be positive, got %d", ErrInvalid, c.Maze.Size)
	case c.Maze.Scale <= 0:
		return fmt.Errorf("%w: maze.scale must be positive", ErrInvalid)
	case c.Physics.FixedRate <= 0:
		return fmt.Errorf("%w: physics.fixed_rate must be positive", ErrInvalid)
	case c.Physics.Mass <= 0:
		return fmt.Errorf("%w: physics.mass must be positive", ErrInvalid)
	case c.Physics.Radius <= 0 || c.Physics.Radius >= c.Maze.Scale/2:
		return fmt.Errorf("%w: physics.radius must be in (0, scale/2)", ErrInvalid)
	case c.Player.MovementSpeed <= 0:
		return fmt.Errorf("%w: player.movement_speed must be positive", ErrInvalid)
	case c.Player.CueTime <= 0:
		return fmt.Errorf("%w: player.cue_time must be positive", ErrInvalid)
	case c.Player.WallTouchScale < 0 || c.Player.WallTouchScale > 1:
		return fmt.Errorf("%w: player.wall_touch_scale must be in [0,1]", ErrInvalid)
	case c.Session.RestartDelay < 0:
		return fmt.Errorf("%w: session.restart_delay must not be negative", ErrInvalid)
	}
	return nil
}

// FixedStep returns the physics step duration.
func (c MazeConfig) FixedStep() time.Duration {
	if c.Physics.FixedRate <= 0 {
		return time.Second / 50
	}
	return time.Second / time.Duration(c.Physics.FixedRate)
}
