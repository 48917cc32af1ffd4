package player

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by Config.Validate failures.
var ErrInvalidConfig = errors.New("player: invalid config")

// Config holds the tuning values of a controller.
type Config struct {
	MovementSpeed       float64       // Force applied at full stick deflection
	RotationSensitivity float64       // Degrees per second at full look deflection
	CueTime             time.Duration // Length of a collision pulse
	WallTouchScale      float64       // Gain of the drag cue relative to a pulse
	MoveThreshold       float64       // Minimum speed that counts as dragging
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		MovementSpeed:       12,
		RotationSensitivity: 180,
		CueTime:             150 * time.Millisecond,
		WallTouchScale:      0.3,
		MoveThreshold:       0.01,
	}
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	switch {
	case c.MovementSpeed <= 0:
		return fmt.Errorf("%w: movement speed must be positive", ErrInvalidConfig)
	case c.RotationSensitivity < 0:
		return fmt.Errorf("%w: rotation sensitivity must not be negative", ErrInvalidConfig)
	case c.CueTime <= 0:
		return fmt.Errorf("%w: cue time must be positive", ErrInvalidConfig)
	case c.WallTouchScale < 0 || c.WallTouchScale > 1:
		return fmt.Errorf("%w: wall touch scale must be in [0,1]", ErrInvalidConfig)
	case c.MoveThreshold < 0:
		return fmt.Errorf("%w: move threshold must not be negative", ErrInvalidConfig)
	}
	return nil
}
