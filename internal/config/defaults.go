package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Maze: MazeLayout{
			Size:  5,
			Scale: 1.0,
		},
		Player: MazePlayer{
			MovementSpeed:       12,
			RotationSensitivity: 180,
			CueTime:             150 * time.Millisecond,
			WallTouchScale:      0.3,
			MoveThreshold:       0.01,
		},
		Physics: MazePhysics{
			FixedRate:  50,
			Radius:     0.3,
			Mass:       1,
			LinearDrag: 4,
			MaxSpeed:   4,
			Skin:       0.01,
		},
		Audio: MazeAudio{
			Enabled:   true,
			Frequency: 220,
		},
		Session: MazeSession{
			RestartDelay: 3 * time.Second,
			ShowWalls:    false,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "wins",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				SizeGrowth:     10,
				TouchReduction: 0.5,
			},
		},
	}
}
