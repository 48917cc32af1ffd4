package config

import "math"

// DifficultyManager turns the difficulty level and the session's win count
// into maze parameters. With "wins" progression the level climbs linearly
// from its start to 1.0 over Progression.MaxAt wins.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficultyManager creates a manager starting at cfg.InitialLevel.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: unit(cfg.InitialLevel)}
}

// SetInitialLevel moves the starting level, clamped to [0, 1].
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.start = unit(level)
}

// SetEnabled switches progression on or off.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether the level grows with wins.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type == "wins"
}

// Level returns the level in [0, 1] after the given number of wins.
func (d *DifficultyManager) Level(wins int) float64 {
	if !d.IsEnabled() {
		return d.start
	}
	span := max(float64(d.cfg.Progression.MaxAt), 1)
	return d.start + unit(float64(wins)/span)*(1-d.start)
}

// Size returns cells per side: the base size grown by up to Scaling.SizeGrowth.
func (d *DifficultyManager) Size(base, wins int) int {
	return base + int(math.Round(d.Level(wins)*float64(d.cfg.Scaling.SizeGrowth)))
}

// TouchScale returns the drag cue gain. Harder mazes scrape more faintly.
func (d *DifficultyManager) TouchScale(base float64, wins int) float64 {
	return base * (1 - d.Level(wins)*unit(d.cfg.Scaling.TouchReduction))
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
