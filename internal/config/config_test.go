package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg MazeConfig
	if err := yaml.Unmarshal(defaultMazeYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if expected := DefaultMazeConfig(); !reflect.DeepEqual(cfg, expected) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, expected)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultMazeConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadMazeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	data := []byte("maze:\n  size: 9\nplayer:\n  cue_time: 250ms\nsession:\n  restart_delay: 1s\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMaze(path)
	if err != nil {
		t.Fatalf("LoadMaze() error = %v", err)
	}
	if cfg.Maze.Size != 9 {
		t.Errorf("Maze.Size = %d, expected 9", cfg.Maze.Size)
	}
	if cfg.Player.CueTime != 250*time.Millisecond {
		t.Errorf("Player.CueTime = %v, expected 250ms", cfg.Player.CueTime)
	}
	if cfg.Session.RestartDelay != time.Second {
		t.Errorf("Session.RestartDelay = %v, expected 1s", cfg.Session.RestartDelay)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Maze.Scale != DefaultMazeConfig().Maze.Scale {
		t.Errorf("Maze.Scale = %v, expected default", cfg.Maze.Scale)
	}
}

func TestLoadMazeErrors(t *testing.T) {
	if _, err := LoadMaze(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadMaze(missing) should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("maze: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMaze(path); err == nil {
		t.Error("LoadMaze(bad yaml) should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MazeConfig)
	}{
		{"zero size", func(c *MazeConfig) { c.Maze.Size = 0 }},
		{"negative size", func(c *MazeConfig) { c.Maze.Size = -3 }},
		{"zero scale", func(c *MazeConfig) { c.Maze.Scale = 0 }},
		{"zero rate", func(c *MazeConfig) { c.Physics.FixedRate = 0 }},
		{"zero mass", func(c *MazeConfig) { c.Physics.Mass = 0 }},
		{"body too wide", func(c *MazeConfig) { c.Physics.Radius = 0.5 }},
		{"zero speed", func(c *MazeConfig) { c.Player.MovementSpeed = 0 }},
		{"zero cue", func(c *MazeConfig) { c.Player.CueTime = 0 }},
		{"touch scale", func(c *MazeConfig) { c.Player.WallTouchScale = 1.5 }},
		{"negative delay", func(c *MazeConfig) { c.Session.RestartDelay = -time.Second }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMazeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestFixedStep(t *testing.T) {
	cfg := DefaultMazeConfig()
	if got := cfg.FixedStep(); got != 20*time.Millisecond {
		t.Errorf("FixedStep() = %v, expected 20ms", got)
	}
	cfg.Physics.FixedRate = 0
	if got := cfg.FixedStep(); got != 20*time.Millisecond {
		t.Errorf("FixedStep() fallback = %v, expected 20ms", got)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestPresetSizes(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected int
	}{
		{DifficultyEasy, 5},
		{DifficultyNormal, 8},
		{DifficultyHard, 12},
	}
	for _, tc := range tests {
		cfg := DefaultMazeConfig()
		ApplyMazePreset(&cfg, tc.preset)
		dm := NewDifficultyManager(cfg.Difficulty)
		if got := dm.Size(cfg.Maze.Size, 0); got != tc.expected {
			t.Errorf("Size(%s) = %d, expected %d", tc.preset, got, tc.expected)
		}
	}
}

func TestDifficultyProgression(t *testing.T) {
	cfg := DefaultMazeConfig()
	ApplyMazePreset(&cfg, DifficultyEasy)
	dm := NewDifficultyManager(cfg.Difficulty)

	if got := dm.Level(0); got != 0 {
		t.Errorf("Level(0) = %v, expected 0", got)
	}
	if got := dm.Level(cfg.Difficulty.Progression.MaxAt); got != 1 {
		t.Errorf("Level(max) = %v, expected 1", got)
	}
	if got := dm.Level(100); got != 1 {
		t.Errorf("Level(100) = %v, expected clamp to 1", got)
	}
	if got := dm.Size(5, 100); got != 15 {
		t.Errorf("Size(5, 100) = %d, expected 15", got)
	}
	if got := dm.TouchScale(0.3, 100); got != 0.15 {
		t.Errorf("TouchScale(0.3, 100) = %v, expected 0.15", got)
	}

	ApplyMazePreset(&cfg, DifficultyFixed)
	fixed := NewDifficultyManager(cfg.Difficulty)
	if fixed.IsEnabled() {
		t.Error("fixed preset should disable progression")
	}
	if got := fixed.Size(5, 100); got != 5 {
		t.Errorf("fixed Size(5, 100) = %d, expected 5", got)
	}
}

func TestDifficultyManagerOverrides(t *testing.T) {
	dm := NewDifficultyManager(DefaultMazeConfig().Difficulty)

	dm.SetInitialLevel(2)
	if got := dm.Level(0); got != 1 {
		t.Errorf("Level() after SetInitialLevel(2) = %v, expected 1", got)
	}

	dm.SetInitialLevel(0.5)
	dm.SetEnabled(false)
	if got := dm.Level(10); got != 0.5 {
		t.Errorf("Level() disabled = %v, expected 0.5", got)
	}
}
