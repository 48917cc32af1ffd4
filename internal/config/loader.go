package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileName is the config file looked up in every search directory.
const fileName = "maze.yaml"

// LoadMaze reads the maze configuration.
//
// An explicit path must exist and parse. Without one the first readable,
// well-formed file among ~/.maze/configs/maze.yaml and ./configs/maze.yaml
// wins, then the embedded defaults. Keys missing from a file keep their
// default values.
func LoadMaze(customPath string) (MazeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultMazeConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DefaultMazeConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := decode(defaultMazeYAML); err == nil {
		return cfg, nil
	}
	return DefaultMazeConfig(), nil
}

// decode overlays data on the hardcoded defaults.
func decode(data []byte) (MazeConfig, error) {
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MazeConfig{}, err
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations, most specific first.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".maze", "configs", fileName))
	}
	return append(paths, filepath.Join("configs", fileName))
}

// ApplyMazePreset sets the starting difficulty. The fixed preset turns
// progression off and leaves the configured level alone.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)
	if cfg.Difficulty.Enabled {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
