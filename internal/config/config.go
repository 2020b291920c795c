// Package config loads engine tuning from a yaml file over built-in
// defaults. Every fixed constant of the detection and classification
// algorithms lives here so deployments can retune without a rebuild.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all tuning for detection, classification, and storage.
type Config struct {
	Scan    Scan    `yaml:"scan"`
	Terrain Terrain `yaml:"terrain"`
	DBPath  string  `yaml:"db_path"`
}

// Scan tunes POI collection and boundary synthesis.
type Scan struct {
	// Adjacency: two POIs are connected when |dx| and |dz| are within
	// ExpansionHorizontal and |dy| is within ExpansionVertical.
	ExpansionHorizontal int `yaml:"expansion_horizontal"`
	ExpansionVertical   int `yaml:"expansion_vertical"`

	// Margin applied around the tight POI box to produce claimed
	// territory, and the size of the fallback anchor-centered volume.
	InitialHorizontal int `yaml:"initial_horizontal"`
	InitialVertical   int `yaml:"initial_vertical"`
}

// SearchRadius is the per-hop world query radius: a candidate can sit a
// full adjacency hop beyond the claimed margin of the current position.
func (s Scan) SearchRadius() int {
	return s.ExpansionHorizontal + s.InitialHorizontal
}

// Terrain tunes the theme classifier's sampling.
type Terrain struct {
	SampleStep     int `yaml:"sample_step"`      // Perimeter/disc grid step in blocks
	MinWaterBlocks int `yaml:"min_water_blocks"` // Water samples required for coastal
	DiscRadius     int `yaml:"disc_radius"`      // Anchor disc radius when no bounds exist

	// Vertical sampling window around the surface, for water checks.
	WindowBelow int `yaml:"window_below"`
	WindowAbove int `yaml:"window_above"`

	RiverTokens []string `yaml:"river_tokens"`
	BeachTokens []string `yaml:"beach_tokens"`
	WaterBlocks []string `yaml:"water_blocks"`
}

// Default returns the shipped tuning.
func Default() Config {
	return Config{
		Scan: Scan{
			ExpansionHorizontal: 32,
			ExpansionVertical:   52,
			InitialHorizontal:   52,
			InitialVertical:     26,
		},
		Terrain: Terrain{
			SampleStep:     4,
			MinWaterBlocks: 10,
			DiscRadius:     52,
			WindowBelow:    2,
			WindowAbove:    1,
			RiverTokens:    []string{"river"},
			BeachTokens:    []string{"beach", "shore"},
			WaterBlocks: []string{
				"water", "lava", "kelp", "seagrass", "tall_seagrass", "lily_pad",
			},
		},
		DBPath: "data/hearthfind.db",
	}
}

// Load reads yaml from path on top of the defaults. A missing file is not
// an error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
