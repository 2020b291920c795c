// Package terrain classifies the environmental character of a settlement
// by sampling voxel and biome data along its boundary, or around its
// anchor when no boundary exists yet. Themes are independent booleans;
// picking a single winner among simultaneous matches belongs to the
// naming subsystem, not here.
package terrain

import (
	"log/slog"
	"strings"

	"github.com/talgya/hearthfind/internal/config"
	"github.com/talgya/hearthfind/internal/geom"
	"github.com/talgya/hearthfind/internal/scan"
	"github.com/talgya/hearthfind/internal/settlement"
)

// Themes is the full boolean match set for one settlement. Themes may
// co-occur; none is privileged.
type Themes struct {
	Coastal       bool `json:"coastal"`
	Riverine      bool `json:"riverine"`
	BeachAdjacent bool `json:"beach_adjacent"`
}

// Classifier samples world data through the query port. Stateless and
// reusable across settlements.
type Classifier struct {
	Port scan.WorldQuery
	Cfg  config.Terrain
}

// NewClassifier wires a classifier to a world query port.
func NewClassifier(port scan.WorldQuery, cfg config.Terrain) *Classifier {
	return &Classifier{Port: port, Cfg: cfg}
}

// column is one sampled (x, z) position.
type column struct {
	x, z int
}

// Classify decides each theme independently for the settlement. Query
// failures degrade that theme to false and are logged; classification
// itself never fails.
func (c *Classifier) Classify(s *settlement.Settlement) Themes {
	cols := c.sampleColumns(s)
	return Themes{
		Coastal:       c.coastal(s, cols),
		Riverine:      c.biomeMatch(s, cols, c.Cfg.RiverTokens),
		BeachAdjacent: c.biomeMatch(s, cols, c.Cfg.BeachTokens),
	}
}

// sampleColumns walks the boundary perimeter at the configured step, or
// falls back to a grid-sampled disc around the anchor when the settlement
// has no boundary yet.
func (c *Classifier) sampleColumns(s *settlement.Settlement) []column {
	step := c.Cfg.SampleStep
	if step < 1 {
		step = 1
	}

	if b := s.Bounds; b != nil {
		return perimeterColumns(*b, step)
	}
	return discColumns(s.Anchor, c.Cfg.DiscRadius, step)
}

// perimeterColumns samples the rectangular outline of the volume along
// both axes. Corner columns appear once.
func perimeterColumns(b geom.BoundingVolume, step int) []column {
	var cols []column
	for x := b.MinX; x <= b.MaxX; x += step {
		cols = append(cols, column{x, b.MinZ})
		if b.MaxZ != b.MinZ {
			cols = append(cols, column{x, b.MaxZ})
		}
	}
	for z := b.MinZ + step; z <= b.MaxZ-step; z += step {
		cols = append(cols, column{b.MinX, z})
		if b.MaxX != b.MinX {
			cols = append(cols, column{b.MaxX, z})
		}
	}
	return cols
}

// discColumns samples a regular grid over the disc of the given radius,
// discarding grid points outside the circle.
func discColumns(anchor geom.Point, radius, step int) []column {
	var cols []column
	for dx := -radius; dx <= radius; dx += step {
		for dz := -radius; dz <= radius; dz += step {
			if dx*dx+dz*dz > radius*radius {
				continue
			}
			cols = append(cols, column{anchor.X + dx, anchor.Z + dz})
		}
	}
	return cols
}

// coastal counts water-family voxels in a small vertical window around
// each sampled column's surface, short-circuiting true at the threshold.
func (c *Classifier) coastal(s *settlement.Settlement, cols []column) bool {
	threshold := c.Cfg.MinWaterBlocks
	if threshold < 1 {
		threshold = 1
	}

	count := 0
	for _, col := range cols {
		ys, err := c.Port.HighestSurfaceY(col.x, col.z)
		if err != nil {
			c.warnDegraded(s, "highest_surface_y", err)
			return false
		}
		for y := ys - c.Cfg.WindowBelow; y <= ys+c.Cfg.WindowAbove; y++ {
			kind, err := c.Port.BlockKindAt(col.x, y, col.z)
			if err != nil {
				c.warnDegraded(s, "block_kind_at", err)
				return false
			}
			if c.isWaterFamily(kind) {
				count++
				if count >= threshold {
					return true
				}
			}
		}
	}
	return false
}

// biomeMatch succeeds on the first sampled biome whose identifier
// contains any allow-list token, case-insensitively. One match suffices.
func (c *Classifier) biomeMatch(s *settlement.Settlement, cols []column, tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	for _, col := range cols {
		ys, err := c.Port.HighestSurfaceY(col.x, col.z)
		if err != nil {
			c.warnDegraded(s, "highest_surface_y", err)
			return false
		}
		biome, err := c.Port.BiomeAt(col.x, ys, col.z)
		if err != nil {
			c.warnDegraded(s, "biome_at", err)
			return false
		}
		lower := strings.ToLower(biome)
		for _, tok := range tokens {
			if strings.Contains(lower, strings.ToLower(tok)) {
				return true
			}
		}
	}
	return false
}

func (c *Classifier) isWaterFamily(kind string) bool {
	for _, w := range c.Cfg.WaterBlocks {
		if strings.EqualFold(kind, w) {
			return true
		}
	}
	return false
}

func (c *Classifier) warnDegraded(s *settlement.Settlement, op string, err error) {
	slog.Warn("terrain sampling failed, theme degraded to no-match",
		"settlement", s.ID, "op", op, "error", err)
}
