// Package worldgen provides a deterministic noise-backed voxel world that
// implements the scan query port. It exists so the demo command and
// integration tests can run the full detection pipeline without a live
// game world behind the port.
//
// Terrain derives from three independent simplex layers (elevation,
// rainfall, temperature), the same recipe the columns' biomes follow.
package worldgen

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hearthfind/internal/geom"
	"github.com/talgya/hearthfind/internal/settlement"
)

// GenConfig holds world generation parameters.
type GenConfig struct {
	Seed     int64 // Noise seed (0 = random)
	SeaLevel int   // Water fills columns up to this height
	BaseY    int   // Lowest surface height
	Relief   int   // Surface height span above BaseY
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Seed:     0,
		SeaLevel: 62,
		BaseY:    40,
		Relief:   80,
	}
}

// World is a procedurally generated voxel world plus a POI registry.
// All lookups are pure functions of the seed, so repeated queries for the
// same position always agree.
type World struct {
	Name string

	cfg  GenConfig
	elev opensimplex.Noise
	rain opensimplex.Noise
	temp opensimplex.Noise

	pois []settlement.PointOfInterest
}

// New creates a world with the given name and generation parameters.
func New(name string, cfg GenConfig) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	return &World{
		Name: name,
		cfg:  cfg,
		elev: opensimplex.NewNormalized(seed),
		rain: opensimplex.NewNormalized(seed + 1),
		temp: opensimplex.NewNormalized(seed + 2),
	}
}

// elevation returns the normalized terrain elevation of a column.
func (w *World) elevation(x, z int) float64 {
	return w.elev.Eval2(float64(x)*0.01, float64(z)*0.01)
}

// HighestSurfaceY returns the terrain surface height of a column. For
// flooded columns this is the seabed; water sits above it up to sea level.
func (w *World) HighestSurfaceY(x, z int) (int, error) {
	return w.cfg.BaseY + int(w.elevation(x, z)*float64(w.cfg.Relief)), nil
}

// BiomeAt names the biome of a position from the three noise layers.
func (w *World) BiomeAt(x, y, z int) (string, error) {
	surface, _ := w.HighestSurfaceY(x, z)
	rain := w.rain.Eval2(float64(x)*0.004, float64(z)*0.004)
	temp := w.temp.Eval2(float64(x)*0.004, float64(z)*0.004)

	switch {
	case surface < w.cfg.SeaLevel-8:
		return "deep_ocean", nil
	case surface < w.cfg.SeaLevel:
		// Shallow flooded terrain: wet inland channels read as rivers.
		if rain > 0.65 {
			return "river", nil
		}
		return "ocean", nil
	case surface <= w.cfg.SeaLevel+2:
		return "beach", nil
	case rain > 0.7 && temp > 0.5:
		return "swamp", nil
	case rain > 0.5:
		return "forest", nil
	case temp > 0.7:
		return "desert", nil
	case temp < 0.25:
		return "snowy_tundra", nil
	default:
		return "plains", nil
	}
}

// BlockKindAt returns the block kind at a position: stone below the
// surface, a biome top block at it, and water or air above it.
func (w *World) BlockKindAt(x, y, z int) (string, error) {
	surface, _ := w.HighestSurfaceY(x, z)

	switch {
	case y > surface && y <= w.cfg.SeaLevel:
		return "water", nil
	case y > surface:
		return "air", nil
	case y == surface:
		biome, _ := w.BiomeAt(x, y, z)
		switch biome {
		case "beach", "desert":
			return "sand", nil
		case "deep_ocean", "ocean", "river":
			return "gravel", nil
		default:
			return "grass_block", nil
		}
	default:
		return "stone", nil
	}
}

// FindPOIsNear returns registered POIs within a cuboid radius of center
// whose category passes the predicate.
func (w *World) FindPOIsNear(center geom.Point, radius int, pred settlement.CategoryPredicate) ([]settlement.PointOfInterest, error) {
	var out []settlement.PointOfInterest
	for _, p := range w.pois {
		dx := abs(p.Position.X - center.X)
		dy := abs(p.Position.Y - center.Y)
		dz := abs(p.Position.Z - center.Z)
		if dx > radius || dy > radius || dz > radius {
			continue
		}
		if pred != nil && !pred(p.Category) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// AddPOI registers a point of interest.
func (w *World) AddPOI(p settlement.PointOfInterest) {
	w.pois = append(w.pois, p)
}

// ScatterVillage seeds a meeting point at the anchor column's surface and
// scatters count resident POIs around it, each within one adjacency hop
// of the previous so the whole cluster flood-fills from the anchor.
// Returns the anchor position.
func (w *World) ScatterVillage(seed int64, anchorX, anchorZ, count, hopRange int) geom.Point {
	rng := rand.New(rand.NewSource(seed))

	surfaceY, _ := w.HighestSurfaceY(anchorX, anchorZ)
	anchor := geom.Point{X: anchorX, Y: surfaceY + 1, Z: anchorZ}
	w.AddPOI(settlement.PointOfInterest{
		Category: settlement.CategoryMeetingPoint,
		Position: anchor,
	})

	residential := []settlement.Category{
		settlement.CategorySleepingSpot,
		settlement.CategorySleepingSpot, // Beds dominate real villages
		settlement.CategoryFarmer,
		settlement.CategorySmith,
		settlement.CategoryFisher,
		settlement.CategoryMason,
		settlement.CategoryButcher,
		settlement.CategoryShepherd,
		settlement.CategoryArmorer,
	}

	prev := anchor
	for i := 0; i < count; i++ {
		// Hop at most hopRange on each horizontal axis from the previous
		// POI; chains can wander past direct reach of the anchor.
		x := prev.X + rng.Intn(2*hopRange+1) - hopRange
		z := prev.Z + rng.Intn(2*hopRange+1) - hopRange
		y, _ := w.HighestSurfaceY(x, z)

		p := settlement.PointOfInterest{
			Category: residential[rng.Intn(len(residential))],
			Position: geom.Point{X: x, Y: y + 1, Z: z},
		}
		w.AddPOI(p)
		prev = p.Position
	}

	return anchor
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
