package scan

import (
	"log/slog"

	"github.com/talgya/hearthfind/internal/config"
	"github.com/talgya/hearthfind/internal/geom"
)

// SynthesizeBoundary converts a connected POI position set into claimed
// territory: the componentwise tight box around the positions, expanded
// on every face by the initial radii. Claimed territory extends that
// margin beyond the outermost claimed POI. Note the margin is the initial
// radius, not the larger expansion range POIs were discovered with.
//
// An empty position list falls back to an anchor-centered volume of the
// initial radii. Synthesis never fails: a result is always a usable, if
// imprecise, volume.
func SynthesizeBoundary(positions []geom.Point, anchor geom.Point, cfg config.Scan) geom.BoundingVolume {
	if len(positions) == 0 {
		return anchorFallback(anchor, cfg)
	}

	minX, minY, minZ := positions[0].X, positions[0].Y, positions[0].Z
	maxX, maxY, maxZ := minX, minY, minZ
	for _, p := range positions[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
		if p.Z < minZ {
			minZ = p.Z
		}
		if p.Z > maxZ {
			maxZ = p.Z
		}
	}

	minY, maxY = clampVertical(minY-cfg.InitialVertical, maxY+cfg.InitialVertical)
	v, err := geom.NewVolume(
		minX-cfg.InitialHorizontal, minY, minZ-cfg.InitialHorizontal,
		maxX+cfg.InitialHorizontal, maxY, maxZ+cfg.InitialHorizontal,
	)
	if err != nil {
		slog.Warn("boundary synthesis rejected poi box, using anchor fallback", "error", err)
		return anchorFallback(anchor, cfg)
	}
	return v
}

// anchorFallback builds the default anchor-centered volume, bounding its
// vertical extent into world height so the fallback itself cannot fail.
func anchorFallback(anchor geom.Point, cfg config.Scan) geom.BoundingVolume {
	minY, maxY := clampVertical(anchor.Y-cfg.InitialVertical, anchor.Y+cfg.InitialVertical)
	v, err := geom.NewVolume(
		anchor.X-cfg.InitialHorizontal, minY, anchor.Z-cfg.InitialHorizontal,
		anchor.X+cfg.InitialHorizontal, maxY, anchor.Z+cfg.InitialHorizontal,
	)
	if err != nil {
		// Unreachable after clamping; keep the degraded guarantee anyway.
		v = geom.BoundingVolume{
			MinX: anchor.X, MinY: anchor.Y, MinZ: anchor.Z,
			MaxX: anchor.X, MaxY: anchor.Y, MaxZ: anchor.Z,
		}
	}
	v.SetCenter(anchor)
	return v
}

func clampVertical(minY, maxY int) (int, int) {
	if minY < geom.WorldMinY {
		minY = geom.WorldMinY
	}
	if maxY > geom.WorldMaxY {
		maxY = geom.WorldMaxY
	}
	return minY, maxY
}
