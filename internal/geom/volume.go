// Package geom provides integer voxel-space geometry primitives: points
// and axis-aligned bounding volumes with a stored center.
package geom

import (
	"fmt"
	"math"
)

// World height bounds. Volumes with corners outside this vertical range
// are rejected at construction.
const (
	WorldMinY = -64
	WorldMaxY = 320
)

// Point is a voxel position in world space.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// BoundingVolume is an axis-aligned box in voxel space, inclusive on all
// six faces, with a stored center. The center defaults to the geometric
// midpoint but may be set explicitly and is never recomputed by expansion
// operations — historically assigned centers survive incremental growth.
type BoundingVolume struct {
	MinX int `json:"min_x"`
	MinY int `json:"min_y"`
	MinZ int `json:"min_z"`
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
	MaxZ int `json:"max_z"`

	CenterX int `json:"center_x"`
	CenterY int `json:"center_y"`
	CenterZ int `json:"center_z"`
}

// NewVolume builds a volume from two opposite corners given in any order.
// Corner coordinates are normalized by swapping so that min <= max per
// axis. Vertical coordinates outside the world height range are rejected.
func NewVolume(x1, y1, z1, x2, y2, z2 int) (BoundingVolume, error) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if z1 > z2 {
		z1, z2 = z2, z1
	}
	if y1 < WorldMinY || y2 > WorldMaxY {
		return BoundingVolume{}, fmt.Errorf("geom: vertical range %d..%d outside world height %d..%d", y1, y2, WorldMinY, WorldMaxY)
	}

	v := BoundingVolume{
		MinX: x1, MinY: y1, MinZ: z1,
		MaxX: x2, MaxY: y2, MaxZ: z2,
	}
	v.CenterX = (x1 + x2) / 2
	v.CenterY = (y1 + y2) / 2
	v.CenterZ = (z1 + z2) / 2
	return v, nil
}

// FromAnchor builds a volume of size (2h+1, 2v+1, 2h+1) centered exactly
// on the anchor. The vertical extent is clamped into world height by the
// caller choosing a sane v; out-of-world results are rejected like NewVolume.
func FromAnchor(anchor Point, hRadius, vRadius int) (BoundingVolume, error) {
	v, err := NewVolume(
		anchor.X-hRadius, anchor.Y-vRadius, anchor.Z-hRadius,
		anchor.X+hRadius, anchor.Y+vRadius, anchor.Z+hRadius,
	)
	if err != nil {
		return BoundingVolume{}, err
	}
	v.CenterX = anchor.X
	v.CenterY = anchor.Y
	v.CenterZ = anchor.Z
	return v, nil
}

// Center returns the stored center point.
func (b BoundingVolume) Center() Point {
	return Point{X: b.CenterX, Y: b.CenterY, Z: b.CenterZ}
}

// SetCenter overrides the stored center without touching the corners.
func (b *BoundingVolume) SetCenter(p Point) {
	b.CenterX = p.X
	b.CenterY = p.Y
	b.CenterZ = p.Z
}

// Width is the x extent in blocks (inclusive bounds).
func (b BoundingVolume) Width() int { return b.MaxX - b.MinX + 1 }

// Height is the y extent in blocks.
func (b BoundingVolume) Height() int { return b.MaxY - b.MinY + 1 }

// Depth is the z extent in blocks.
func (b BoundingVolume) Depth() int { return b.MaxZ - b.MinZ + 1 }

// Volume returns the block count as int64; large settlements overflow int32.
func (b BoundingVolume) Volume() int64 {
	return int64(b.Width()) * int64(b.Height()) * int64(b.Depth())
}

// Perimeter returns the horizontal perimeter length 2*(width+depth).
func (b BoundingVolume) Perimeter() int {
	return 2 * (b.Width() + b.Depth())
}

// ContainsPoint reports whether the position lies inside the volume,
// faces inclusive.
func (b BoundingVolume) ContainsPoint(x, y, z int) bool {
	return x >= b.MinX && x <= b.MaxX &&
		y >= b.MinY && y <= b.MaxY &&
		z >= b.MinZ && z <= b.MaxZ
}

// ContainsHorizontal reports containment ignoring the vertical axis.
// Entrance scans use this where column height is irrelevant.
func (b BoundingVolume) ContainsHorizontal(x, z int) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

// Overlaps reports whether the two volumes intersect, inclusive on all
// three axes.
func (b BoundingVolume) Overlaps(o BoundingVolume) bool {
	return b.MaxX >= o.MinX && b.MinX <= o.MaxX &&
		b.MaxY >= o.MinY && b.MinY <= o.MaxY &&
		b.MaxZ >= o.MinZ && b.MinZ <= o.MaxZ
}

// Expand grows all six faces outward by the given horizontal and vertical
// deltas. The stored center is unchanged.
func (b BoundingVolume) Expand(hDelta, vDelta int) BoundingVolume {
	out := b
	out.MinX -= hDelta
	out.MaxX += hDelta
	out.MinY -= vDelta
	out.MaxY += vDelta
	out.MinZ -= hDelta
	out.MaxZ += hDelta
	return out
}

// ExpandToInclude grows only the faces needed to contain the point. A
// point already inside is a no-op. The stored center is not recomputed.
func (b BoundingVolume) ExpandToInclude(p Point) BoundingVolume {
	out := b
	if p.X < out.MinX {
		out.MinX = p.X
	}
	if p.X > out.MaxX {
		out.MaxX = p.X
	}
	if p.Y < out.MinY {
		out.MinY = p.Y
	}
	if p.Y > out.MaxY {
		out.MaxY = p.Y
	}
	if p.Z < out.MinZ {
		out.MinZ = p.Z
	}
	if p.Z > out.MaxZ {
		out.MaxZ = p.Z
	}
	return out
}

// DistanceToEdge returns a signed 2D distance from the column (x, z) to
// the volume's horizontal boundary. Columns inside the volume get the
// negated distance inward to the nearest face; columns outside get the
// positive Euclidean distance to the nearest face or corner. Boundary
// ranking downstream relies on this sign convention.
func (b BoundingVolume) DistanceToEdge(x, z int) float64 {
	if b.ContainsHorizontal(x, z) {
		d := x - b.MinX
		if v := b.MaxX - x; v < d {
			d = v
		}
		if v := z - b.MinZ; v < d {
			d = v
		}
		if v := b.MaxZ - z; v < d {
			d = v
		}
		return -float64(d)
	}

	dx := 0
	if x < b.MinX {
		dx = b.MinX - x
	} else if x > b.MaxX {
		dx = x - b.MaxX
	}
	dz := 0
	if z < b.MinZ {
		dz = b.MinZ - z
	} else if z > b.MaxZ {
		dz = z - b.MaxZ
	}
	return math.Sqrt(float64(dx*dx + dz*dz))
}
