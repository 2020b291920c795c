// Package scan infers a settlement's extent from the world's sparse POI
// graph: breadth-first collection of connected POIs, boundary synthesis,
// and the recalculation entry point that ties them together.
//
// Everything here is synchronous and holds no state between calls; the
// host simulation is expected to invoke it from its single world-update
// context and to throttle recalculation frequency itself.
package scan

import (
	"fmt"

	"github.com/talgya/hearthfind/internal/geom"
	"github.com/talgya/hearthfind/internal/settlement"
)

// WorldQuery is the read-only port into the surrounding world simulation.
// Implementations may fail; failures are recovered by callers in this
// package and never propagate as fatal errors.
type WorldQuery interface {
	// FindPOIsNear returns POIs within radius of center whose category
	// satisfies the predicate. The cuboid vs spherical interpretation of
	// radius is the implementation's choice; collection re-checks exact
	// adjacency on every candidate.
	FindPOIsNear(center geom.Point, radius int, pred settlement.CategoryPredicate) ([]settlement.PointOfInterest, error)

	// HighestSurfaceY returns the terrain surface height of a column.
	HighestSurfaceY(x, z int) (int, error)

	// BiomeAt returns the biome identifier at a position.
	BiomeAt(x, y, z int) (string, error)

	// BlockKindAt returns the block kind identifier at a position.
	BlockKindAt(x, y, z int) (string, error)
}

// QueryError wraps a world query failure with the operation that raised it.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("world query %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
