package scan

import (
	"github.com/talgya/hearthfind/internal/config"
	"github.com/talgya/hearthfind/internal/geom"
	"github.com/talgya/hearthfind/internal/settlement"
)

// Detector runs settlement inference against a world query port. It is
// stateless between calls and safe to reuse for any number of settlements.
type Detector struct {
	Port WorldQuery
	Cfg  config.Scan
}

// NewDetector wires a detector to a world query port with the given tuning.
func NewDetector(port WorldQuery, cfg config.Scan) *Detector {
	return &Detector{Port: port, Cfg: cfg}
}

// isAdjacent applies the fixed adjacency rule: both horizontal deltas
// within the expansion horizontal range and the vertical delta within the
// expansion vertical range, all bounds inclusive.
func (d *Detector) isAdjacent(a, b geom.Point) bool {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dz := a.Z - b.Z
	if dz < 0 {
		dz = -dz
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx <= d.Cfg.ExpansionHorizontal &&
		dz <= d.Cfg.ExpansionHorizontal &&
		dy <= d.Cfg.ExpansionVertical
}

// CollectConnectedPOIs returns every POI reachable from the anchor under
// the adjacency rule, breadth-first over the implicit transitive graph:
// two POIs farther apart than one hop still connect via intermediates.
//
// The anchor is unconditionally part of the result, as a meeting-point
// POI, whether or not the predicate admits meeting points. The returned
// set is independent of the order in which the port returns candidates.
// A port failure aborts collection and returns the POIs gathered so far
// alongside the error; callers degrade to the anchor-only set.
func (d *Detector) CollectConnectedPOIs(anchor geom.Point, pred settlement.CategoryPredicate) ([]settlement.PointOfInterest, error) {
	anchorPOI := settlement.PointOfInterest{
		Category: settlement.CategoryMeetingPoint,
		Position: anchor,
	}

	visited := map[geom.Point]bool{anchor: true}
	result := []settlement.PointOfInterest{anchorPOI}
	worklist := []geom.Point{anchor}

	radius := d.Cfg.SearchRadius()

	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		candidates, err := d.Port.FindPOIsNear(current, radius, pred)
		if err != nil {
			return result, &QueryError{Op: "find_pois_near", Err: err}
		}

		for _, cand := range candidates {
			if visited[cand.Position] {
				continue
			}
			if !d.isAdjacent(current, cand.Position) {
				continue
			}
			visited[cand.Position] = true
			result = append(result, cand)
			worklist = append(worklist, cand.Position)
		}
	}

	return result, nil
}
