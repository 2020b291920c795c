package scan

import (
	"log/slog"
	"time"

	"github.com/talgya/hearthfind/internal/geom"
	"github.com/talgya/hearthfind/internal/settlement"
)

// Detect creates a settlement record for a freshly observed anchor and
// runs its first recalculation. The caller decides when an anchor counts
// as "fresh" (no record exists in the repository for it yet).
func (d *Detector) Detect(world string, anchor geom.Point, pred settlement.CategoryPredicate) *settlement.Settlement {
	s := settlement.New(world, anchor)
	d.Recalculate(s, pred)
	return s
}

// Recalculate rebuilds a settlement's POI set and boundary from scratch,
// replacing both wholesale. Query failures degrade to the anchor-only POI
// set and the anchor-centered default volume; distinct causes surface in
// the diagnostics but the observable outcome is always a usable record.
// Recalculate never fails.
func (d *Detector) Recalculate(s *settlement.Settlement, pred settlement.CategoryPredicate) {
	pois, err := d.CollectConnectedPOIs(s.Anchor, pred)
	if err != nil {
		slog.Warn("poi collection failed, degrading to anchor-only settlement",
			"settlement", s.ID, "world", s.World, "error", err)
		pois = []settlement.PointOfInterest{{
			Category: settlement.CategoryMeetingPoint,
			Position: s.Anchor,
		}}
	} else if len(pois) <= 1 {
		slog.Debug("no pois connected to anchor",
			"settlement", s.ID, "world", s.World, "anchor", s.Anchor)
	}

	positions := make([]geom.Point, len(pois))
	for i, p := range pois {
		positions[i] = p.Position
	}

	bounds := SynthesizeBoundary(positions, s.Anchor, d.Cfg)

	s.SetPOIs(pois)
	s.Bounds = &bounds
	s.UpdatedAt = time.Now().UTC()

	slog.Debug("settlement recalculated",
		"settlement", s.ID,
		"pois", len(s.POIs),
		"width", bounds.Width(), "depth", bounds.Depth(),
	)
}
