package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hearthfind/internal/config"
	"github.com/talgya/hearthfind/internal/settlement"
	"github.com/talgya/hearthfind/internal/worldgen"
)

// Runs detection against the generated demo world instead of a hand-built
// mock, end to end.
func TestDetectAgainstGeneratedWorld(t *testing.T) {
	genCfg := worldgen.DefaultGenConfig()
	genCfg.Seed = 42
	world := worldgen.New("overworld", genCfg)

	cfg := config.Default().Scan
	anchor := world.ScatterVillage(7, 0, 0, 10, cfg.ExpansionHorizontal)

	d := NewDetector(world, cfg)
	s := d.Detect(world.Name, anchor, settlement.ResidentialCategories)

	require.NotNil(t, s.Bounds)
	require.NotEmpty(t, s.POIs)
	assert.True(t, s.HasPOI(settlement.PointOfInterest{
		Category: settlement.CategoryMeetingPoint,
		Position: anchor,
	}))

	// Every collected POI sits inside the synthesized territory.
	for _, p := range s.POIs {
		assert.True(t, s.Bounds.ContainsPoint(p.Position.X, p.Position.Y, p.Position.Z),
			"poi %+v outside bounds", p)
	}

	// Rerunning detection from the same anchor reproduces the same set.
	again := d.Detect(world.Name, anchor, settlement.ResidentialCategories)
	assert.Equal(t, asSet(s.POIs), asSet(again.POIs))
	assert.Equal(t, *s.Bounds, *again.Bounds)
}
