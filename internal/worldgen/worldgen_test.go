package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hearthfind/internal/geom"
	"github.com/talgya/hearthfind/internal/settlement"
)

func testWorld(seed int64) *World {
	cfg := DefaultGenConfig()
	cfg.Seed = seed
	return New("overworld", cfg)
}

func TestWorldIsDeterministic(t *testing.T) {
	a := testWorld(42)
	b := testWorld(42)

	for _, c := range [][2]int{{0, 0}, {100, -250}, {-3000, 77}, {12345, 54321}} {
		ya, err := a.HighestSurfaceY(c[0], c[1])
		require.NoError(t, err)
		yb, err := b.HighestSurfaceY(c[0], c[1])
		require.NoError(t, err)
		assert.Equal(t, ya, yb)

		ba, err := a.BiomeAt(c[0], ya, c[1])
		require.NoError(t, err)
		bb, err := b.BiomeAt(c[0], yb, c[1])
		require.NoError(t, err)
		assert.Equal(t, ba, bb)
	}
}

func TestSurfaceWithinConfiguredRelief(t *testing.T) {
	w := testWorld(7)
	cfg := DefaultGenConfig()

	for x := -400; x <= 400; x += 37 {
		for z := -400; z <= 400; z += 41 {
			y, err := w.HighestSurfaceY(x, z)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, y, cfg.BaseY)
			assert.LessOrEqual(t, y, cfg.BaseY+cfg.Relief)
		}
	}
}

func TestBlockColumnLayers(t *testing.T) {
	w := testWorld(42)

	// Find one flooded and one dry column; the default relief spans both.
	var floodedX, floodedZ, dryX, dryZ int
	foundFlooded, foundDry := false, false
	for x := 0; x < 4000 && !(foundFlooded && foundDry); x += 16 {
		y, err := w.HighestSurfaceY(x, 0)
		require.NoError(t, err)
		if y < w.cfg.SeaLevel && !foundFlooded {
			floodedX, floodedZ = x, 0
			foundFlooded = true
		}
		if y > w.cfg.SeaLevel+2 && !foundDry {
			dryX, dryZ = x, 0
			foundDry = true
		}
	}
	require.True(t, foundFlooded, "no flooded column in scan range")
	require.True(t, foundDry, "no dry column in scan range")

	surface, _ := w.HighestSurfaceY(floodedX, floodedZ)
	kind, err := w.BlockKindAt(floodedX, surface+1, floodedZ)
	require.NoError(t, err)
	assert.Equal(t, "water", kind, "flooded columns carry water above the seabed")

	kind, err = w.BlockKindAt(floodedX, surface-5, floodedZ)
	require.NoError(t, err)
	assert.Equal(t, "stone", kind)

	surface, _ = w.HighestSurfaceY(dryX, dryZ)
	kind, err = w.BlockKindAt(dryX, surface+1, dryZ)
	require.NoError(t, err)
	assert.Equal(t, "air", kind)
}

func TestFindPOIsNearFiltersByRadiusAndPredicate(t *testing.T) {
	w := testWorld(1)
	near := settlement.PointOfInterest{
		Category: settlement.CategorySleepingSpot,
		Position: geom.Point{X: 10, Y: 64, Z: 10},
	}
	far := settlement.PointOfInterest{
		Category: settlement.CategorySmith,
		Position: geom.Point{X: 200, Y: 64, Z: 10},
	}
	w.AddPOI(near)
	w.AddPOI(far)

	got, err := w.FindPOIsNear(geom.Point{X: 0, Y: 64, Z: 0}, 84, settlement.ResidentialCategories)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, near, got[0])

	onlySmiths := func(c settlement.Category) bool { return c == settlement.CategorySmith }
	got, err = w.FindPOIsNear(geom.Point{X: 0, Y: 64, Z: 0}, 84, onlySmiths)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScatterVillageSeedsAnchorAndResidents(t *testing.T) {
	w := testWorld(42)
	anchor := w.ScatterVillage(99, 100, 200, 12, 32)

	surface, _ := w.HighestSurfaceY(100, 200)
	assert.Equal(t, geom.Point{X: 100, Y: surface + 1, Z: 200}, anchor)

	meetingOnly := func(c settlement.Category) bool { return c == settlement.CategoryMeetingPoint }
	got, err := w.FindPOIsNear(anchor, 1, meetingOnly)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, anchor, got[0].Position)

	assert.Len(t, w.pois, 13, "anchor plus twelve residents")
}
