package settlement

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hearthfind/internal/geom"
)

func TestNewSettlement(t *testing.T) {
	anchor := geom.Point{X: 100, Y: 64, Z: 200}
	s := New("overworld", anchor)

	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, "overworld", s.World)
	assert.Equal(t, anchor, s.Anchor)
	assert.Nil(t, s.Bounds)
	assert.Empty(t, s.POIs)
	assert.False(t, s.CreatedAt.IsZero())
	assert.Equal(t, s.CreatedAt, s.UpdatedAt)
}

func TestSetPOIsDeduplicates(t *testing.T) {
	s := New("overworld", geom.Point{})

	bed := PointOfInterest{Category: CategorySleepingSpot, Position: geom.Point{X: 1, Y: 64, Z: 1}}
	smith := PointOfInterest{Category: CategorySmith, Position: geom.Point{X: 5, Y: 64, Z: 5}}
	// Same position as the bed but a different category: a distinct POI.
	smithAtBed := PointOfInterest{Category: CategorySmith, Position: bed.Position}

	s.SetPOIs([]PointOfInterest{bed, smith, bed, smithAtBed, smith})

	require.Len(t, s.POIs, 3)
	assert.True(t, s.HasPOI(bed))
	assert.True(t, s.HasPOI(smith))
	assert.True(t, s.HasPOI(smithAtBed))
}

func TestSetPOIsReplacesPreviousSet(t *testing.T) {
	s := New("overworld", geom.Point{})

	old := PointOfInterest{Category: CategoryFarmer, Position: geom.Point{X: 9, Y: 64, Z: 9}}
	s.SetPOIs([]PointOfInterest{old})
	require.True(t, s.HasPOI(old))

	fresh := PointOfInterest{Category: CategoryMason, Position: geom.Point{X: 2, Y: 64, Z: 2}}
	s.SetPOIs([]PointOfInterest{fresh})

	assert.False(t, s.HasPOI(old), "recalculation replaces, never merges")
	assert.True(t, s.HasPOI(fresh))
	assert.Len(t, s.POIs, 1)
}

func TestCategoryNames(t *testing.T) {
	for c, want := range map[Category]string{
		CategoryMeetingPoint: "meeting_point",
		CategorySleepingSpot: "sleeping_spot",
		CategorySmith:        "smith",
		CategoryUnknown:      "unknown",
	} {
		assert.Equal(t, want, CategoryName(c))
		assert.Equal(t, c, ParseCategory(want))
	}
	assert.Equal(t, CategoryUnknown, ParseCategory("no_such_category"))
}

func TestIsWorkstation(t *testing.T) {
	assert.True(t, CategorySmith.IsWorkstation())
	assert.True(t, CategoryFarmer.IsWorkstation())
	assert.False(t, CategoryMeetingPoint.IsWorkstation())
	assert.False(t, CategorySleepingSpot.IsWorkstation())
	assert.False(t, CategoryUnknown.IsWorkstation())
}
