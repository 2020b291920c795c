// Package settlement defines the records this engine synthesizes:
// categorized points of interest and the settlement aggregate built from
// them. No authoritative settlement object exists in the world simulation;
// these types are the in-memory result of inference.
package settlement

import (
	"time"

	"github.com/google/uuid"

	"github.com/talgya/hearthfind/internal/geom"
)

// Category classifies a point of interest placed by the world simulation.
type Category uint8

const (
	CategoryUnknown      Category = iota
	CategoryMeetingPoint          // Anchor gathering point — seeds detection
	CategorySleepingSpot          // Claimed bed or bedroll
	CategoryArmorer               // Workstations follow
	CategoryButcher
	CategoryFarmer
	CategoryFisher
	CategoryMason
	CategorySmith
	CategoryShepherd
)

var categoryNames = map[Category]string{
	CategoryUnknown:      "unknown",
	CategoryMeetingPoint: "meeting_point",
	CategorySleepingSpot: "sleeping_spot",
	CategoryArmorer:      "armorer",
	CategoryButcher:      "butcher",
	CategoryFarmer:       "farmer",
	CategoryFisher:       "fisher",
	CategoryMason:        "mason",
	CategorySmith:        "smith",
	CategoryShepherd:     "shepherd",
}

// CategoryName returns the stable lowercase name for a category.
func CategoryName(c Category) string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "unknown"
}

// ParseCategory maps a stored name back to its category.
func ParseCategory(name string) Category {
	for c, n := range categoryNames {
		if n == name {
			return c
		}
	}
	return CategoryUnknown
}

// IsWorkstation reports whether the category is one of the workstation
// kinds (anything beyond meeting points and sleeping spots).
func (c Category) IsWorkstation() bool {
	return c >= CategoryArmorer && c <= CategoryShepherd
}

// PointOfInterest is an immutable categorized anchor position. Equality
// is by (category, position), so the struct is directly usable as a map key.
type PointOfInterest struct {
	Category Category   `json:"category"`
	Position geom.Point `json:"position"`
}

// CategoryPredicate decides which POI categories count toward a settlement.
type CategoryPredicate func(Category) bool

// ResidentialCategories is the default predicate: sleeping spots,
// workstations, and meeting points all claim territory.
func ResidentialCategories(c Category) bool {
	return c != CategoryUnknown
}

// Settlement is the aggregate record produced by detection: an identity,
// an anchor, the connected POI set, and a bounding volume. The POI set and
// boundary are replaced wholesale on every recalculation, never merged.
// Deletion is a storage concern; this engine never deletes a settlement.
type Settlement struct {
	ID     uuid.UUID  `json:"id"`
	World  string     `json:"world"`
	Anchor geom.Point `json:"anchor"`

	// Display name, assigned by the naming subsystem. Empty until named.
	Name string `json:"name,omitempty"`

	Bounds *geom.BoundingVolume `json:"bounds,omitempty"`

	POIs []PointOfInterest `json:"pois"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a settlement record for a freshly observed anchor.
func New(world string, anchor geom.Point) *Settlement {
	now := time.Now().UTC()
	return &Settlement{
		ID:        uuid.New(),
		World:     world,
		Anchor:    anchor,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetPOIs replaces the settlement's POI set, deduplicating by
// (category, position). Order of the stored slice is not significant.
func (s *Settlement) SetPOIs(pois []PointOfInterest) {
	seen := make(map[PointOfInterest]bool, len(pois))
	out := make([]PointOfInterest, 0, len(pois))
	for _, p := range pois {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	s.POIs = out
}

// HasPOI reports set membership by (category, position).
func (s *Settlement) HasPOI(p PointOfInterest) bool {
	for _, q := range s.POIs {
		if q == p {
			return true
		}
	}
	return false
}
