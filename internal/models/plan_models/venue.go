package plan_models

import "strings"

// Category is the coarse venue classification used by filtering and stay
// estimation. Free-text category strings are classified once at the
// boundary; everything downstream only sees this enum.
type Category string

const (
	CategoryDining     Category = "dining"
	CategoryCafe       Category = "cafe"
	CategoryAttraction Category = "attraction"
	CategoryThemePark  Category = "theme_park"
	CategoryLodging    Category = "lodging"
	CategoryOther      Category = "other"
)

// ParseCategory reports whether raw already is a canonical Category
// value, so callers can skip free-text classification for exact inputs.
func ParseCategory(raw string) (Category, bool) {
	switch c := Category(strings.ToLower(strings.TrimSpace(raw))); c {
	case CategoryDining, CategoryCafe, CategoryAttraction,
		CategoryThemePark, CategoryLodging, CategoryOther:
		return c, true
	}
	return CategoryOther, false
}

// FilterBucket collapses the full enum into the four buckets the
// candidate filter compares against. Theme parks filter as attractions,
// lodging as other.
func (c Category) FilterBucket() Category {
	switch c {
	case CategoryThemePark:
		return CategoryAttraction
	case CategoryLodging:
		return CategoryOther
	default:
		return c
	}
}

// Coordinate is a WGS 84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// VenueCandidate is a transient record produced by a retriever and
// consumed by one filtering call. It is never persisted by the engine.
type VenueCandidate struct {
	Name        string      `json:"name"`
	Category    Category    `json:"category"`
	RawCategory string      `json:"raw_category,omitempty"`
	RegionText  string      `json:"region_text"`
	Description string      `json:"description,omitempty"`
	Coordinate  *Coordinate `json:"coordinate,omitempty"`
}
