package plan_models

import "time"

type ItemType string

const (
	ItemActivity ItemType = "activity"
	ItemMove     ItemType = "move"
)

// ItineraryItem is one timeline entry. Within a day, items strictly
// alternate activity, move, activity, ... and every move starts exactly
// where the preceding activity ends.
type ItineraryItem struct {
	Day             int      `json:"day"`
	Type            ItemType `json:"type"`
	Name            string   `json:"name,omitempty"`
	Category        string   `json:"category,omitempty"`
	Description     string   `json:"description,omitempty"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	DurationMinutes int      `json:"duration_minutes"`
	From            string   `json:"from,omitempty"`
	To              string   `json:"to,omitempty"`
	TransportMode   string   `json:"transport_mode,omitempty"`
	TransportDetail string   `json:"transport_detail,omitempty"`
	// Estimated marks legs whose duration came from the geometric
	// fallback or the conservative default instead of the provider.
	Estimated bool `json:"estimated,omitempty"`
}

// Itinerary is the flattened, ordered-by-day timeline. Rebuilt wholesale
// on every planning call.
type Itinerary []ItineraryItem

// DraftItem is the planner's input: an unscheduled venue assigned to a
// day. Pre-existing move entries in a draft are dropped and recomputed.
type DraftItem struct {
	Day         int    `json:"day"`
	Type        string `json:"type,omitempty"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// RouteOrder is a visiting order over a place list together with the
// total travel duration that order achieves.
type RouteOrder struct {
	Indices       []int         `json:"indices"`
	Places        []string      `json:"places"`
	TotalDuration time.Duration `json:"-"`
}
