package models

// FilterState defaults. The results view opens with the wide ceiling; the
// filter panel's reset button restores the narrower one.
const (
	DefaultMaxPrice = 50000
	PanelMaxPrice   = 15000
)

// FilterState holds the user-adjustable predicates applied client-side to a
// constructed itinerary list. Empty sets mean "no filtering on that
// dimension"; a zero MaxPrice means "no limit".
type FilterState struct {
	MaxPrice       float64  `json:"maxPrice"`
	Stops          []string `json:"stops,omitempty"`
	Airlines       []string `json:"airlines,omitempty"`
	DepTimeBuckets []string `json:"depTimeBuckets,omitempty"`
	ArrTimeBuckets []string `json:"arrTimeBuckets,omitempty"`
}
