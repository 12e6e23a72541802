package models

// Itinerary is one bookable combination of legs satisfying a
// SearchSpecification. Constructed, never persisted; recomputed whenever the
// specification or the remote snapshots change.
type Itinerary struct {
	ID            int            `json:"id"`
	TripType      string         `json:"tripType"`
	Flights       []FlightRecord `json:"flights"`
	TotalPrice    float64        `json:"totalPrice"`
	TotalDuration string         `json:"totalDuration,omitempty"`
}
