package models

type SearchMetadata struct {
	TotalResults int    `json:"total_results"`
	SearchTimeMs int64  `json:"search_time_ms"`
	CacheHit     bool   `json:"cache_hit"`
	Sequence     uint64 `json:"sequence"`
}

// SearchResponse carries one-way and multi-city results. NoFlightsFound is
// only reachable under the require-inventory retention policy; the default
// policy always synthesizes a fallback itinerary instead.
type SearchResponse struct {
	Specification  SearchSpecification `json:"specification"`
	Metadata       SearchMetadata      `json:"metadata"`
	Itineraries    []Itinerary         `json:"itineraries"`
	UniqueAirlines []string            `json:"unique_airlines"`
	NoFlightsFound bool                `json:"no_flights_found,omitempty"`
}

// RoundTripResponse carries the two independently selectable direction lists.
// GrandTotal is the sum of the default selections (first of each list).
type RoundTripResponse struct {
	Specification  SearchSpecification `json:"specification"`
	Metadata       SearchMetadata      `json:"metadata"`
	Outbound       []FlightRecord      `json:"outbound"`
	Return         []FlightRecord      `json:"return"`
	GrandTotal     float64             `json:"grand_total"`
	GrandTotalINR  string              `json:"grand_total_inr"`
	UniqueAirlines []string            `json:"unique_airlines"`
}

type SuggestResponse struct {
	Query    string    `json:"query"`
	Airports []Airport `json:"airports"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
