package models

// FlightRecord is one flat inventory item as served by the flight inventory
// endpoint. Times and duration are display strings, not parsed timestamps.
//
// IDs are not globally unique once synthetic fallback records enter a list;
// callers that need identity across uncertain lists must use list position.
type FlightRecord struct {
	ID            int     `json:"id"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Airline       string  `json:"airline"`
	FlightCode    string  `json:"flightCode"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Duration      string  `json:"duration"`
	Stops         string  `json:"stops"`
	Price         float64 `json:"price"`

	// Date is the display date assigned during itinerary construction.
	// Inventory records arrive without one.
	Date string `json:"date,omitempty"`
}
