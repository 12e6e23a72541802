package models

import "time"

// Trip types as they travel on the wire.
const (
	TripOneWay    = "One Way"
	TripRoundTrip = "Round Trip"
	TripMultiCity = "Multi-City"
)

// Cabin classes.
const (
	CabinEconomy  = "Economy"
	CabinBusiness = "Business"
)

// DateLayout is the wire format for all trip dates.
const DateLayout = "2006-01-02"

// Segment is one leg of a multi-city trip. Segments are ordered; order is
// itinerary order. IDs are assigned by the form and survive removal of
// neighbours unchanged.
type Segment struct {
	ID        int    `json:"id"`
	From      string `json:"from"`
	FromLabel string `json:"fromLabel,omitempty"`
	To        string `json:"to"`
	ToLabel   string `json:"toLabel,omitempty"`
	Date      string `json:"date"`
}

type Passengers struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// SearchSpecification is the user's trip intent, produced by the search form
// and handed to the results flow as opaque navigation state.
//
// Multi-city trips carry Segments and ignore From/To/Date; round trips carry
// both Date and ReturnDate.
type SearchSpecification struct {
	Type       string     `json:"type"`
	From       string     `json:"from"`
	FromLabel  string     `json:"fromLabel,omitempty"`
	To         string     `json:"to"`
	ToLabel    string     `json:"toLabel,omitempty"`
	Date       string     `json:"date"`
	ReturnDate string     `json:"returnDate,omitempty"`
	Segments   []Segment  `json:"segments,omitempty"`
	Passengers Passengers `json:"passengers"`
	CabinClass string     `json:"cabinClass"`
}

// Validate fills defaults rather than rejecting. Missing origin/destination
// codes degrade to empty strings, which fail to match inventory downstream
// and fall through to fallback synthesis.
func (s *SearchSpecification) Validate() error {
	switch s.Type {
	case TripOneWay, TripRoundTrip, TripMultiCity:
	default:
		s.Type = TripOneWay
	}
	if s.Passengers.Adults <= 0 {
		s.Passengers.Adults = 1
	}
	if s.Passengers.Children < 0 {
		s.Passengers.Children = 0
	}
	if s.CabinClass == "" {
		s.CabinClass = CabinEconomy
	}

	today := time.Now().Format(DateLayout)
	if s.Type == TripMultiCity {
		if len(s.Segments) == 0 {
			s.Segments = DefaultSegments()
		}
		return nil
	}
	if s.Date == "" {
		s.Date = today
	}
	if s.Type == TripRoundTrip && s.ReturnDate == "" {
		s.ReturnDate = today
	}
	return nil
}

// DefaultSegments is the fallback multi-city plan used when a multi-city
// specification arrives with no segments at all.
func DefaultSegments() []Segment {
	now := time.Now()
	return []Segment{
		{ID: 1, From: "DEL", To: "BOM", Date: now.Format(DateLayout)},
		{ID: 2, From: "BOM", To: "BLR", Date: now.AddDate(0, 0, 2).Format(DateLayout)},
	}
}
