package itinerary

import (
	"math/rand"
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/ratnakarguru/skysearch/internal/models"
)

func fixtureFlights() []models.FlightRecord {
	return []models.FlightRecord{
		{ID: 1, Origin: "DEL", Destination: "BOM", Airline: "IndiGo", FlightCode: "6E-204", DepartureTime: "06:00", ArrivalTime: "08:15", Duration: "2h 15m", Stops: "Non-Stop", Price: 4000},
		{ID: 2, Origin: "DEL", Destination: "BOM", Airline: "Air India", FlightCode: "AI-805", DepartureTime: "09:30", ArrivalTime: "11:45", Duration: "2h 15m", Stops: "Non-Stop", Price: 5200},
		{ID: 3, Origin: "BOM", Destination: "DEL", Airline: "Vistara", FlightCode: "UK-996", DepartureTime: "18:20", ArrivalTime: "20:30", Duration: "2h 10m", Stops: "Non-Stop", Price: 4800},
		{ID: 4, Origin: "BOM", Destination: "BLR", Airline: "SpiceJet", FlightCode: "SG-112", DepartureTime: "05:10", ArrivalTime: "06:50", Duration: "1h 40m", Stops: "Non-Stop", Price: 3500},
		{ID: 5, Origin: "DEL", Destination: "BLR", Airline: "IndiGo", FlightCode: "6E-331", DepartureTime: "13:00", ArrivalTime: "15:45", Duration: "2h 45m", Stops: "1 Stop", Price: 6100},
	}
}

func seededConstructor(policy Policy) *Constructor {
	return NewWithRand(policy, rand.New(rand.NewSource(42)))
}

func TestExtractCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DEL", "DEL"},
		{"Delhi (DEL)", "DEL"},
		{"Mumbai, India (BOM)", "BOM"},
		{"New York (JFK) (NYC)", "NYC"},
		{"Delhi (DEL", "Delhi (DEL"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, ExtractCode(tt.in), tt.want)
	}
}

func TestOneWayMatchesInventory(t *testing.T) {
	c := seededConstructor(PolicyAllowSynthetic)
	spec := models.SearchSpecification{Type: models.TripOneWay, From: "DEL", To: "BOM", Date: "2026-09-01"}

	itineraries := c.Construct(spec, fixtureFlights())

	assert.Equal(t, len(itineraries), 2)
	for _, it := range itineraries {
		assert.Equal(t, it.TripType, models.TripOneWay)
		assert.Equal(t, len(it.Flights), 1)
		assert.Equal(t, it.TotalPrice, it.Flights[0].Price)
		assert.Equal(t, it.Flights[0].Date, "2026-09-01")
	}
	assert.Equal(t, itineraries[0].ID, 1)
	assert.Equal(t, itineraries[1].ID, 2)
	assert.Equal(t, itineraries[0].TotalPrice, 4000.0)
}

func TestOneWayLabelCodeResolution(t *testing.T) {
	c := seededConstructor(PolicyAllowSynthetic)
	spec := models.SearchSpecification{Type: models.TripOneWay, From: "Delhi (DEL)", To: "Mumbai (BOM)", Date: "2026-09-01"}

	itineraries := c.Construct(spec, fixtureFlights())
	assert.Equal(t, len(itineraries), 2)
}

func TestOneWayFallbackSynthesis(t *testing.T) {
	c := seededConstructor(PolicyAllowSynthetic)
	spec := models.SearchSpecification{Type: models.TripOneWay, From: "DEL", To: "GOI", Date: "2026-09-01"}

	itineraries := c.Construct(spec, fixtureFlights())

	assert.Equal(t, len(itineraries), 1)
	leg := itineraries[0].Flights[0]
	assert.Equal(t, leg.Origin, "DEL")
	assert.Equal(t, leg.Destination, "GOI")
	assert.Equal(t, itineraries[0].TotalPrice, 4000.0)
	assert.Equal(t, itineraries[0].ID, 888)
}

func TestOneWayEmptyCodesDegradeToDefaults(t *testing.T) {
	c := seededConstructor(PolicyAllowSynthetic)
	spec := models.SearchSpecification{Type: models.TripOneWay}

	// No inventory at all: the fallback still stands on a bare base record.
	itineraries := c.Construct(spec, nil)

	assert.Equal(t, len(itineraries), 1)
	assert.Equal(t, itineraries[0].Flights[0].Origin, "DEL")
	assert.Equal(t, itineraries[0].Flights[0].Destination, "BOM")
}

func TestRoundTripIndependentLists(t *testing.T) {
	c := seededConstructor(PolicyAllowSynthetic)
	spec := models.SearchSpecification{
		Type: models.TripRoundTrip, From: "DEL", To: "BOM",
		Date: "2026-09-01", ReturnDate: "2026-09-05",
	}

	outbound, inbound := c.RoundTrip(spec, fixtureFlights())

	if len(outbound) == 0 || len(inbound) == 0 {
		t.Fatalf("both direction lists must be non-empty, got %d/%d", len(outbound), len(inbound))
	}

	// One offset per direction: relative prices within a list are preserved.
	depOffset := outbound[0].Price - 4000
	assert.Equal(t, outbound[1].Price-5200, depOffset)
	if depOffset < 0 || depOffset >= 500 {
		t.Errorf("departure offset out of range: %v", depOffset)
	}
	retOffset := inbound[0].Price - 4800
	if retOffset < 0 || retOffset >= 500 {
		t.Errorf("return offset out of range: %v", retOffset)
	}

	for _, f := range outbound {
		assert.Equal(t, f.Date, "2026-09-01")
	}
	for _, f := range inbound {
		assert.Equal(t, f.Date, "2026-09-05")
	}

	total := GrandTotal(&outbound[0], &inbound[0])
	assert.Equal(t, total, outbound[0].Price+inbound[0].Price)
}

func TestRoundTripFallbackMirrorsOutbound(t *testing.T) {
	c := seededConstructor(PolicyAllowSynthetic)
	spec := models.SearchSpecification{
		Type: models.TripRoundTrip, From: "GOI", To: "CCU",
		Date: "2026-09-01", ReturnDate: "2026-09-05",
	}

	outbound, inbound := c.RoundTrip(spec, fixtureFlights())

	assert.Equal(t, len(outbound), 1)
	assert.Equal(t, outbound[0].ID, 901)
	assert.Equal(t, outbound[0].Origin, "GOI")
	assert.Equal(t, outbound[0].Destination, "CCU")

	assert.Equal(t, len(inbound), 1)
	assert.Equal(t, inbound[0].ID, 1001)
	assert.Equal(t, inbound[0].Origin, "CCU")
	assert.Equal(t, inbound[0].Destination, "GOI")
}

func TestGrandTotalWithMissingSelection(t *testing.T) {
	out := models.FlightRecord{Price: 4200}
	assert.Equal(t, GrandTotal(&out, nil), 4200.0)
	assert.Equal(t, GrandTotal(nil, nil), 0.0)
}

func TestMultiCityRoundRobinCandidates(t *testing.T) {
	c := seededConstructor(PolicyAllowSynthetic)
	spec := models.SearchSpecification{
		Type: models.TripMultiCity,
		Segments: []models.Segment{
			{ID: 1, From: "DEL", To: "BOM", Date: "2026-09-01"},
			{ID: 2, From: "BOM", To: "BLR", Date: "2026-09-03"},
		},
	}

	itineraries := c.Construct(spec, fixtureFlights())

	assert.Equal(t, len(itineraries), 5)
	for i, it := range itineraries {
		assert.Equal(t, it.ID, i)
		assert.Equal(t, len(it.Flights), 2)
		assert.Equal(t, it.Flights[0].Destination, "BOM")
		assert.Equal(t, it.Flights[1].Destination, "BLR")
		assert.Equal(t, it.Flights[0].Date, "2026-09-01")
		assert.Equal(t, it.Flights[1].Date, "2026-09-03")
		assert.Equal(t, it.TotalPrice, it.Flights[0].Price+it.Flights[1].Price)
	}

	// Two DEL->BOM matches: candidates alternate between them, i mod 2.
	assert.Equal(t, itineraries[0].Flights[0].ID, 1)
	assert.Equal(t, itineraries[1].Flights[0].ID, 2)
	assert.Equal(t, itineraries[2].Flights[0].ID, 1)
}

func TestMultiCityFallbackLegPricing(t *testing.T) {
	c := seededConstructor(PolicyAllowSynthetic)
	spec := models.SearchSpecification{
		Type: models.TripMultiCity,
		Segments: []models.Segment{
			{ID: 1, From: "DEL", To: "BOM", Date: "2026-09-01"},
			{ID: 2, From: "BLR", To: "CCU", Date: "2026-09-03"},
			{ID: 3, From: "CCU", To: "GOI", Date: "2026-09-05"},
		},
	}

	itineraries := c.Construct(spec, fixtureFlights())

	assert.Equal(t, len(itineraries), 5)
	for _, it := range itineraries {
		assert.Equal(t, len(it.Flights), 3)
		// Fallback leg price grows with its position in the segment order.
		assert.Equal(t, it.Flights[1].Price, 5000.0)
		assert.Equal(t, it.Flights[2].Price, 6000.0)
	}
}

func TestMultiCityRequireInventoryDropsSyntheticCandidates(t *testing.T) {
	c := seededConstructor(PolicyRequireInventory)
	spec := models.SearchSpecification{
		Type: models.TripMultiCity,
		Segments: []models.Segment{
			{ID: 1, From: "DEL", To: "BOM", Date: "2026-09-01"},
			{ID: 2, From: "BLR", To: "CCU", Date: "2026-09-03"},
		},
	}

	itineraries := c.Construct(spec, fixtureFlights())
	assert.Equal(t, len(itineraries), 0)
}

func TestMultiCityRequireInventoryKeepsFullyRealCandidates(t *testing.T) {
	c := seededConstructor(PolicyRequireInventory)
	spec := models.SearchSpecification{
		Type: models.TripMultiCity,
		Segments: []models.Segment{
			{ID: 1, From: "DEL", To: "BOM", Date: "2026-09-01"},
			{ID: 2, From: "BOM", To: "BLR", Date: "2026-09-03"},
		},
	}

	itineraries := c.Construct(spec, fixtureFlights())
	assert.Equal(t, len(itineraries), 5)
}

func TestSumDurations(t *testing.T) {
	legs := []models.FlightRecord{
		{Duration: "2h 15m"},
		{Duration: "1h 50m"},
	}
	assert.Equal(t, sumDurations(legs), "4h 5m")
	assert.Equal(t, sumDurations([]models.FlightRecord{{Duration: "bogus"}}), "")
}
