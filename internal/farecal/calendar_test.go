package farecal

import (
	"testing"
	"time"

	"github.com/magiconair/properties/assert"

	"github.com/ratnakarguru/skysearch/internal/models"
)

func fixtureFlights() []models.FlightRecord {
	return []models.FlightRecord{
		{ID: 1, Origin: "DEL", Destination: "BOM", Price: 4000},
		{ID: 2, Origin: "DEL", Destination: "BOM", Price: 5200},
		{ID: 3, Origin: "BOM", Destination: "DEL", Price: 4800},
	}
}

func TestStripCentersOnSelectedDate(t *testing.T) {
	selected := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	entries := Strip(selected, 7, fixtureFlights(), "DEL", "BOM")

	assert.Equal(t, len(entries), 7)
	assert.Equal(t, entries[0].Date, "2026-09-07")
	assert.Equal(t, entries[3].Date, "2026-09-10")
	assert.Equal(t, entries[3].Selected, true)

	selectedCount := 0
	for _, e := range entries {
		if e.Selected {
			selectedCount++
		}
		// Minimum route fare plus a bounded per-day variation.
		if e.Price < 4000 || e.Price >= 4500 {
			t.Errorf("price %v for %s outside [4000, 4500)", e.Price, e.Date)
		}
	}
	assert.Equal(t, selectedCount, 1)
}

func TestStripIsStableAcrossCalls(t *testing.T) {
	selected := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	first := Strip(selected, 7, fixtureFlights(), "DEL", "BOM")
	second := Strip(selected, 7, fixtureFlights(), "DEL", "BOM")
	for i := range first {
		assert.Equal(t, first[i], second[i])
	}
}

func TestStripFallbackFareForUnknownRoute(t *testing.T) {
	selected := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	entries := Strip(selected, 3, nil, "GOI", "CCU")

	assert.Equal(t, len(entries), 3)
	for _, e := range entries {
		if e.Price < 4000 || e.Price >= 4500 {
			t.Errorf("fallback price %v outside [4000, 4500)", e.Price)
		}
	}
}

func TestDualStripUsesReverseRouteForReturn(t *testing.T) {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	outbound, inbound := DualStrip(dep, ret, 5, fixtureFlights(), "DEL", "BOM")

	assert.Equal(t, len(outbound), 5)
	assert.Equal(t, len(inbound), 5)
	assert.Equal(t, outbound[2].Selected, true)
	assert.Equal(t, inbound[2].Selected, true)

	// Return strip prices derive from the BOM->DEL minimum (4800).
	for _, e := range inbound {
		if e.Price < 4800 || e.Price >= 5300 {
			t.Errorf("return price %v outside [4800, 5300)", e.Price)
		}
	}
}
