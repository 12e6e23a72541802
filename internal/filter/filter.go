package filter

import (
	"github.com/ratnakarguru/skysearch/internal/models"
	"github.com/ratnakarguru/skysearch/internal/timeparse"
)

// Apply narrows an itinerary list to the entries passing every active filter.
// Empty sets pass everything on their dimension; a zero MaxPrice means no
// price limit. Construction order is preserved; nothing here sorts.
func Apply(itineraries []models.Itinerary, filters models.FilterState) []models.Itinerary {
	result := make([]models.Itinerary, 0, len(itineraries))
	for _, it := range itineraries {
		if matchesItinerary(it, filters) {
			result = append(result, it)
		}
	}
	return result
}

// ApplyFlights narrows a single-leg flight list (the round-trip direction
// lists) the same way, with the leg price standing in for the total.
func ApplyFlights(flights []models.FlightRecord, filters models.FilterState) []models.FlightRecord {
	result := make([]models.FlightRecord, 0, len(flights))
	for _, f := range flights {
		if filters.MaxPrice > 0 && f.Price > filters.MaxPrice {
			continue
		}
		if !matchesFlight(f, filters) {
			continue
		}
		result = append(result, f)
	}
	return result
}

func matchesItinerary(it models.Itinerary, filters models.FilterState) bool {
	if filters.MaxPrice > 0 && it.TotalPrice > filters.MaxPrice {
		return false
	}
	for _, f := range it.Flights {
		if !matchesFlight(f, filters) {
			return false
		}
	}
	return true
}

func matchesFlight(f models.FlightRecord, filters models.FilterState) bool {
	if !inSet(filters.Stops, f.Stops) {
		return false
	}
	if !inSet(filters.Airlines, f.Airline) {
		return false
	}
	if !inBuckets(filters.DepTimeBuckets, f.DepartureTime) {
		return false
	}
	if !inBuckets(filters.ArrTimeBuckets, f.ArrivalTime) {
		return false
	}
	return true
}

// inSet treats an empty selection as "no filtering on this dimension".
func inSet(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

func inBuckets(selected []string, displayTime string) bool {
	if len(selected) == 0 {
		return true
	}
	minute, ok := timeparse.MinutesOfDay(displayTime)
	if !ok {
		// Unparseable display times cannot be bucketed and are not filtered.
		return true
	}
	for _, s := range selected {
		if timeparse.Bucket(s).Contains(minute) {
			return true
		}
	}
	return false
}

// Reset returns the documented default state in one transition. Callers swap
// the whole value so no intermediate state is ever observable.
func Reset(maxPrice float64) models.FilterState {
	return models.FilterState{MaxPrice: maxPrice}
}

// UniqueAirlines unions the airlines across every currently loaded list, in
// order of first appearance. The checklist is derived from the loaded data,
// never from the active filters, so deselecting an airline does not remove it
// from the panel.
func UniqueAirlines(flightLists [][]models.FlightRecord, itineraries []models.Itinerary) []string {
	seen := make(map[string]bool)
	airlines := make([]string, 0)

	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		airlines = append(airlines, name)
	}

	for _, list := range flightLists {
		for _, f := range list {
			add(f.Airline)
		}
	}
	for _, it := range itineraries {
		for _, f := range it.Flights {
			add(f.Airline)
		}
	}
	return airlines
}
