package itinerary

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ratnakarguru/skysearch/internal/models"
)

// Fallback constants. Synthetic records keep the view from ever being empty;
// their ids deliberately mimic the mock inventory's numbering and are NOT
// unique across a list.
const (
	oneWayFallbackPrice    = 4000
	oneWayFallbackID       = 888
	roundTripFallbackPrice = 5000
	roundTripFallbackID    = 901
	returnIDOffset         = 100
	multiCityFallbackBase  = 4000
	multiCityFallbackStep  = 1000
	multiCityFallbackID    = 999
	multiCityCandidates    = 5
	fareOffsetRange        = 500

	defaultOrigin      = "DEL"
	defaultDestination = "BOM"
)

// Policy decides what happens to a multi-city candidate when a segment has no
// real inventory match.
type Policy int

const (
	// PolicyAllowSynthetic keeps the candidate and fills the gap with a
	// synthetic leg, so the view is never empty.
	PolicyAllowSynthetic Policy = iota
	// PolicyRequireInventory drops any candidate that would need a synthetic
	// leg, making an empty "no flights found" result reachable.
	PolicyRequireInventory
)

// Constructor turns a SearchSpecification plus the inventory snapshot into
// displayable itineraries. The rand source drives the date-dependent fare
// perturbation on round trips and is injectable for tests.
type Constructor struct {
	policy Policy
	rng    *rand.Rand
}

func New(policy Policy) *Constructor {
	return NewWithRand(policy, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewWithRand(policy Policy, rng *rand.Rand) *Constructor {
	return &Constructor{policy: policy, rng: rng}
}

func (c *Constructor) Policy() Policy {
	return c.policy
}

// ExtractCode pulls the IATA code out of a location value. Values may be raw
// codes ("DEL") or formatted labels ("Delhi (DEL)"); the token inside the
// last parenthesis pair wins, else the string is taken verbatim.
func ExtractCode(s string) string {
	open := strings.LastIndex(s, "(")
	if open == -1 {
		return s
	}
	end := strings.Index(s[open:], ")")
	if end == -1 {
		return s
	}
	return s[open+1 : open+end]
}

// Construct builds the itinerary list for one-way and multi-city trips.
// Round trips produce two independently selectable direction lists instead;
// see RoundTrip.
func (c *Constructor) Construct(spec models.SearchSpecification, flights []models.FlightRecord) []models.Itinerary {
	if spec.Type == models.TripMultiCity {
		return c.MultiCity(spec, flights)
	}
	return c.OneWay(spec, flights)
}

// OneWay filters the inventory on the requested route. With no match it
// synthesizes exactly one fallback itinerary on the requested codes, so the
// result is never empty.
func (c *Constructor) OneWay(spec models.SearchSpecification, flights []models.FlightRecord) []models.Itinerary {
	fromCode := ExtractCode(spec.From)
	toCode := ExtractCode(spec.To)

	matches := matchRoute(flights, fromCode, toCode)
	if len(matches) == 0 {
		matches = []models.FlightRecord{synthesize(flights, orDefault(fromCode, defaultOrigin), orDefault(toCode, defaultDestination), oneWayFallbackPrice, oneWayFallbackID)}
	}

	itineraries := make([]models.Itinerary, 0, len(matches))
	for _, f := range matches {
		leg := f
		leg.Date = spec.Date
		itineraries = append(itineraries, models.Itinerary{
			ID:            f.ID,
			TripType:      models.TripOneWay,
			Flights:       []models.FlightRecord{leg},
			TotalPrice:    f.Price,
			TotalDuration: sumDurations([]models.FlightRecord{leg}),
		})
	}
	return itineraries
}

// RoundTrip builds the outbound and inbound lists independently. Each
// direction gets its own fallback synthesis and its own random fare offset in
// [0, 500), re-rolled on every call to simulate date-dependent fares. The two
// lists are independently selectable; no cross-product is materialized.
func (c *Constructor) RoundTrip(spec models.SearchSpecification, flights []models.FlightRecord) (outbound, inbound []models.FlightRecord) {
	fromCode := ExtractCode(spec.From)
	toCode := ExtractCode(spec.To)

	outbound = matchRoute(flights, fromCode, toCode)
	inbound = matchRoute(flights, toCode, fromCode)

	if len(outbound) == 0 {
		outbound = []models.FlightRecord{synthesize(flights, orDefault(fromCode, defaultOrigin), orDefault(toCode, defaultDestination), roundTripFallbackPrice, roundTripFallbackID)}
	}
	if len(inbound) == 0 {
		inbound = make([]models.FlightRecord, 0, len(outbound))
		for _, f := range outbound {
			mirror := f
			mirror.Origin = orDefault(toCode, defaultDestination)
			mirror.Destination = orDefault(fromCode, defaultOrigin)
			mirror.ID = f.ID + returnIDOffset
			inbound = append(inbound, mirror)
		}
	}

	depOffset := float64(c.rng.Intn(fareOffsetRange))
	retOffset := float64(c.rng.Intn(fareOffsetRange))

	outbound = stamp(outbound, spec.Date, depOffset)
	inbound = stamp(inbound, spec.ReturnDate, retOffset)
	return outbound, inbound
}

// GrandTotal is the fare of one selection from each direction list.
func GrandTotal(outbound, inbound *models.FlightRecord) float64 {
	var total float64
	if outbound != nil {
		total += outbound.Price
	}
	if inbound != nil {
		total += inbound.Price
	}
	return total
}

// MultiCity builds up to 5 candidate itineraries over the segment sequence.
// Candidates differ by round-robin: candidate i takes match i mod len(matches)
// on every segment. Under PolicyAllowSynthetic a segment without inventory
// gets a synthetic leg priced 4000 + legIndex*1000; under
// PolicyRequireInventory the whole candidate is dropped instead.
func (c *Constructor) MultiCity(spec models.SearchSpecification, flights []models.FlightRecord) []models.Itinerary {
	segments := spec.Segments
	if len(segments) == 0 {
		segments = models.DefaultSegments()
	}

	itineraries := make([]models.Itinerary, 0, multiCityCandidates)
	for i := 0; i < multiCityCandidates; i++ {
		legs := make([]models.FlightRecord, 0, len(segments))
		var totalPrice float64
		complete := true

		for idx, seg := range segments {
			fCode := ExtractCode(seg.From)
			tCode := ExtractCode(seg.To)

			matches := matchRoute(flights, fCode, tCode)
			if len(matches) == 0 {
				if c.policy == PolicyRequireInventory {
					complete = false
					break
				}
				matches = []models.FlightRecord{synthesize(flights, fCode, tCode, multiCityFallbackBase+float64(idx*multiCityFallbackStep), multiCityFallbackID+i+idx)}
			}

			leg := matches[i%len(matches)]
			leg.Date = seg.Date
			legs = append(legs, leg)
			totalPrice += leg.Price
		}

		if !complete {
			continue
		}
		itineraries = append(itineraries, models.Itinerary{
			ID:            i,
			TripType:      models.TripMultiCity,
			Flights:       legs,
			TotalPrice:    totalPrice,
			TotalDuration: sumDurations(legs),
		})
	}
	return itineraries
}

func matchRoute(flights []models.FlightRecord, origin, destination string) []models.FlightRecord {
	matches := make([]models.FlightRecord, 0)
	for _, f := range flights {
		if f.Origin == origin && f.Destination == destination {
			matches = append(matches, f)
		}
	}
	return matches
}

// synthesize clones the first inventory record onto the requested route. An
// empty inventory yields a bare record so the fallback still stands.
func synthesize(flights []models.FlightRecord, origin, destination string, price float64, id int) models.FlightRecord {
	var base models.FlightRecord
	if len(flights) > 0 {
		base = flights[0]
	}
	base.Origin = origin
	base.Destination = destination
	base.Price = price
	base.ID = id
	return base
}

func stamp(flights []models.FlightRecord, date string, offset float64) []models.FlightRecord {
	stamped := make([]models.FlightRecord, 0, len(flights))
	for _, f := range flights {
		f.Date = date
		f.Price += offset
		stamped = append(stamped, f)
	}
	return stamped
}

func orDefault(code, fallback string) string {
	if code == "" {
		return fallback
	}
	return code
}

// sumDurations adds up leg durations of the "2h 15m" display shape. Legs that
// fail to parse are skipped; if nothing parses the total stays empty.
func sumDurations(legs []models.FlightRecord) string {
	totalMinutes := 0
	parsed := false
	for _, leg := range legs {
		if m, ok := parseDuration(leg.Duration); ok {
			totalMinutes += m
			parsed = true
		}
	}
	if !parsed {
		return ""
	}
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}

func parseDuration(s string) (int, bool) {
	var hours, minutes int
	if n, _ := fmt.Sscanf(s, "%dh %dm", &hours, &minutes); n >= 1 {
		return hours*60 + minutes, true
	}
	if n, _ := fmt.Sscanf(s, "%dh", &hours); n == 1 {
		return hours * 60, true
	}
	return 0, false
}
