package farecal

import (
	"time"

	"github.com/ratnakarguru/skysearch/internal/models"
)

// Base fare shown when a route has no inventory at all.
const fallbackFare = 4000

// Entry is one day of the fare calendar strip.
type Entry struct {
	Date     string  `json:"date"`
	Price    float64 `json:"price"`
	Selected bool    `json:"selected"`
}

// Strip builds a calendar of days centered on the selected date. Each day
// shows the route's minimum inventory fare, nudged by a deterministic per-day
// variation so neighbouring days differ the way real fare calendars do.
func Strip(selected time.Time, days int, flights []models.FlightRecord, origin, destination string) []Entry {
	if days <= 0 {
		days = 7
	}
	base := minRouteFare(flights, origin, destination)

	entries := make([]Entry, 0, days)
	start := selected.AddDate(0, 0, -days/2)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		entries = append(entries, Entry{
			Date:     day.Format(models.DateLayout),
			Price:    base + dayVariation(day),
			Selected: sameDay(day, selected),
		})
	}
	return entries
}

// DualStrip builds the two strips of the round-trip view: one around the
// departure date on the requested route, one around the return date on the
// reverse route.
func DualStrip(departure, ret time.Time, days int, flights []models.FlightRecord, origin, destination string) (outbound, inbound []Entry) {
	outbound = Strip(departure, days, flights, origin, destination)
	inbound = Strip(ret, days, flights, destination, origin)
	return outbound, inbound
}

func minRouteFare(flights []models.FlightRecord, origin, destination string) float64 {
	min := 0.0
	for _, f := range flights {
		if f.Origin != origin || f.Destination != destination {
			continue
		}
		if min == 0 || f.Price < min {
			min = f.Price
		}
	}
	if min == 0 {
		return fallbackFare
	}
	return min
}

// dayVariation is stable for a given date so the strip does not jitter on
// re-render.
func dayVariation(day time.Time) float64 {
	return float64((day.YearDay() * 97) % 500)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
