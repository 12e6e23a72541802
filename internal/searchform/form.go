package searchform

import (
	"strings"
	"time"

	"github.com/ratnakarguru/skysearch/internal/models"
)

// SuggestLimit caps the airport type-ahead result list.
const SuggestLimit = 5

// Form is the explicit search-form state. Each trip-type tab keeps its own
// fields, so switching tabs never clears what the user typed elsewhere.
type Form struct {
	Type       string
	From       string
	FromLabel  string
	To         string
	ToLabel    string
	Date       string
	ReturnDate string
	Segments   []models.Segment
	Passengers models.Passengers
	CabinClass string

	catalog []models.Airport
}

// New returns a form in its initial state: one-way, one default multi-city
// segment, a single adult in economy.
func New(catalog []models.Airport) *Form {
	return &Form{
		Type: models.TripOneWay,
		Date: time.Now().Format(models.DateLayout),
		Segments: []models.Segment{
			{ID: 1, From: "DEL", FromLabel: "Delhi (DEL)", To: "BOM", ToLabel: "Mumbai (BOM)", Date: time.Now().Format(models.DateLayout)},
		},
		Passengers: models.Passengers{Adults: 1},
		CabinClass: models.CabinEconomy,
		catalog:    catalog,
	}
}

// Rehydrate rebuilds form state from a specification handed back by the
// results view ("Modify"). Codes whose labels are missing are resolved
// against the catalog.
func Rehydrate(spec models.SearchSpecification, catalog []models.Airport) *Form {
	f := New(catalog)
	if spec.Type != "" {
		f.Type = spec.Type
	}
	f.From = spec.From
	f.To = spec.To
	f.FromLabel = f.resolveLabel(spec.From, spec.FromLabel)
	f.ToLabel = f.resolveLabel(spec.To, spec.ToLabel)
	if spec.Date != "" {
		f.Date = spec.Date
	}
	f.ReturnDate = spec.ReturnDate
	if len(spec.Segments) > 0 {
		segments := make([]models.Segment, len(spec.Segments))
		for i, seg := range spec.Segments {
			seg.FromLabel = f.resolveLabel(seg.From, seg.FromLabel)
			seg.ToLabel = f.resolveLabel(seg.To, seg.ToLabel)
			segments[i] = seg
		}
		f.Segments = segments
	}
	if spec.Passengers.Adults > 0 {
		f.Passengers = spec.Passengers
	}
	if spec.CabinClass != "" {
		f.CabinClass = spec.CabinClass
	}
	return f
}

func (f *Form) resolveLabel(code, label string) string {
	for _, a := range f.catalog {
		if a.IATACode == code {
			return a.Label()
		}
	}
	if label != "" {
		return label
	}
	return code
}

// SetType switches the active tab. Fields of the other tabs are untouched.
func (f *Form) SetType(tripType string) {
	switch tripType {
	case models.TripOneWay, models.TripRoundTrip, models.TripMultiCity:
		f.Type = tripType
	}
}

// SetOrigin and SetDestination record a type-ahead selection: code and
// display label move together.
func (f *Form) SetOrigin(a models.Airport) {
	f.From = a.IATACode
	f.FromLabel = a.Label()
}

func (f *Form) SetDestination(a models.Airport) {
	f.To = a.IATACode
	f.ToLabel = a.Label()
}

// Swap exchanges origin and destination, code and resolved label together.
func (f *Form) Swap() {
	f.From, f.To = f.To, f.From
	f.FromLabel, f.ToLabel = f.ToLabel, f.FromLabel
}

// AddSegment appends a blank segment under a fresh identifier
// (max existing + 1, or 1 for an empty list) and returns the id.
func (f *Form) AddSegment() int {
	id := 1
	for _, seg := range f.Segments {
		if seg.ID >= id {
			id = seg.ID + 1
		}
	}
	f.Segments = append(f.Segments, models.Segment{ID: id})
	return id
}

// RemoveSegment deletes by identifier, not position; surviving segments keep
// their ids. Reports whether anything was removed.
func (f *Form) RemoveSegment(id int) bool {
	for i, seg := range f.Segments {
		if seg.ID == id {
			f.Segments = append(f.Segments[:i], f.Segments[i+1:]...)
			return true
		}
	}
	return false
}

func (f *Form) SetSegmentOrigin(id int, a models.Airport) {
	for i := range f.Segments {
		if f.Segments[i].ID == id {
			f.Segments[i].From = a.IATACode
			f.Segments[i].FromLabel = a.Label()
			return
		}
	}
}

func (f *Form) SetSegmentDestination(id int, a models.Airport) {
	for i := range f.Segments {
		if f.Segments[i].ID == id {
			f.Segments[i].To = a.IATACode
			f.Segments[i].ToLabel = a.Label()
			return
		}
	}
}

func (f *Form) SetSegmentDate(id int, date string) {
	for i := range f.Segments {
		if f.Segments[i].ID == id {
			f.Segments[i].Date = date
			return
		}
	}
}

// Suggest matches airports whose city or IATA code contains the query,
// case-insensitive, first SuggestLimit hits in catalog order. An empty query
// suggests nothing, not everything.
func Suggest(catalog []models.Airport, query string) []models.Airport {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	results := make([]models.Airport, 0, SuggestLimit)
	for _, a := range catalog {
		if strings.Contains(strings.ToLower(a.City), q) || strings.Contains(strings.ToLower(a.IATACode), q) {
			results = append(results, a)
			if len(results) == SuggestLimit {
				break
			}
		}
	}
	return results
}

// Suggest on the form uses its own catalog.
func (f *Form) Suggest(query string) []models.Airport {
	return Suggest(f.catalog, query)
}

// Specification builds the navigation payload for the results view.
// Multi-city carries segments only; the standard fields stay behind on the
// form.
func (f *Form) Specification() models.SearchSpecification {
	if f.Type == models.TripMultiCity {
		return models.SearchSpecification{
			Type:       f.Type,
			Segments:   append([]models.Segment(nil), f.Segments...),
			Passengers: f.Passengers,
			CabinClass: f.CabinClass,
		}
	}
	return models.SearchSpecification{
		Type:       f.Type,
		From:       f.From,
		FromLabel:  f.FromLabel,
		To:         f.To,
		ToLabel:    f.ToLabel,
		Date:       f.Date,
		ReturnDate: f.ReturnDate,
		Passengers: f.Passengers,
		CabinClass: f.CabinClass,
	}
}
