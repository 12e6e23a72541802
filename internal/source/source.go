package source

import (
	"context"

	"github.com/ratnakarguru/skysearch/internal/models"
)

// The two read-only network collaborators behind a results view.
type AirportSource interface {
	Name() string
	Fetch(ctx context.Context) ([]models.Airport, error)
}

type FlightSource interface {
	Name() string
	Fetch(ctx context.Context) ([]models.FlightRecord, error)
}

type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return e.Source + ": " + e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func NewSourceError(source string, err error) *SourceError {
	return &SourceError{
		Source: source,
		Err:    err,
	}
}

// StaticAirports serves a fixed catalog. Used in tests and offline mode.
type StaticAirports struct {
	Catalog []models.Airport
}

func (s *StaticAirports) Name() string {
	return "airports"
}

func (s *StaticAirports) Fetch(ctx context.Context) ([]models.Airport, error) {
	return s.Catalog, nil
}

// StaticFlights serves a fixed inventory. Used in tests and offline mode.
type StaticFlights struct {
	Inventory []models.FlightRecord
}

func (s *StaticFlights) Name() string {
	return "flights"
}

func (s *StaticFlights) Fetch(ctx context.Context) ([]models.FlightRecord, error) {
	return s.Inventory, nil
}
