package loader

import (
	"context"
	"log"
	"time"

	"github.com/ratnakarguru/skysearch/internal/models"
	"github.com/ratnakarguru/skysearch/internal/ratelimit"
	"github.com/ratnakarguru/skysearch/internal/source"
)

// State of a snapshot. The itinerary computation depends on BOTH remote
// fetches; a snapshot is Ready only once both have succeeded and Failed as
// soon as either gives up.
type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Snapshot is the joined result of one load: the airport directory cache and
// the flight inventory. Catalog preserves directory order for the type-ahead;
// Airports is the same data keyed by IATA code.
type Snapshot struct {
	State        State
	Seq          uint64
	Catalog      []models.Airport
	Airports     map[string]models.Airport
	Flights      []models.FlightRecord
	FailedSource string
	Err          error
	LoadedAt     time.Time
}

type Config struct {
	Timeout     time.Duration
	MaxRetries  int
	RetryDelays []time.Duration
	RateLimiter *ratelimit.SourceLimiter
}

// Loader joins the two remote fetches into one Snapshot.
type Loader struct {
	airports source.AirportSource
	flights  source.FlightSource
	config   Config
}

func New(airports source.AirportSource, flights source.FlightSource, config Config) *Loader {
	return &Loader{
		airports: airports,
		flights:  flights,
		config:   config,
	}
}

// Load fetches both sources concurrently and joins them. Unlike a best-effort
// aggregation, a single source failure fails the whole load: the snapshot
// reports Failed with the source's name instead of hanging forever.
func (l *Loader) Load(ctx context.Context) Snapshot {
	loadCtx := ctx
	if l.config.Timeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(ctx, l.config.Timeout)
		defer cancel()
	}

	type airportResult struct {
		catalog []models.Airport
		err     error
	}
	type flightResult struct {
		flights []models.FlightRecord
		err     error
	}

	airportCh := make(chan airportResult, 1)
	flightCh := make(chan flightResult, 1)

	go func() {
		catalog, err := fetchWithRetry(loadCtx, l.config, l.airports.Name(), l.airports.Fetch)
		airportCh <- airportResult{catalog: catalog, err: err}
	}()

	go func() {
		flights, err := fetchWithRetry(loadCtx, l.config, l.flights.Name(), l.flights.Fetch)
		flightCh <- flightResult{flights: flights, err: err}
	}()

	ar := <-airportCh
	fr := <-flightCh

	if ar.err != nil {
		return Snapshot{State: StateFailed, FailedSource: l.airports.Name(), Err: ar.err, LoadedAt: time.Now()}
	}
	if fr.err != nil {
		return Snapshot{State: StateFailed, FailedSource: l.flights.Name(), Err: fr.err, LoadedAt: time.Now()}
	}

	airports := make(map[string]models.Airport, len(ar.catalog))
	for _, a := range ar.catalog {
		airports[a.IATACode] = a
	}

	return Snapshot{
		State:    StateReady,
		Catalog:  ar.catalog,
		Airports: airports,
		Flights:  fr.flights,
		LoadedAt: time.Now(),
	}
}

func fetchWithRetry[T any](ctx context.Context, config Config, name string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		if attempt > 0 {
			delayIdx := attempt - 1
			if delayIdx >= len(config.RetryDelays) {
				delayIdx = len(config.RetryDelays) - 1
			}
			if delayIdx >= 0 {
				select {
				case <-time.After(config.RetryDelays[delayIdx]):
				case <-ctx.Done():
					return zero, ctx.Err()
				}
			}
		}

		if config.RateLimiter != nil {
			if err := config.RateLimiter.Wait(ctx, name); err != nil {
				return zero, err
			}
		}

		result, err := fetch(ctx)
		if err == nil {
			return result, nil
		}

		lastErr = err
		log.Printf("Source %s attempt %d failed: %v", name, attempt+1, err)
	}

	return zero, lastErr
}
