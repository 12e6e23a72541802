package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ratnakarguru/skysearch/internal/cache"
	"github.com/ratnakarguru/skysearch/internal/filter"
	"github.com/ratnakarguru/skysearch/internal/itinerary"
	"github.com/ratnakarguru/skysearch/internal/loader"
	"github.com/ratnakarguru/skysearch/internal/models"
	"github.com/ratnakarguru/skysearch/pkg/currency"
)

type SearchHandler struct {
	session     *loader.Session
	cache       cache.Cache
	constructor *itinerary.Constructor
}

func NewSearchHandler(session *loader.Session, c cache.Cache, constructor *itinerary.Constructor) *SearchHandler {
	return &SearchHandler{
		session:     session,
		cache:       c,
		constructor: constructor,
	}
}

func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	snap := h.session.Load(ctx)
	if snap.State == loader.StateFailed {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "source_unavailable",
			Message: "Failed to load " + snap.FailedSource + ": " + snap.Err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	filters := models.FilterState{MaxPrice: models.DefaultMaxPrice}
	if req.Filters != nil {
		filters = *req.Filters
	}

	if req.Specification.Type == models.TripRoundTrip {
		return h.roundTrip(c, req.Specification, filters, snap, startTime)
	}

	cacheHit := false
	itineraries, found := h.cache.Get(ctx, req.Specification)
	if found {
		cacheHit = true
	} else {
		itineraries = h.constructor.Construct(req.Specification, snap.Flights)
		_ = h.cache.Set(ctx, req.Specification, itineraries)
	}

	filtered := filter.Apply(itineraries, filters)

	return c.JSON(http.StatusOK, models.SearchResponse{
		Specification: req.Specification,
		Metadata: models.SearchMetadata{
			TotalResults: len(filtered),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     cacheHit,
			Sequence:     snap.Seq,
		},
		Itineraries:    filtered,
		UniqueAirlines: filter.UniqueAirlines(nil, itineraries),
		NoFlightsFound: len(itineraries) == 0,
	})
}

// roundTrip returns two independently selectable lists. Fares carry a fresh
// per-direction offset on every load, so round trips bypass the cache.
func (h *SearchHandler) roundTrip(c echo.Context, spec models.SearchSpecification, filters models.FilterState, snap loader.Snapshot, startTime time.Time) error {
	outbound, inbound := h.constructor.RoundTrip(spec, snap.Flights)

	filteredOutbound := filter.ApplyFlights(outbound, filters)
	filteredInbound := filter.ApplyFlights(inbound, filters)

	var selectedOutbound, selectedInbound *models.FlightRecord
	if len(filteredOutbound) > 0 {
		selectedOutbound = &filteredOutbound[0]
	}
	if len(filteredInbound) > 0 {
		selectedInbound = &filteredInbound[0]
	}
	grandTotal := itinerary.GrandTotal(selectedOutbound, selectedInbound)

	return c.JSON(http.StatusOK, models.RoundTripResponse{
		Specification: spec,
		Metadata: models.SearchMetadata{
			TotalResults: len(filteredOutbound) + len(filteredInbound),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     false,
			Sequence:     snap.Seq,
		},
		Outbound:       filteredOutbound,
		Return:         filteredInbound,
		GrandTotal:     grandTotal,
		GrandTotalINR:  currency.FormatINR(grandTotal),
		UniqueAirlines: filter.UniqueAirlines([][]models.FlightRecord{outbound, inbound}, nil),
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
