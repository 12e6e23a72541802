package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ratnakarguru/skysearch/internal/farecal"
	"github.com/ratnakarguru/skysearch/internal/itinerary"
	"github.com/ratnakarguru/skysearch/internal/loader"
	"github.com/ratnakarguru/skysearch/internal/models"
	"github.com/ratnakarguru/skysearch/internal/searchform"
)

// Suggest serves the airport type-ahead. It prefers the already published
// snapshot and only triggers a load on a cold start.
func (h *SearchHandler) Suggest(c echo.Context) error {
	snap := h.session.Current()
	if snap.State != loader.StateReady {
		snap = h.session.Load(c.Request().Context())
	}
	if snap.State == loader.StateFailed {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "source_unavailable",
			Message: "Failed to load " + snap.FailedSource + ": " + snap.Err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	query := c.QueryParam("q")
	return c.JSON(http.StatusOK, models.SuggestResponse{
		Query:    query,
		Airports: searchform.Suggest(snap.Catalog, query),
	})
}

type calendarResponse struct {
	Outbound []farecal.Entry `json:"outbound"`
	Return   []farecal.Entry `json:"return,omitempty"`
}

// Calendar serves the fare calendar strip. With a returnDate it serves the
// dual round-trip strips instead.
func (h *SearchHandler) Calendar(c echo.Context) error {
	snap := h.session.Current()
	if snap.State != loader.StateReady {
		snap = h.session.Load(c.Request().Context())
	}
	if snap.State == loader.StateFailed {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "source_unavailable",
			Message: "Failed to load " + snap.FailedSource + ": " + snap.Err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	from := itinerary.ExtractCode(c.QueryParam("from"))
	to := itinerary.ExtractCode(c.QueryParam("to"))

	days := 7
	if d, err := strconv.Atoi(c.QueryParam("days")); err == nil && d > 0 {
		days = d
	}

	depDate := parseDateOrToday(c.QueryParam("date"))

	if ret := c.QueryParam("returnDate"); ret != "" {
		outbound, inbound := farecal.DualStrip(depDate, parseDateOrToday(ret), days, snap.Flights, from, to)
		return c.JSON(http.StatusOK, calendarResponse{Outbound: outbound, Return: inbound})
	}

	return c.JSON(http.StatusOK, calendarResponse{
		Outbound: farecal.Strip(depDate, days, snap.Flights, from, to),
	})
}

func parseDateOrToday(s string) time.Time {
	if t, err := time.Parse(models.DateLayout, s); err == nil {
		return t
	}
	return time.Now()
}
