package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ratnakarguru/skysearch/internal/models"
)

// DefaultFlightsURL is the public mock flight inventory.
const DefaultFlightsURL = "https://gist.githubusercontent.com/ratnakarguru/9c7e9b4ffcdbf653fe8c467b470f2eec/raw"

// FlightInventory fetches the remote flight inventory snapshot.
type FlightInventory struct {
	url    string
	client *http.Client
}

func NewFlightInventory(url string, timeout time.Duration) *FlightInventory {
	if url == "" {
		url = DefaultFlightsURL
	}
	return &FlightInventory{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (i *FlightInventory) Name() string {
	return "flights"
}

func (i *FlightInventory) Fetch(ctx context.Context) ([]models.FlightRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.url, nil)
	if err != nil {
		return nil, NewSourceError(i.Name(), err)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, NewSourceError(i.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewSourceError(i.Name(), fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var flights []models.FlightRecord
	if err := json.NewDecoder(resp.Body).Decode(&flights); err != nil {
		return nil, NewSourceError(i.Name(), err)
	}

	return flights, nil
}
