package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ratnakarguru/skysearch/internal/models"
)

// DefaultAirportsURL is the public airport directory consumed as plain JSON.
const DefaultAirportsURL = "https://raw.githubusercontent.com/algolia/datasets/master/airports/airports.json"

type airportEntry struct {
	IATACode string `json:"iata_code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
}

// AirportDirectory fetches the remote airport catalog.
type AirportDirectory struct {
	url    string
	client *http.Client
}

func NewAirportDirectory(url string, timeout time.Duration) *AirportDirectory {
	if url == "" {
		url = DefaultAirportsURL
	}
	return &AirportDirectory{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (d *AirportDirectory) Name() string {
	return "airports"
}

// Fetch downloads the catalog and normalizes it. Entries lacking an IATA
// code are excluded; everything else is kept in catalog order, which the
// type-ahead relies on.
func (d *AirportDirectory) Fetch(ctx context.Context) ([]models.Airport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.url, nil)
	if err != nil {
		return nil, NewSourceError(d.Name(), err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, NewSourceError(d.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewSourceError(d.Name(), fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var entries []airportEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, NewSourceError(d.Name(), err)
	}

	catalog := make([]models.Airport, 0, len(entries))
	for _, e := range entries {
		if e.IATACode == "" {
			continue
		}
		catalog = append(catalog, models.Airport{
			IATACode: e.IATACode,
			Name:     e.Name,
			City:     e.City,
			Country:  e.Country,
		})
	}

	return catalog, nil
}
