package models

// Airport is one entry of the remote airport directory. Entries without an
// IATA code never make it past source normalization.
type Airport struct {
	IATACode string `json:"iata_code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
}

// Label is the display form used by the search form and suggestion list.
func (a Airport) Label() string {
	if a.City == "" {
		return a.IATACode
	}
	return a.City + ", " + a.Country
}
