package models

// SearchRequest is the body of POST /api/v1/search: the trip specification
// plus the optional filter state to apply to the constructed result.
type SearchRequest struct {
	Specification SearchSpecification `json:"specification"`
	Filters       *FilterState        `json:"filters,omitempty"`
}

func (r *SearchRequest) Validate() error {
	return r.Specification.Validate()
}
