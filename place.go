package markotravel

// Place represents one travel-relevant location: a country, a sub-region
// or any other subject tracked by the travel log.
type Place struct {
	Name string `json:"name"`

	// Description is free text. Country entries carry a "World..." prefix,
	// which AggregateCountries uses to tell countries from sub-regions.
	Description string `json:"description"`

	// Code is a hierarchical identifier such as "US" or "US-CA".
	// Empty for malformed entries.
	Code string `json:"code,omitempty"`

	// StatusID is the raw status from the source document. Use
	// NormalizeStatus before presenting it as one of the canonical statuses.
	StatusID int `json:"statusId"`

	Color string `json:"color,omitempty"`
}

// HeritageSite represents one UNESCO World Heritage List entry.
type HeritageSite struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Visited bool   `json:"visited"`
}

// Dataset holds everything extracted from a travel document.
// Both sequences preserve document order.
type Dataset struct {
	Places []*Place
	Sites  []*HeritageSite
}
