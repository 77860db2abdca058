package markotravel

import (
	"context"
	"strings"
)

// PlaceService represents a service for querying an extracted dataset.
type PlaceService interface {
	// VisitedPlaces returns places whose raw status is StatusVisited.
	VisitedPlaces(ctx context.Context) ([]*Place, error)

	// PlacesByStatus returns places whose raw status equals status.
	// Returns EINVALID if status is outside 0-4.
	PlacesByStatus(ctx context.Context, status int) ([]*Place, error)

	// Search returns places and heritage sites whose name contains query,
	// ignoring case. Returns EINVALID if query is empty.
	Search(ctx context.Context, query string) (*SearchResult, error)

	// Stats summarizes the dataset.
	Stats(ctx context.Context) (*TravelStats, error)
}

// SearchResult holds the matches of a search.
type SearchResult struct {
	Places []*Place        `json:"places"`
	Sites  []*HeritageSite `json:"whcSites"`
}

// TravelStats summarizes a dataset.
type TravelStats struct {
	TotalPlaces int `json:"totalPlaces"`

	// ByStatus counts places per normalized status label.
	ByStatus map[string]int `json:"byStatus"`

	Unesco HeritageStats `json:"unesco"`
}

// HeritageStats counts heritage sites by visit state.
type HeritageStats struct {
	Total      int `json:"total"`
	Visited    int `json:"visited"`
	NotVisited int `json:"notVisited"`
}

// ValidateQuery returns EINVALID if query is blank.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return Errorf(EINVALID, "search query required")
	}
	return nil
}
