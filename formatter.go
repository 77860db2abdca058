package markotravel

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatJSON renders v as two-space indented JSON.
func FormatJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FormatPlaces renders places as a JSON array. Nil renders as "[]".
func FormatPlaces(places []*Place) (string, error) {
	if places == nil {
		places = []*Place{}
	}
	return FormatJSON(places)
}

// FormatPlacesByStatus renders places under a "<label> (<n> places):" header.
func FormatPlacesByStatus(status int, places []*Place) (string, error) {
	body, err := FormatPlaces(places)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (%d places):\n%s", StatusLabel(status), len(places), body), nil
}

// FormatSearchResult renders a search result as JSON with empty arrays
// instead of nulls.
func FormatSearchResult(result *SearchResult) (string, error) {
	out := SearchResult{Places: []*Place{}, Sites: []*HeritageSite{}}
	if result != nil {
		if result.Places != nil {
			out.Places = result.Places
		}
		if result.Sites != nil {
			out.Sites = result.Sites
		}
	}
	return FormatJSON(out)
}

// FormatCountries renders one line per country followed by its sub-regions.
func FormatCountries(countries []Country) string {
	if len(countries) == 0 {
		return ""
	}

	var b strings.Builder
	for _, c := range countries {
		fmt.Fprintf(&b, "%s  %s  %s\n", c.Code, c.Name, StatusLabel(c.StatusID))
		for _, sr := range c.SubRegions {
			fmt.Fprintf(&b, "    %s  %s  %s\n", sr.Code, sr.Name, StatusLabel(sr.StatusID))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
