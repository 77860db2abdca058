package markotravel

import "strings"

// countryPrefix marks a Place description as a top-level country entry.
// The source export writes descriptions such as "World: Asia" for
// countries and the parent region name for everything else.
const countryPrefix = "World"

// Country is a reference-listed country found among the places, together
// with the sub-regions attached to it.
type Country struct {
	Code       string      `json:"code"`
	Name       string      `json:"name"`
	StatusID   int         `json:"statusId"`
	SubRegions []SubRegion `json:"subRegions"`
}

// SubRegion is a place attached to a Country by code prefix.
type SubRegion struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	StatusID int    `json:"statusId"`
}

// ParentCode returns the part of code before the first "-".
// Codes without a delimiter are returned unchanged.
func ParentCode(code string) string {
	parent, _, _ := strings.Cut(code, "-")
	return parent
}

// AggregateCountries partitions places into countries and sub-regions and
// attaches every sub-region to its parent country.
//
// A place is a country when its description starts with "World" and its
// code belongs to members. A place whose description does not start with
// "World" is a sub-region candidate; it is attached to the country named
// by ParentCode of its code and dropped when no such country exists.
// Places without a code, and "World" places outside members, are dropped.
//
// Countries are returned in order of first appearance. A later place with
// the same country code replaces the earlier name and status but keeps its
// position. Statuses are normalized. Sub-regions keep document order.
func AggregateCountries(places []*Place, members MembershipSet) []Country {
	index := make(map[string]int)
	var countries []Country
	var candidates []*Place

	for _, p := range places {
		if p == nil || p.Code == "" {
			continue
		}
		if !strings.HasPrefix(p.Description, countryPrefix) {
			candidates = append(candidates, p)
			continue
		}
		if !members.Has(p.Code) {
			continue
		}

		c := Country{
			Code:       p.Code,
			Name:       p.Name,
			StatusID:   NormalizeStatus(p.StatusID),
			SubRegions: []SubRegion{},
		}
		if i, ok := index[p.Code]; ok {
			countries[i] = c
			continue
		}
		index[p.Code] = len(countries)
		countries = append(countries, c)
	}

	for _, p := range candidates {
		i, ok := index[ParentCode(p.Code)]
		if !ok {
			continue
		}
		countries[i].SubRegions = append(countries[i].SubRegions, SubRegion{
			Code:     p.Code,
			Name:     p.Name,
			StatusID: NormalizeStatus(p.StatusID),
		})
	}

	return countries
}

// CountSubRegions returns the number of sub-regions attached across countries.
func CountSubRegions(countries []Country) int {
	var n int
	for _, c := range countries {
		n += len(c.SubRegions)
	}
	return n
}
