package sqlite

import (
	"database/sql"

	"github.com/fwojciec/markotravel"
	"golang.org/x/text/cases"
)

const placeColumns = "name, description, code, status_id, color"

const siteColumns = "site_id, name, visited"

// fold case-folds s for case-insensitive matching. SQLite's lower() only
// handles ASCII, so folded copies are stored next to the originals.
func fold(s string) string {
	return cases.Fold().String(s)
}

// scanPlaces reads rows selected with placeColumns.
func scanPlaces(rows *sql.Rows) ([]*markotravel.Place, error) {
	defer rows.Close()

	places := []*markotravel.Place{}
	for rows.Next() {
		var p markotravel.Place
		if err := rows.Scan(&p.Name, &p.Description, &p.Code, &p.StatusID, &p.Color); err != nil {
			return nil, err
		}
		places = append(places, &p)
	}
	return places, rows.Err()
}

// scanSites reads rows selected with siteColumns.
func scanSites(rows *sql.Rows) ([]*markotravel.HeritageSite, error) {
	defer rows.Close()

	sites := []*markotravel.HeritageSite{}
	for rows.Next() {
		var s markotravel.HeritageSite
		if err := rows.Scan(&s.ID, &s.Name, &s.Visited); err != nil {
			return nil, err
		}
		sites = append(sites, &s)
	}
	return sites, rows.Err()
}
