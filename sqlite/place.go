package sqlite

import (
	"context"

	"github.com/fwojciec/markotravel"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ markotravel.PlaceService = (*PlaceService)(nil)

// PlaceService implements markotravel.PlaceService using SQLite.
type PlaceService struct {
	db *DB
}

// NewPlaceService creates a new PlaceService.
func NewPlaceService(db *DB) *PlaceService {
	return &PlaceService{db: db}
}

// Load replaces the stored dataset with ds in a single transaction.
func (s *PlaceService) Load(ctx context.Context, ds *markotravel.Dataset) error {
	if ds == nil {
		return markotravel.Errorf(markotravel.EINVALID, "dataset required")
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM places"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM sites"); err != nil {
		return err
	}

	for i, p := range ds.Places {
		if p == nil {
			continue
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO places (id, position, name, name_folded, description, code, status_id, color)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), i, p.Name, fold(p.Name), p.Description, p.Code, p.StatusID, p.Color); err != nil {
			return err
		}
	}

	for i, site := range ds.Sites {
		if site == nil {
			continue
		}
		visited := 0
		if site.Visited {
			visited = 1
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO sites (id, position, site_id, name, name_folded, visited)
			VALUES (?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), i, site.ID, site.Name, fold(site.Name), visited); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// VisitedPlaces returns places whose raw status is StatusVisited.
func (s *PlaceService) VisitedPlaces(ctx context.Context) ([]*markotravel.Place, error) {
	return s.findPlacesByStatus(ctx, markotravel.StatusVisited)
}

// PlacesByStatus returns places whose raw status equals status.
func (s *PlaceService) PlacesByStatus(ctx context.Context, status int) ([]*markotravel.Place, error) {
	if err := markotravel.ValidateStatus(status); err != nil {
		return nil, err
	}
	return s.findPlacesByStatus(ctx, status)
}

func (s *PlaceService) findPlacesByStatus(ctx context.Context, status int) ([]*markotravel.Place, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+placeColumns+`
		FROM places
		WHERE status_id = ?
		ORDER BY position
	`, status)
	if err != nil {
		return nil, err
	}
	return scanPlaces(rows)
}

// Search returns places and heritage sites whose name contains query, ignoring case.
func (s *PlaceService) Search(ctx context.Context, query string) (*markotravel.SearchResult, error) {
	if err := markotravel.ValidateQuery(query); err != nil {
		return nil, err
	}
	q := fold(query)

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+placeColumns+`
		FROM places
		WHERE instr(name_folded, ?) > 0
		ORDER BY position
	`, q)
	if err != nil {
		return nil, err
	}
	places, err := scanPlaces(rows)
	if err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, `
		SELECT `+siteColumns+`
		FROM sites
		WHERE instr(name_folded, ?) > 0
		ORDER BY position
	`, q)
	if err != nil {
		return nil, err
	}
	sites, err := scanSites(rows)
	if err != nil {
		return nil, err
	}

	return &markotravel.SearchResult{Places: places, Sites: sites}, nil
}

// Stats counts places per normalized status label and heritage sites by visit state.
func (s *PlaceService) Stats(ctx context.Context) (*markotravel.TravelStats, error) {
	stats := &markotravel.TravelStats{ByStatus: make(map[string]int)}

	rows, err := s.db.QueryContext(ctx, "SELECT status_id, COUNT(*) FROM places GROUP BY status_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var statusID, n int
		if err := rows.Scan(&statusID, &n); err != nil {
			return nil, err
		}
		stats.TotalPlaces += n
		stats.ByStatus[markotravel.StatusLabel(markotravel.NormalizeStatus(statusID))] += n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(visited), 0) FROM sites",
	).Scan(&stats.Unesco.Total, &stats.Unesco.Visited); err != nil {
		return nil, err
	}
	stats.Unesco.NotVisited = stats.Unesco.Total - stats.Unesco.Visited

	return stats, nil
}
