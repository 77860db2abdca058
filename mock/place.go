package mock

import (
	"context"

	"github.com/fwojciec/markotravel"
)

var _ markotravel.PlaceService = (*PlaceService)(nil)

// PlaceService is a mock implementation of markotravel.PlaceService.
type PlaceService struct {
	VisitedPlacesFn  func(ctx context.Context) ([]*markotravel.Place, error)
	PlacesByStatusFn func(ctx context.Context, status int) ([]*markotravel.Place, error)
	SearchFn         func(ctx context.Context, query string) (*markotravel.SearchResult, error)
	StatsFn          func(ctx context.Context) (*markotravel.TravelStats, error)
}

func (s *PlaceService) VisitedPlaces(ctx context.Context) ([]*markotravel.Place, error) {
	return s.VisitedPlacesFn(ctx)
}

func (s *PlaceService) PlacesByStatus(ctx context.Context, status int) ([]*markotravel.Place, error) {
	return s.PlacesByStatusFn(ctx, status)
}

func (s *PlaceService) Search(ctx context.Context, query string) (*markotravel.SearchResult, error) {
	return s.SearchFn(ctx, query)
}

func (s *PlaceService) Stats(ctx context.Context) (*markotravel.TravelStats, error) {
	return s.StatsFn(ctx)
}
