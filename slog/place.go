package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/markotravel"
)

var _ markotravel.PlaceService = (*LoggingPlaceService)(nil)

// LoggingPlaceService wraps a PlaceService with logging.
type LoggingPlaceService struct {
	next   markotravel.PlaceService
	logger *slog.Logger
}

// NewLoggingPlaceService creates a new LoggingPlaceService.
func NewLoggingPlaceService(next markotravel.PlaceService, logger *slog.Logger) *LoggingPlaceService {
	return &LoggingPlaceService{next: next, logger: logger}
}

func (s *LoggingPlaceService) VisitedPlaces(ctx context.Context) (places []*markotravel.Place, err error) {
	defer func(begin time.Time) {
		s.logger.Info("visited places",
			"count", len(places),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.VisitedPlaces(ctx)
}

func (s *LoggingPlaceService) PlacesByStatus(ctx context.Context, status int) (places []*markotravel.Place, err error) {
	defer func(begin time.Time) {
		s.logger.Info("places by status",
			"status", status,
			"count", len(places),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.PlacesByStatus(ctx, status)
}

func (s *LoggingPlaceService) Search(ctx context.Context, query string) (result *markotravel.SearchResult, err error) {
	defer func(begin time.Time) {
		var places, sites int
		if result != nil {
			places = len(result.Places)
			sites = len(result.Sites)
		}
		s.logger.Info("search",
			"query", query,
			"places", places,
			"sites", sites,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}

func (s *LoggingPlaceService) Stats(ctx context.Context) (stats *markotravel.TravelStats, err error) {
	defer func(begin time.Time) {
		var total int
		if stats != nil {
			total = stats.TotalPlaces
		}
		s.logger.Info("travel stats",
			"total", total,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Stats(ctx)
}
