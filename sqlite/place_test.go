package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/markotravel"
	"github.com/fwojciec/markotravel/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() *markotravel.Dataset {
	return &markotravel.Dataset{
		Places: []*markotravel.Place{
			{Name: "United States", Description: "World: North America", Code: "US", StatusID: 4, Color: "#43a047"},
			{Name: "California", Description: "United States", Code: "US-CA", StatusID: 1},
			{Name: "Côte d'Ivoire", Description: "World: Africa", Code: "CI", StatusID: 4},
			{Name: "Singapore", Description: "World: Asia", Code: "SG", StatusID: 916343000},
			{Name: "Chile", Description: "World: South America", Code: "CL", StatusID: 2},
			{Name: "Atlantis"},
		},
		Sites: []*markotravel.HeritageSite{
			{ID: "Site A", Name: "Historic City of Kyoto", Visited: true},
			{ID: "Site B", Name: "Rapa Nui National Park", Visited: false},
			{ID: "Site C", Name: "Historic Centre of Santiago", Visited: true},
		},
	}
}

func setupPlaceService(t *testing.T) *sqlite.PlaceService {
	t.Helper()
	svc := sqlite.NewPlaceService(setupTestDB(t))
	require.NoError(t, svc.Load(context.Background(), testDataset()))
	return svc
}

func placeNames(places []*markotravel.Place) []string {
	names := make([]string, 0, len(places))
	for _, p := range places {
		names = append(names, p.Name)
	}
	return names
}

func TestPlaceService_Load(t *testing.T) {
	t.Parallel()

	t.Run("replaces previously loaded data", func(t *testing.T) {
		t.Parallel()

		svc := setupPlaceService(t)
		ctx := context.Background()

		err := svc.Load(ctx, &markotravel.Dataset{
			Places: []*markotravel.Place{{Name: "Japan", Code: "JP", StatusID: 4}},
		})
		require.NoError(t, err)

		visited, err := svc.VisitedPlaces(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Japan"}, placeNames(visited))

		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.TotalPlaces)
		assert.Zero(t, stats.Unesco.Total)
	})

	t.Run("round-trips all place fields", func(t *testing.T) {
		t.Parallel()

		svc := setupPlaceService(t)

		visited, err := svc.VisitedPlaces(context.Background())
		require.NoError(t, err)

		require.NotEmpty(t, visited)
		assert.Equal(t, testDataset().Places[0], visited[0])
	})

	t.Run("returns EINVALID for nil dataset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPlaceService(setupTestDB(t))

		err := svc.Load(context.Background(), nil)
		require.Error(t, err)
		assert.Equal(t, markotravel.EINVALID, markotravel.ErrorCode(err))
	})
}

func TestPlaceService_VisitedPlaces(t *testing.T) {
	t.Parallel()

	t.Run("returns visited places in document order", func(t *testing.T) {
		t.Parallel()

		svc := setupPlaceService(t)

		places, err := svc.VisitedPlaces(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"United States", "Côte d'Ivoire"}, placeNames(places))
	})

	t.Run("returns empty slice when nothing is loaded", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPlaceService(setupTestDB(t))

		places, err := svc.VisitedPlaces(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, places)
		assert.Empty(t, places)
	})
}

func TestPlaceService_PlacesByStatus(t *testing.T) {
	t.Parallel()

	t.Run("filters by raw status", func(t *testing.T) {
		t.Parallel()

		svc := setupPlaceService(t)
		ctx := context.Background()

		lived, err := svc.PlacesByStatus(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"California"}, placeNames(lived))

		planned, err := svc.PlacesByStatus(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"Chile"}, placeNames(planned))

		notVisited, err := svc.PlacesByStatus(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"Atlantis"}, placeNames(notVisited))
	})

	t.Run("rejects status outside 0-4", func(t *testing.T) {
		t.Parallel()

		svc := setupPlaceService(t)

		for _, status := range []int{-1, 5, 916343000} {
			_, err := svc.PlacesByStatus(context.Background(), status)
			require.Error(t, err)
			assert.Equal(t, markotravel.EINVALID, markotravel.ErrorCode(err))
		}
	})
}

func TestPlaceService_Search(t *testing.T) {
	t.Parallel()

	t.Run("matches places and sites case-insensitively", func(t *testing.T) {
		t.Parallel()

		svc := setupPlaceService(t)

		result, err := svc.Search(context.Background(), "HISTORIC")

		require.NoError(t, err)
		assert.Empty(t, result.Places)
		require.Len(t, result.Sites, 2)
		assert.Equal(t, "Site A", result.Sites[0].ID)
		assert.True(t, result.Sites[0].Visited)
		assert.Equal(t, "Site C", result.Sites[1].ID)
	})

	t.Run("matches substrings in places", func(t *testing.T) {
		t.Parallel()

		svc := setupPlaceService(t)

		result, err := svc.Search(context.Background(), "ali")

		require.NoError(t, err)
		assert.Equal(t, []string{"California"}, placeNames(result.Places))
	})

	t.Run("folds non-ASCII names", func(t *testing.T) {
		t.Parallel()

		svc := setupPlaceService(t)

		result, err := svc.Search(context.Background(), "CÔTE")

		require.NoError(t, err)
		assert.Equal(t, []string{"Côte d'Ivoire"}, placeNames(result.Places))
	})

	t.Run("searches site titles not identifiers", func(t *testing.T) {
		t.Parallel()

		svc := setupPlaceService(t)

		result, err := svc.Search(context.Background(), "Site B")

		require.NoError(t, err)
		assert.Empty(t, result.Sites)
	})

	t.Run("returns empty slices when nothing matches", func(t *testing.T) {
		t.Parallel()

		svc := setupPlaceService(t)

		result, err := svc.Search(context.Background(), "zzz")

		require.NoError(t, err)
		assert.NotNil(t, result.Places)
		assert.NotNil(t, result.Sites)
		assert.Empty(t, result.Places)
		assert.Empty(t, result.Sites)
	})

	t.Run("rejects empty query", func(t *testing.T) {
		t.Parallel()

		svc := setupPlaceService(t)

		_, err := svc.Search(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, markotravel.EINVALID, markotravel.ErrorCode(err))
	})
}

func TestPlaceService_Stats(t *testing.T) {
	t.Parallel()

	t.Run("counts places per normalized label and sites by visit", func(t *testing.T) {
		t.Parallel()

		svc := setupPlaceService(t)

		stats, err := svc.Stats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 6, stats.TotalPlaces)
		assert.Equal(t, map[string]int{
			"Visited":     2,
			"Lived in":    1,
			"Transited":   2,
			"Not visited": 1,
		}, stats.ByStatus)
		assert.Equal(t, markotravel.HeritageStats{Total: 3, Visited: 2, NotVisited: 1}, stats.Unesco)
	})

	t.Run("returns zero counts for empty dataset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPlaceService(setupTestDB(t))

		stats, err := svc.Stats(context.Background())

		require.NoError(t, err)
		assert.Zero(t, stats.TotalPlaces)
		assert.Empty(t, stats.ByStatus)
		assert.Equal(t, markotravel.HeritageStats{}, stats.Unesco)
	})
}

// Final sigma only matches its capital under case folding, not lower-casing.
func TestPlaceService_Search_Folding(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewPlaceService(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx, &markotravel.Dataset{
		Places: []*markotravel.Place{{Name: "Palace of Knossos (Κνωσός)", Code: "GR-M"}},
	}))

	result, err := svc.Search(ctx, "ΚΝΩΣΌΣ")

	require.NoError(t, err)
	assert.Equal(t, []string{"Palace of Knossos (Κνωσός)"}, placeNames(result.Places))
}
