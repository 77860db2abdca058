package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/markotravel"
	main "github.com/fwojciec/markotravel/cmd/markotravel"
	"github.com/fwojciec/markotravel/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestPlacesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists visited places by default", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Places: &mock.PlaceService{
				VisitedPlacesFn: func(_ context.Context) ([]*markotravel.Place, error) {
					return []*markotravel.Place{{Name: "Japan", Code: "JP", StatusID: 4}}, nil
				},
			},
		}

		err := (&main.PlacesCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"name": "Japan"`)
	})

	t.Run("filters by status with header", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Places: &mock.PlaceService{
				PlacesByStatusFn: func(_ context.Context, status int) ([]*markotravel.Place, error) {
					assert.Equal(t, 3, status)
					return []*markotravel.Place{}, nil
				},
			},
		}

		err := (&main.PlacesCmd{Status: intPtr(3)}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Wish to visit (0 places):\n[]\n", stdout.String())
	})

	t.Run("rejects invalid status before querying", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Places: &mock.PlaceService{},
		}

		err := (&main.PlacesCmd{Status: intPtr(5)}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, markotravel.EINVALID, markotravel.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints places and sites", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Places: &mock.PlaceService{
				SearchFn: func(_ context.Context, query string) (*markotravel.SearchResult, error) {
					return &markotravel.SearchResult{Places: []*markotravel.Place{{Name: "Kyoto"}}}, nil
				},
			},
		}

		err := (&main.SearchCmd{Query: "kyo"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"name": "Kyoto"`)
		assert.Contains(t, stdout.String(), `"whcSites": []`)
	})

	t.Run("rejects blank query", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Places: &mock.PlaceService{},
		}

		err := (&main.SearchCmd{Query: " "}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: search query required\n", stderr.String())
	})
}

func TestStatsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns error when stats fail", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Places: &mock.PlaceService{
				StatsFn: func(_ context.Context) (*markotravel.TravelStats, error) {
					return nil, errors.New("database is closed")
				},
			},
		}

		err := (&main.StatsCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: Internal error.\n", stderr.String())
	})
}

func TestCountriesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints countries with sub-regions", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := testDependencies(stdout, &bytes.Buffer{})

		err := (&main.CountriesCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "FR  France  Visited\n    FR-BRE  Brittany  Lived in\n", stdout.String())
	})

	t.Run("reports empty result", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := testDependencies(stdout, &bytes.Buffer{})
		deps.Members = markotravel.NewMembershipSet()

		err := (&main.CountriesCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "No countries found.\n", stdout.String())
	})
}

func TestConfigCmd_Run(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	deps := testDependencies(stdout, &bytes.Buffer{})

	err := (&main.ConfigCmd{}).Run(deps)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "kml: doc.kml\n")
	assert.Contains(t, stdout.String(), "output: out/map.html\n")
}
