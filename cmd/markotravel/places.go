package main

import (
	"fmt"

	"github.com/fwojciec/markotravel"
)

// Run executes the places command.
func (c *PlacesCmd) Run(deps *Dependencies) error {
	out, err := c.format(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", markotravel.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, out)
	return nil
}

func (c *PlacesCmd) format(deps *Dependencies) (string, error) {
	if c.Status == nil {
		places, err := deps.Places.VisitedPlaces(deps.Ctx)
		if err != nil {
			return "", err
		}
		return markotravel.FormatPlaces(places)
	}

	if err := markotravel.ValidateStatus(*c.Status); err != nil {
		return "", err
	}
	places, err := deps.Places.PlacesByStatus(deps.Ctx, *c.Status)
	if err != nil {
		return "", err
	}
	return markotravel.FormatPlacesByStatus(*c.Status, places)
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if err := markotravel.ValidateQuery(c.Query); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", markotravel.ErrorMessage(err))
		return err
	}

	result, err := deps.Places.Search(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", markotravel.ErrorMessage(err))
		return err
	}

	out, err := markotravel.FormatSearchResult(result)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, out)
	return nil
}

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Places.Stats(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", markotravel.ErrorMessage(err))
		return err
	}

	out, err := markotravel.FormatJSON(stats)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, out)
	return nil
}
