package main

import (
	"bytes"
	"fmt"

	"github.com/fwojciec/markotravel"
	"golang.org/x/sync/errgroup"
)

type artifact struct {
	path    string
	data    []byte
	changed bool
}

// Run executes the map command.
func (c *MapCmd) Run(deps *Dependencies) error {
	if err := c.run(deps); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", markotravel.ErrorMessage(err))
		return err
	}
	return nil
}

func (c *MapCmd) run(deps *Dependencies) error {
	doc, ds, err := deps.LoadDataset()
	if err != nil {
		return err
	}

	countries := markotravel.AggregateCountries(ds.Places, deps.Members)

	var page bytes.Buffer
	if err := deps.Renderer.Render(&page, &markotravel.MapPage{
		Title:      deps.Config.Map.Title,
		Countries:  countries,
		SourceHash: doc.Hash,
	}); err != nil {
		return err
	}

	artifacts := []*artifact{{path: deps.Config.Map.Output, data: page.Bytes()}}
	if deps.Config.Map.JSON != "" {
		data, err := markotravel.FormatJSON(countries)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, &artifact{path: deps.Config.Map.JSON, data: []byte(data + "\n")})
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	for _, a := range artifacts {
		g.Go(func() error {
			changed, err := deps.Writer.WriteArtifact(ctx, a.path, a.data)
			if err != nil {
				return fmt.Errorf("write %s: %w", a.path, err)
			}
			a.changed = changed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, a := range artifacts {
		if a.changed {
			fmt.Fprintf(deps.Stdout, "Generated %s\n", a.path)
		} else {
			fmt.Fprintf(deps.Stdout, "Unchanged %s\n", a.path)
		}
	}
	fmt.Fprintf(deps.Stdout, "Countries: %d, Sub-regions: %d\n", len(countries), markotravel.CountSubRegions(countries))
	return nil
}
