package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/markotravel"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *markotravel.Config

	Loader   markotravel.DocumentLoader
	Parser   markotravel.DatasetParser
	Places   markotravel.PlaceService
	Renderer markotravel.MapRenderer
	Writer   markotravel.ArtifactWriter

	// Members decides which "World" entries count as countries.
	Members markotravel.MembershipSet
}

// LoadDataset reads and parses the configured document.
func (d *Dependencies) LoadDataset() (*markotravel.Document, *markotravel.Dataset, error) {
	doc, err := d.Loader.Load(d.Config.DocumentPath)
	if err != nil {
		return nil, nil, err
	}
	ds, err := d.Parser.Parse(doc)
	if err != nil {
		return nil, nil, err
	}
	return doc, ds, nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	KML     string `short:"k" env:"MARKOTRAVEL_KML" help:"Path to the KML export (default: doc.kml)"`
	Config  string `short:"c" env:"MARKOTRAVEL_CONFIG" help:"Path to a YAML config file"`
	Verbose bool   `short:"v" help:"Log each operation to stderr"`

	Map       MapCmd       `cmd:"" help:"Generate the static map page"`
	Serve     ServeCmd     `cmd:"" help:"Serve travel queries as MCP tools over stdio"`
	Places    PlacesCmd    `cmd:"" help:"List visited places, or places with a given status"`
	Search    SearchCmd    `cmd:"" help:"Search places and UNESCO sites by name"`
	Stats     StatsCmd     `cmd:"" help:"Show travel statistics"`
	Countries CountriesCmd `cmd:"" help:"List countries with their sub-regions"`
	Show      ConfigCmd    `cmd:"" name:"config" help:"Print the effective configuration"`
}

// MapCmd is the "map" subcommand.
type MapCmd struct {
	Out   string `short:"o" env:"MARKOTRAVEL_OUT" help:"Output path for the HTML page (default: map.html)"`
	JSON  string `name:"json" help:"Also write the aggregated countries as JSON to this path"`
	Title string `help:"Page title"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}

// PlacesCmd is the "places" subcommand.
type PlacesCmd struct {
	Status *int `short:"s" help:"Status ID (0=Not visited, 1=Lived, 2=Planned, 3=Wishlist, 4=Visited)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Case-insensitive name fragment"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// CountriesCmd is the "countries" subcommand.
type CountriesCmd struct{}

// ConfigCmd is the "config" subcommand.
type ConfigCmd struct{}
