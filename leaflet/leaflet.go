// Package leaflet renders the static travel map page using Leaflet.
package leaflet

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/fwojciec/markotravel"
	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/samber/lo"
)

// External resources referenced by the page.
const (
	DefaultLeafletCSS = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
	DefaultLeafletJS  = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
	DefaultTileURL    = "https://{s}.basemaps.cartocdn.com/light_nolabels/{z}/{x}/{y}{r}.png"
	DefaultGeoJSONURL = "https://raw.githubusercontent.com/datasets/geo-countries/master/data/countries.geojson"

	// CodeProperty is the GeoJSON feature property holding the country code.
	CodeProperty = "ISO3166-1-Alpha-2"
)

// UnknownColor fills shapes without a recognised country status.
const UnknownColor = "#e0e0e0"

// DisplayOrder is the order statuses appear in the stats bar and legend.
var DisplayOrder = []int{
	markotravel.StatusVisited,
	markotravel.StatusLived,
	markotravel.StatusTransited,
	markotravel.StatusNotVisited,
}

var statusColors = map[int]string{
	markotravel.StatusNotVisited: "#9e9e9e",
	markotravel.StatusLived:      "#e53935",
	markotravel.StatusVisited:    "#43a047",
	markotravel.StatusTransited:  "#ff9800",
}

// StatusColor returns the fill color for a normalized status.
func StatusColor(status int) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return UnknownColor
}

//go:embed map.html.tmpl
var pageTemplate string

var _ markotravel.MapRenderer = (*Renderer)(nil)

// Renderer renders a MapPage as a self-contained HTML document.
type Renderer struct {
	LeafletCSS string
	LeafletJS  string
	TileURL    string
	GeoJSONURL string

	tmpl *template.Template
}

// NewRenderer returns a Renderer using the default external resources.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("map").Funcs(sprig.FuncMap()).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse map template: %w", err)
	}
	return &Renderer{
		LeafletCSS: DefaultLeafletCSS,
		LeafletJS:  DefaultLeafletJS,
		TileURL:    DefaultTileURL,
		GeoJSONURL: DefaultGeoJSONURL,
		tmpl:       tmpl,
	}, nil
}

type statView struct {
	Status int
	Label  string
	Color  string
	Count  int
}

type pageView struct {
	Title      string
	SourceHash string

	Stats  []statView
	Legend []statView
	Total  int

	Countries    []markotravel.Country
	Labels       map[int]string
	Colors       map[int]string
	UnknownColor string

	LeafletCSS   string
	LeafletJS    string
	TileURL      string
	GeoJSONURL   string
	CodeProperty string
}

// Render writes the page to w.
func (r *Renderer) Render(w io.Writer, page *markotravel.MapPage) error {
	if page == nil {
		return markotravel.Errorf(markotravel.EINVALID, "map page required")
	}
	if err := r.tmpl.Execute(w, r.view(page)); err != nil {
		return fmt.Errorf("render map: %w", err)
	}
	return nil
}

func (r *Renderer) view(page *markotravel.MapPage) *pageView {
	// The page script iterates both levels, so neither may encode as null.
	countries := lo.Map(page.Countries, func(c markotravel.Country, _ int) markotravel.Country {
		if c.SubRegions == nil {
			c.SubRegions = []markotravel.SubRegion{}
		}
		return c
	})

	counts := lo.CountValuesBy(countries, func(c markotravel.Country) int {
		return c.StatusID
	})
	legend := lo.Map(DisplayOrder, func(status int, _ int) statView {
		return statView{
			Status: status,
			Label:  markotravel.StatusLabel(status),
			Color:  StatusColor(status),
			Count:  counts[status],
		}
	})
	stats := lo.Filter(legend, func(s statView, _ int) bool {
		return s.Count > 0
	})

	return &pageView{
		Title:        page.Title,
		SourceHash:   page.SourceHash,
		Stats:        stats,
		Legend:       legend,
		Total:        len(countries),
		Countries:    countries,
		Labels:       markotravel.StatusLabels(),
		Colors:       statusColors,
		UnknownColor: UnknownColor,
		LeafletCSS:   r.LeafletCSS,
		LeafletJS:    r.LeafletJS,
		TileURL:      r.TileURL,
		GeoJSONURL:   r.GeoJSONURL,
		CodeProperty: CodeProperty,
	}
}
