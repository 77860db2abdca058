// Package markotravel turns a personal travel-history KML export into a
// queryable dataset of places and UNESCO World Heritage sites and into a
// static choropleth map of visited countries.
//
// This package contains domain types, pure domain rules and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., etree/,
// sqlite/, leaflet/).
package markotravel
