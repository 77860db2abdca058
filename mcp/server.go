// Package mcp exposes a PlaceService as Model Context Protocol tools.
package mcp

import (
	"context"

	"github.com/fwojciec/markotravel"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server identity reported to clients.
const (
	ServerName    = "mark-o-travel"
	ServerVersion = "1.0.0"
)

// Tool names.
const (
	ToolVisitedPlaces  = "get_visited_places"
	ToolPlacesByStatus = "get_places_by_status"
	ToolSearchPlaces   = "search_places"
	ToolTravelStats    = "get_travel_stats"
)

// Server answers tool calls from a PlaceService.
type Server struct {
	places markotravel.PlaceService
	server *mcp.Server
}

// NewServer creates a Server with all tools registered.
func NewServer(places markotravel.PlaceService) *Server {
	s := &Server{
		places: places,
		server: mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: ServerVersion}, nil),
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolVisitedPlaces,
		Description: "Get all places with status 'Visited'",
	}, s.visitedPlaces)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolPlacesByStatus,
		Description: "Get places filtered by status: 0=Not visited, 1=Lived, 2=Planned, 3=Wishlist, 4=Visited",
	}, s.placesByStatus)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolSearchPlaces,
		Description: "Search places and UNESCO sites by name (case-insensitive substring match)",
	}, s.searchPlaces)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolTravelStats,
		Description: "Get travel statistics summary",
	}, s.travelStats)

	return s
}

// Run serves tool calls over stdin/stdout until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves tool calls over t without blocking.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}

type noInput struct{}

type statusInput struct {
	Status int `json:"status" jsonschema:"Status ID (0-4)"`
}

type searchInput struct {
	Query string `json:"query" jsonschema:"Search query"`
}

func (s *Server) visitedPlaces(ctx context.Context, _ *mcp.CallToolRequest, _ noInput) (*mcp.CallToolResult, any, error) {
	places, err := s.places.VisitedPlaces(ctx)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return formatResult(markotravel.FormatPlaces(places))
}

func (s *Server) placesByStatus(ctx context.Context, _ *mcp.CallToolRequest, in statusInput) (*mcp.CallToolResult, any, error) {
	if err := markotravel.ValidateStatus(in.Status); err != nil {
		return errorResult(err), nil, nil
	}
	places, err := s.places.PlacesByStatus(ctx, in.Status)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return formatResult(markotravel.FormatPlacesByStatus(in.Status, places))
}

func (s *Server) searchPlaces(ctx context.Context, _ *mcp.CallToolRequest, in searchInput) (*mcp.CallToolResult, any, error) {
	if err := markotravel.ValidateQuery(in.Query); err != nil {
		return errorResult(err), nil, nil
	}
	result, err := s.places.Search(ctx, in.Query)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return formatResult(markotravel.FormatSearchResult(result))
}

func (s *Server) travelStats(ctx context.Context, _ *mcp.CallToolRequest, _ noInput) (*mcp.CallToolResult, any, error) {
	stats, err := s.places.Stats(ctx)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return formatResult(markotravel.FormatJSON(stats))
}

func formatResult(text string, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return errorResult(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil, nil
}

// errorResult reports err as a tool error. Non-application errors are masked.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: markotravel.ErrorMessage(err)}},
		IsError: true,
	}
}
