package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/markotravel"
	"github.com/fwojciec/markotravel/etree"
	"github.com/fwojciec/markotravel/fs"
	"github.com/fwojciec/markotravel/leaflet"
	mtslog "github.com/fwojciec/markotravel/slog"
	"github.com/fwojciec/markotravel/sqlite"
	"github.com/fwojciec/markotravel/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// In-memory SQLite database backing the query commands.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("markotravel"),
		kong.Description("Query a travel-history KML export and render it as a map"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'markotravel --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := cli.Configure()
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", markotravel.ErrorMessage(err))
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Config:  cfg,
		Loader:  mtslog.NewLoggingDocumentLoader(fs.NewLoader(), logger),
		Parser:  mtslog.NewLoggingDatasetParser(etree.NewParser(), logger),
		Writer:  mtslog.NewLoggingArtifactWriter(fs.NewWriter(), logger),
		Members: markotravel.ReferenceMembers,
	}

	switch command := strings.Fields(kongCtx.Command())[0]; command {
	case "map":
		renderer, err := leaflet.NewRenderer()
		if err != nil {
			return err
		}
		deps.Renderer = renderer
	case "places", "search", "stats", "serve":
		places, err := m.openPlaces(deps)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", markotravel.ErrorMessage(err))
			if markotravel.ErrorCode(err) == markotravel.ENOTFOUND {
				fmt.Fprintln(stderr, "Hint: Use --kml or set MARKOTRAVEL_KML to point at your export")
			}
			return err
		}
		defer m.Close()
		deps.Places = mtslog.NewLoggingPlaceService(places, logger)
	}

	return kongCtx.Run(deps)
}

// openPlaces loads the configured document into an in-memory database.
func (m *Main) openPlaces(deps *Dependencies) (*sqlite.PlaceService, error) {
	_, ds, err := deps.LoadDataset()
	if err != nil {
		return nil, err
	}

	m.DB = sqlite.NewDB(":memory:")
	if err := m.DB.Open(); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	places := sqlite.NewPlaceService(m.DB)
	if err := places.Load(deps.Ctx, ds); err != nil {
		m.Close()
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return places, nil
}

// Configure resolves the effective configuration: defaults, then the
// YAML file, then flags and environment.
func (c *CLI) Configure() (*markotravel.Config, error) {
	cfg := markotravel.NewConfig()

	if c.Config != "" {
		fileCfg, err := yaml.LoadConfig(c.Config)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fileCfg)
	}

	cfg.Merge(&markotravel.Config{
		DocumentPath: c.KML,
		Map: markotravel.MapConfig{
			Output: c.Map.Out,
			JSON:   c.Map.JSON,
			Title:  c.Map.Title,
		},
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger logs to w. Service calls are logged at Info, which only
// shows with verbose set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
