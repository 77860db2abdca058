package markotravel

// Default configuration values.
const (
	DefaultDocumentPath = "doc.kml"
	DefaultMapPath      = "map.html"
	DefaultMapTitle     = "Mark O'Travel"
)

// Config holds file locations and presentation settings.
type Config struct {
	DocumentPath string    `yaml:"kml"`
	Map          MapConfig `yaml:"map"`
}

// MapConfig configures the static map artifact.
type MapConfig struct {
	Output string `yaml:"output"`

	// JSON is an optional path for a JSON export of the aggregated countries.
	JSON  string `yaml:"json"`
	Title string `yaml:"title"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		DocumentPath: DefaultDocumentPath,
		Map: MapConfig{
			Output: DefaultMapPath,
			Title:  DefaultMapTitle,
		},
	}
}

// Merge overlays the non-empty fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.DocumentPath != "" {
		c.DocumentPath = other.DocumentPath
	}
	if other.Map.Output != "" {
		c.Map.Output = other.Map.Output
	}
	if other.Map.JSON != "" {
		c.Map.JSON = other.Map.JSON
	}
	if other.Map.Title != "" {
		c.Map.Title = other.Map.Title
	}
}

// Validate returns an error if the configuration is unusable.
func (c *Config) Validate() error {
	if c.DocumentPath == "" {
		return Errorf(EINVALID, "document path required")
	}
	if c.Map.Output == "" {
		return Errorf(EINVALID, "map output path required")
	}
	return nil
}
