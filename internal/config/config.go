// Package config provides the run settings for the sight tracer commands.
// Settings come from an optional YAML file; anything it leaves out keeps its
// default.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/sightline/internal/core/raster"
	"chosenoffset.com/sightline/internal/world/grid"
	"chosenoffset.com/sightline/internal/world/layout"
)

// DefaultPath is where the commands look for a config file
const DefaultPath = "sightline.yaml"

// ErrOriginOutOfBounds is returned by Validate when the observer is off the grid
var ErrOriginOutOfBounds = errors.New("origin out of bounds")

// Config holds all settings for a run
type Config struct {
	// Layout names the built-in map to trace over
	Layout string `yaml:"layout"`

	// Origin is the observer cell
	Origin OriginConfig `yaml:"origin"`

	Output OutputConfig `yaml:"output"`
	Viewer ViewerConfig `yaml:"viewer"`
}

// OriginConfig is the observer position in grid cells
type OriginConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Point converts the origin to a grid point
func (o OriginConfig) Point() raster.Point {
	return raster.Point{X: o.X, Y: o.Y}
}

// OutputConfig controls the text dump
type OutputConfig struct {
	Delimiter string `yaml:"delimiter"` // Written after every cell code
}

// ViewerConfig controls the interactive window
type ViewerConfig struct {
	CellSize int    `yaml:"cell_size"` // Pixels per grid cell
	Title    string `yaml:"title"`
}

// DefaultConfig returns the settings of the reference run
func DefaultConfig() *Config {
	return &Config{
		Layout: layout.NameDefault,
		Origin: OriginConfig{X: 2, Y: 2},
		Output: OutputConfig{
			Delimiter: ", ",
		},
		Viewer: ViewerConfig{
			CellSize: 64,
			Title:    "sightline",
		},
	}
}

// Load reads config from a YAML file on top of the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML config on top of the defaults
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// Validate checks the settings against the grid they will be used with
func (c *Config) Validate(g *grid.Grid) error {
	if !g.InBounds(c.Origin.Point()) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d grid", ErrOriginOutOfBounds,
			c.Origin.X, c.Origin.Y, g.Width(), g.Height())
	}

	if c.Viewer.CellSize <= 0 {
		return fmt.Errorf("invalid viewer cell size: %d", c.Viewer.CellSize)
	}

	return nil
}
