package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ekinp/vocprep/pkg/voc"
)

// Config holds the application configuration
type Config struct {
	Dataset  DatasetConfig  `json:"dataset"`
	Geometry GeometryConfig `json:"geometry"`
	Output   OutputConfig   `json:"output"`
}

// DatasetConfig selects what to load from the VOC devkit
type DatasetConfig struct {
	Root    string   `json:"root"`
	Split   string   `json:"split"`
	Classes []string `json:"classes"`
}

// GeometryConfig bounds the image geometry pipeline
type GeometryConfig struct {
	MaxHeight int `json:"max_height"`
	MaxWidth  int `json:"max_width"`
	MaxSide   int `json:"max_side"`
}

// OutputConfig holds configuration for output generation
type OutputConfig struct {
	Dir     string `json:"dir"`
	Format  string `json:"format"`
	Quality int    `json:"quality"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Root:    voc.DefaultRoot,
			Split:   "trainval",
			Classes: voc.Classes,
		},
		Geometry: GeometryConfig{
			MaxHeight: voc.MaxHeight,
			MaxWidth:  voc.MaxWidth,
			MaxSide:   500,
		},
		Output: OutputConfig{
			Dir:     "./out",
			Format:  "png",
			Quality: 90,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Dataset.Root == "" {
		return fmt.Errorf("dataset.root cannot be empty")
	}

	if !voc.ValidSplit(c.Dataset.Split) {
		return fmt.Errorf("dataset.split must be one of %v", voc.Splits)
	}

	if len(c.Dataset.Classes) == 0 {
		return fmt.Errorf("dataset.classes cannot be empty")
	}

	for _, class := range c.Dataset.Classes {
		if _, ok := voc.ClassID(class); !ok {
			return fmt.Errorf("dataset.classes contains unknown class %q", class)
		}
	}

	if c.Geometry.MaxHeight < 1 || c.Geometry.MaxWidth < 1 {
		return fmt.Errorf("geometry.max_height and geometry.max_width must be positive")
	}

	if c.Geometry.MaxSide < 1 {
		return fmt.Errorf("geometry.max_side must be positive")
	}

	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be between 1 and 100")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "vocprep", "config.json")
}
