package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPresets is returned when a presets file fails validation.
var ErrInvalidPresets = errors.New("invalid presets")

// Preset is a named grid layout in the grid package's text format.
type Preset struct {
	Name        string   `yaml:"name"`        // Unique preset name
	Description string   `yaml:"description"` // Short human readable summary
	Layout      []string `yaml:"layout"`      // One string per grid row
}

// PresetsConfig is the root of a presets file.
type PresetsConfig struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresets reads and validates preset layouts from a YAML file.
func LoadPresets(filePath string) (*PresetsConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}
	return ParsePresets(data)
}

// ParsePresets decodes and validates preset layouts from YAML bytes.
func ParsePresets(data []byte) (*PresetsConfig, error) {
	var config PresetsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse presets YAML: %w", err)
	}

	if err := validatePresets(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validatePresets checks names and layout shape. Cell runes and endpoint
// walkability are checked when a layout is applied to a grid.
func validatePresets(config *PresetsConfig) error {
	seen := make(map[string]struct{}, len(config.Presets))

	for i, p := range config.Presets {
		if p.Name == "" {
			return fmt.Errorf("%w: preset %d has no name", ErrInvalidPresets, i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: duplicate preset name %q", ErrInvalidPresets, p.Name)
		}
		seen[p.Name] = struct{}{}

		if len(p.Layout) == 0 {
			return fmt.Errorf("%w: preset %q has an empty layout", ErrInvalidPresets, p.Name)
		}

		width := utf8.RuneCountInString(p.Layout[0])
		for row, line := range p.Layout {
			if w := utf8.RuneCountInString(line); w == 0 || w != width {
				return fmt.Errorf("%w: preset %q row %d has width %d, want %d", ErrInvalidPresets, p.Name, row, w, width)
			}
		}
	}

	return nil
}

// Find returns the preset with the given name.
func (c *PresetsConfig) Find(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
