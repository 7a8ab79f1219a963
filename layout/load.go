package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyData is returned when there is nothing to parse
var ErrEmptyData = errors.New("layout: empty data")

//go:embed data/titiwangsa.yaml
var defaultData []byte

// Load parses YAML layout data and sanitizes it. Only malformed YAML fails;
// bad values inside well-formed YAML are substituted by Sanitize
func Load(data []byte) (Layout, WorldConfig, error) {
	if len(data) == 0 {
		return Layout{}, WorldConfig{}, ErrEmptyData
	}

	var raw RawLayout
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Layout{}, WorldConfig{}, fmt.Errorf("layout parse: %w", err)
	}

	l, cfg := Sanitize(raw)
	return l, cfg, nil
}

// LoadFile reads and loads a YAML layout from path
func LoadFile(path string) (Layout, WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, WorldConfig{}, fmt.Errorf("layout read %s: %w", path, err)
	}
	return Load(data)
}

// Default returns the built-in clinic floor plan
func Default() (Layout, WorldConfig) {
	l, cfg, err := Load(defaultData)
	if err != nil {
		// Embedded data is part of the binary; failing here is a build defect
		panic(fmt.Sprintf("embedded layout: %v", err))
	}
	return l, cfg
}

// Marshal dumps a sanitized layout as YAML that loads back to the same layout
func Marshal(l *Layout) ([]byte, error) {
	return yaml.Marshal(l.Raw())
}
