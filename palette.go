package chromat

import (
	"fmt"

	"github.com/mattisb/chromat/internal/color"
	"github.com/mattisb/chromat/internal/parser"
)

// Palette is a fully-resolved palette definition, ready for rendering.
type Palette struct {
	Meta   Meta
	Colors *color.Node
}

// Meta holds palette metadata.
type Meta struct {
	Name   string
	Author string
	URL    string
}

// Load parses an HCL palette file and returns the resolved palette.
func Load(path string) (*Palette, error) {
	result, err := parser.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("loading palette: %w", err)
	}

	return &Palette{
		Meta: Meta{
			Name:   result.Meta.Name,
			Author: result.Meta.Author,
			URL:    result.Meta.URL,
		},
		Colors: result.Palette,
	}, nil
}
