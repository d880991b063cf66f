package graphio

import (
	"fmt"
	"os"

	"github.com/trophiclab/foodweb/core"
)

// LoadFile reads a GraphML food web from path.
func LoadFile(path string) (*core.Graph, map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("graphio: open: %w", err)
	}
	defer f.Close()

	g, names, err := ReadGraphML(f)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return g, names, nil
}

// SaveFile writes g to path as GraphML, creating or truncating the file.
func SaveFile(path string, g *core.Graph, names map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create: %w", err)
	}
	if err := WriteGraphML(f, g, names); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
