package yamldoc

import "github.com/vk/graphprune/internal/registry"

// Format is the output format name handled by the YAML writer.
const Format = "yaml"

// Extensions lists the file extensions handled by the YAML loader.
var Extensions = []string{".yaml", ".yml"}

// Module registers the YAML loader and writer.
type Module struct{}

// Register implements registry.Module.
func (Module) Register(r *registry.Registry) {
	l := NewLoader()
	for _, ext := range Extensions {
		r.RegisterLoader(ext, l)
	}
	r.RegisterWriter(Format, NewWriter())
}
