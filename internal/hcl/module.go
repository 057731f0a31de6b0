package hcl

import "github.com/vk/graphprune/internal/registry"

// Extension is the file extension handled by the HCL loader.
const Extension = ".hcl"

// Format is the output format name handled by the HCL writer.
const Format = "hcl"

// Module registers the HCL loader and writer.
type Module struct{}

// Register implements registry.Module.
func (Module) Register(r *registry.Registry) {
	r.RegisterLoader(Extension, NewLoader())
	r.RegisterWriter(Format, NewWriter())
}
