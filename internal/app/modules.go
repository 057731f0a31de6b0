package app

import (
	"github.com/vk/graphprune/internal/hcl"
	"github.com/vk/graphprune/internal/registry"
	"github.com/vk/graphprune/internal/yamldoc"
)

// coreModules is the definitive list of document formats compiled into the
// graphprune binary.
var coreModules = []registry.Module{
	hcl.Module{},
	yamldoc.Module{},
}
