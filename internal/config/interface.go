package config

import (
	"context"

	"github.com/vk/graphprune/internal/graph"
)

// Document is everything a loader reads from one or more sources.
type Document struct {
	Config *Config
	Graph  *graph.Graph
}

// Loader is the interface for a format-specific document loader.
type Loader interface {
	// Load reads every document found under the given paths and merges them
	// in path order into a single Document.
	Load(ctx context.Context, paths ...string) (*Document, error)
}

// Writer is the interface for a format-specific graph encoder.
type Writer interface {
	// Write encodes the graph into the format handled by the implementation.
	Write(ctx context.Context, g *graph.Graph) ([]byte, error)
}

// NewDocument returns an empty document ready to be appended to.
func NewDocument() *Document {
	return &Document{Config: &Config{}, Graph: &graph.Graph{}}
}

// Append concatenates the feeds, fetches and nodes of other onto d.
func (d *Document) Append(other *Document) {
	if other == nil {
		return
	}
	if other.Config != nil {
		d.Config.Feeds = append(d.Config.Feeds, other.Config.Feeds...)
		d.Config.Fetches = append(d.Config.Fetches, other.Config.Fetches...)
	}
	if other.Graph != nil {
		d.Graph.Nodes = append(d.Graph.Nodes, other.Graph.Nodes...)
	}
}
