package yamldoc

import (
	"bytes"
	"context"
	"fmt"

	"github.com/vk/graphprune/internal/ctxlog"
	"github.com/vk/graphprune/internal/graph"
	"gopkg.in/yaml.v3"
)

// Writer encodes graphs as a `nodes:` list.
type Writer struct{}

// NewWriter creates a new YAML graph writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write renders g in node order.
func (w *Writer) Write(ctx context.Context, g *graph.Graph) ([]byte, error) {
	fd := fileDoc{Nodes: make([]nodeDoc, 0, g.Len())}
	for i := range g.Len() {
		n := g.Nodes[i]
		inputs := n.Inputs
		if inputs == nil {
			inputs = []string{}
		}
		fd.Nodes = append(fd.Nodes, nodeDoc{Name: n.Name, Op: n.Op, Device: n.Device, Inputs: inputs})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fd); err != nil {
		return nil, fmt.Errorf("failed to encode graph as YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode graph as YAML: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("YAML graph encoded.", "nodes", g.Len())
	return buf.Bytes(), nil
}
