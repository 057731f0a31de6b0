package hcl

import (
	"context"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/graphprune/internal/ctxlog"
	"github.com/vk/graphprune/internal/graph"
	"github.com/zclconf/go-cty/cty"
)

// Writer encodes graphs as `node` blocks.
type Writer struct{}

// NewWriter creates a new HCL graph writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write renders g in node order. Empty op and device attributes are omitted;
// inputs are always written so the block shape is uniform.
func (w *Writer) Write(ctx context.Context, g *graph.Graph) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for i := range g.Len() {
		n := g.Nodes[i]
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("node", []string{n.Name})
		nb := block.Body()
		if n.Op != "" {
			nb.SetAttributeValue("op", cty.StringVal(n.Op))
		}
		if n.Device != "" {
			nb.SetAttributeValue("device", cty.StringVal(n.Device))
		}
		nb.SetAttributeValue("inputs", inputsValue(n.Inputs))
	}

	ctxlog.FromContext(ctx).Debug("HCL graph encoded.", "nodes", g.Len())
	return f.Bytes(), nil
}

func inputsValue(inputs []string) cty.Value {
	if len(inputs) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(inputs))
	for i, in := range inputs {
		vals[i] = cty.StringVal(in)
	}
	return cty.ListVal(vals)
}
