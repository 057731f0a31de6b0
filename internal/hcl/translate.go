package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/graphprune/internal/config"
	"github.com/vk/graphprune/internal/ctxlog"
	"github.com/vk/graphprune/internal/graph"
	"github.com/vk/graphprune/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateFile converts one decoded HCL file into the agnostic models.
func (l *Loader) translateFile(ctx context.Context, f *schema.File) (*config.Document, error) {
	doc := config.NewDocument()

	for i, t := range f.Feeds {
		id, err := translateTensorID(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("feed %d: %w", i, err)
		}
		doc.Config.Feeds = append(doc.Config.Feeds, config.Feed{ID: id, Name: t.Name})
	}
	for i, t := range f.Fetches {
		id, err := translateTensorID(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch %d: %w", i, err)
		}
		doc.Config.Fetches = append(doc.Config.Fetches, config.Fetch{ID: id, Name: t.Name})
	}
	for _, n := range f.Nodes {
		doc.Graph.Nodes = append(doc.Graph.Nodes, graph.Node{
			Name:   n.Name,
			Op:     n.Op,
			Device: n.Device,
			Inputs: n.Inputs,
		})
	}
	return doc, nil
}

// translateTensorID converts an `id` block. A missing block yields the zero
// id, leaving it to config.Validate to report the empty node name.
func translateTensorID(ctx context.Context, s *schema.TensorID) (config.TensorID, error) {
	if s == nil {
		return config.TensorID{}, nil
	}
	index, err := decodeOutputIndex(ctx, s.OutputIndex)
	if err != nil {
		return config.TensorID{}, err
	}
	return config.TensorID{NodeName: s.NodeName, OutputIndex: index}, nil
}

// decodeOutputIndex evaluates an output_index expression. Null or omitted
// means 0; strings holding a number are converted.
func decodeOutputIndex(ctx context.Context, expr hcl.Expression) (int, error) {
	logger := ctxlog.FromContext(ctx)
	if expr == nil {
		return 0, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("invalid output_index: %w", diags)
	}
	if val.IsNull() {
		return 0, nil
	}

	converted, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("cannot convert output_index of type %s to number: %w", val.Type().FriendlyName(), err)
	}
	if !val.Type().Equals(cty.Number) {
		logger.Debug("Implicitly converted output_index.", "from", val.Type().FriendlyName())
	}

	var index int
	if err := gocty.FromCtyValue(converted, &index); err != nil {
		return 0, fmt.Errorf("invalid output_index: %w", err)
	}
	return index, nil
}
