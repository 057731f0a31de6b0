// Package schema holds the HCL decoding targets for graph documents.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// TensorID represents an `id` block inside a `feed` or `fetch`.
//
// OutputIndex is kept as an expression so the loader can apply its own
// conversion rules and default an omitted index to 0.
type TensorID struct {
	NodeName    string         `hcl:"node_name,optional"`
	OutputIndex hcl.Expression `hcl:"output_index,optional"`
}

// Tensor represents a `feed` or `fetch` block.
type Tensor struct {
	Name string    `hcl:"name,optional"`
	ID   *TensorID `hcl:"id,block"`
}

// Node represents a `node "<name>"` block.
type Node struct {
	Name   string   `hcl:"name,label"`
	Op     string   `hcl:"op,optional"`
	Device string   `hcl:"device,optional"`
	Inputs []string `hcl:"inputs,optional"`
}

// File represents the top-level structure of a graph document. Every block
// kind is optional so a specification and its graph may live in separate
// files.
type File struct {
	Feeds   []*Tensor `hcl:"feed,block"`
	Fetches []*Tensor `hcl:"fetch,block"`
	Nodes   []*Node   `hcl:"node,block"`
}
