package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/graphprune/internal/config"
	"github.com/vk/graphprune/internal/ctxlog"
	"github.com/vk/graphprune/internal/fsutil"
	"github.com/vk/graphprune/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and merges their feeds, fetches
// and nodes in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := fsutil.FindFiles(paths, Extension)
	if err != nil {
		return nil, err
	}

	parser := hclparse.NewParser()
	doc := config.NewDocument()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.File
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		part, err := l.translateFile(ctx, &root)
		if err != nil {
			return nil, fmt.Errorf("in HCL file %s: %w", file, err)
		}
		doc.Append(part)
	}

	logger.Debug("HCL loading complete.",
		"files", len(hclFiles),
		"feeds", len(doc.Config.Feeds),
		"fetches", len(doc.Config.Fetches),
		"nodes", doc.Graph.Len(),
	)
	return doc, nil
}
