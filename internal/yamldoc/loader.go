package yamldoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/graphprune/internal/config"
	"github.com/vk/graphprune/internal/ctxlog"
	"github.com/vk/graphprune/internal/fsutil"
	"github.com/vk/graphprune/internal/graph"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes every YAML file under paths. Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}

	doc := config.NewDocument()
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}
		if err := decodeInto(doc, raw); err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}
	}

	logger.Debug("YAML loading complete.",
		"files", len(files),
		"feeds", len(doc.Config.Feeds),
		"fetches", len(doc.Config.Fetches),
		"nodes", doc.Graph.Len(),
	)
	return doc, nil
}

func decodeInto(doc *config.Document, raw []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	for {
		var fd fileDoc
		err := dec.Decode(&fd)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		doc.Append(translate(&fd))
	}
}

func translate(fd *fileDoc) *config.Document {
	doc := config.NewDocument()
	for _, t := range fd.Feeds {
		doc.Config.Feeds = append(doc.Config.Feeds, config.Feed{ID: t.tensorID(), Name: t.Name})
	}
	for _, t := range fd.Fetches {
		doc.Config.Fetches = append(doc.Config.Fetches, config.Fetch{ID: t.tensorID(), Name: t.Name})
	}
	for _, n := range fd.Nodes {
		doc.Graph.Nodes = append(doc.Graph.Nodes, graph.Node{
			Name:   n.Name,
			Op:     n.Op,
			Device: n.Device,
			Inputs: n.Inputs,
		})
	}
	return doc
}

func (t tensorDoc) tensorID() config.TensorID {
	if t.ID == nil {
		return config.TensorID{}
	}
	return config.TensorID{NodeName: t.ID.NodeName, OutputIndex: int(t.ID.OutputIndex)}
}
