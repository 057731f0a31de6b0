package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/graphprune/internal/config"
	"github.com/vk/graphprune/internal/ctxlog"
	"github.com/vk/graphprune/internal/graph"
	"github.com/vk/graphprune/internal/prune"
)

// Validate loads the configured documents and checks their feed/fetch
// specification.
func (a *App) Validate(ctx context.Context) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "command", "validate")

	doc, err := a.loadAndValidate(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.outW, "configuration is valid: %d feeds, %d fetches, %d nodes\n",
		len(doc.Config.Feeds), len(doc.Config.Fetches), doc.Graph.Len())
	return nil
}

// Prune loads and validates the configured documents, prunes the graph to
// what the fetches need and writes the result.
func (a *App) Prune(ctx context.Context) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "command", "prune")
	logger := ctxlog.FromContext(ctx)

	doc, err := a.loadAndValidate(ctx)
	if err != nil {
		return err
	}

	var pruned *graph.Graph
	if a.config.StopAtFeeds {
		pruned, err = prune.PruneConfig(doc.Config, doc.Graph)
	} else {
		pruned, err = prune.Prune(doc.Config.Fetches, doc.Graph)
	}
	if err != nil {
		return fmt.Errorf("failed to prune graph: %w", err)
	}
	logger.Info("Graph pruned.",
		"kept", pruned.Len(),
		"dropped", doc.Graph.Len()-pruned.Len(),
		"stop_at_feeds", a.config.StopAtFeeds,
	)

	return a.write(ctx, pruned)
}

func (a *App) loadAndValidate(ctx context.Context) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)

	doc, err := a.registry.Load(ctx, a.config.Paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	logger.Debug("Documents loaded.", "feeds", len(doc.Config.Feeds), "fetches", len(doc.Config.Fetches), "nodes", doc.Graph.Len())

	if err := config.Validate(doc.Config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Debug("Configuration validation passed.")
	return doc, nil
}

func (a *App) write(ctx context.Context, g *graph.Graph) error {
	w, err := a.registry.Writer(a.config.OutputFormat)
	if err != nil {
		return err
	}
	out, err := w.Write(ctx, g)
	if err != nil {
		return err
	}

	if a.config.OutputPath == "" {
		_, err = a.outW.Write(out)
		return err
	}
	if err := os.WriteFile(a.config.OutputPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	ctxlog.FromContext(ctx).Info("Pruned graph written.", "path", a.config.OutputPath, "format", a.config.OutputFormat)
	return nil
}
