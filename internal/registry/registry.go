package registry

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/vk/graphprune/internal/config"
	"github.com/vk/graphprune/internal/ctxlog"
	"github.com/vk/graphprune/internal/fsutil"
)

// Module is the interface that every format package implements to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the loaders and writers available to a single application instance.
type Registry struct {
	LoaderRegistry map[string]config.Loader
	WriterRegistry map[string]config.Writer
}

// New creates a Registry and installs the given modules.
func New(modules ...Module) *Registry {
	r := &Registry{
		LoaderRegistry: make(map[string]config.Loader),
		WriterRegistry: make(map[string]config.Writer),
	}
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// RegisterLoader binds a loader to a file extension such as ".hcl".
func (r *Registry) RegisterLoader(ext string, l config.Loader) {
	r.LoaderRegistry[ext] = l
}

// RegisterWriter binds a writer to an output format name such as "hcl".
func (r *Registry) RegisterWriter(format string, w config.Writer) {
	r.WriterRegistry[format] = w
}

// Extensions returns the registered file extensions in sorted order.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.LoaderRegistry))
	for ext := range r.LoaderRegistry {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// Formats returns the registered output format names in sorted order.
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.WriterRegistry))
	for f := range r.WriterRegistry {
		formats = append(formats, f)
	}
	slices.Sort(formats)
	return formats
}

// Writer returns the writer registered for format.
func (r *Registry) Writer(format string) (config.Writer, error) {
	w, ok := r.WriterRegistry[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (available: %v)", format, r.Formats())
	}
	return w, nil
}

// Load finds every file with a registered extension under paths and merges
// the documents they contain in discovery order.
func (r *Registry) Load(ctx context.Context, paths ...string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFiles(paths, r.Extensions()...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no documents found in %v (looked for %v)", paths, r.Extensions())
	}
	logger.Debug("Discovered documents.", "count", len(files))

	doc := config.NewDocument()
	for _, file := range files {
		loader := r.LoaderRegistry[filepath.Ext(file)]
		part, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		doc.Append(part)
	}

	logger.Debug("Documents merged.",
		"feeds", len(doc.Config.Feeds),
		"fetches", len(doc.Config.Fetches),
		"nodes", doc.Graph.Len(),
	)
	return doc, nil
}

// ValidateRegistry checks that the registry can both read and write documents.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	if len(r.LoaderRegistry) == 0 {
		return fmt.Errorf("registry validation failed: no loaders registered")
	}
	if len(r.WriterRegistry) == 0 {
		return fmt.Errorf("registry validation failed: no writers registered")
	}
	ctxlog.FromContext(ctx).Debug("Registry validation passed.",
		"extensions", r.Extensions(),
		"formats", r.Formats(),
	)
	return nil
}
