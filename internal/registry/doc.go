// Package registry provides the central "glue" for the document formats.
//
// The Registry maps file extensions to config.Loader implementations and
// output format names to config.Writer implementations. Format packages
// (hcl, yamldoc) expose a Module that registers itself, so the application
// only decides which modules to install.
//
// The Registry is itself a config.Loader: it expands directories across
// every registered extension and dispatches each file to the loader for its
// extension, preserving the order in which files were found.
package registry
