// Package config defines the feed/fetch specification that drives graph
// pruning, the validation rules it must satisfy, and the format-agnostic
// Loader interface used to read specifications and graphs from storage.
//
// Concrete loaders, such as for HCL and YAML, are provided in separate
// packages.
package config
