// Package hcl provides the HCL implementation of the config.Loader and
// config.Writer interfaces. It is responsible for file parsing, translation
// of the HCL schema into the format-agnostic config and graph models, and
// encoding pruned graphs back into HCL.
package hcl
