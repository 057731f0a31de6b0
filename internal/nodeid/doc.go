// internal/nodeid/doc.go

/*
Package nodeid provides a structured, type-safe representation of the input
references that link nodes in a graph.

Three textual forms are recognised:

	name:index   data edge to output `index` of node `name`
	name         data edge to output 0 of node `name`
	^name        control edge to node `name` (ordering only, no value)

References are parsed once into a Ref so callers never inspect the raw
string again. Formatting back to the canonical string lives here as well.
*/
package nodeid
