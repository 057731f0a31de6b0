// Package yamldoc provides the YAML implementation of the config.Loader and
// config.Writer interfaces.
//
// A YAML document uses the same field names as the HCL schema:
//
//	feeds:
//	  - name: x_in
//	    id: {node_name: x, output_index: 0}
//	fetches:
//	  - id: {node_name: y}
//	nodes:
//	  - name: y
//	    op: Square
//	    inputs: ["x:0", "^init"]
//
// A file may hold several `---` separated documents; they are merged in order.
package yamldoc
