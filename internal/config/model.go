package config

import "strconv"

// TensorID identifies one output of a graph node.
type TensorID struct {
	NodeName    string
	OutputIndex int
}

// String renders the id as `node_name:output_index`.
func (id TensorID) String() string {
	return id.NodeName + ":" + strconv.Itoa(id.OutputIndex)
}

// Feed is an input injection point. Name is an optional alias; empty means
// the feed is identified by ID alone.
type Feed struct {
	ID   TensorID
	Name string
}

// Fetch is an output retrieval point.
type Fetch struct {
	ID   TensorID
	Name string
}

// Config is the full feed/fetch specification.
type Config struct {
	Feeds   []Feed
	Fetches []Fetch
}

// FedTensors returns the set of tensors overridden by feeds.
func (c *Config) FedTensors() map[TensorID]struct{} {
	fed := make(map[TensorID]struct{}, len(c.Feeds))
	for _, f := range c.Feeds {
		fed[f.ID] = struct{}{}
	}
	return fed
}

// FetchNodeNames returns the node names targeted by fetches, in order.
func (c *Config) FetchNodeNames() []string {
	names := make([]string, 0, len(c.Fetches))
	for _, f := range c.Fetches {
		names = append(names, f.ID.NodeName)
	}
	return names
}
