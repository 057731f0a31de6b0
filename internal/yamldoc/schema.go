package yamldoc

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	"gopkg.in/yaml.v3"
)

type tensorIDDoc struct {
	NodeName    string      `yaml:"node_name"`
	OutputIndex outputIndex `yaml:"output_index,omitempty"`
}

// outputIndex rejects values yaml.v3 would otherwise truncate into an int.
// It follows the HCL loader: whole numbers, possibly written as floats or
// numeric strings, are accepted; null means 0.
type outputIndex int

func (o *outputIndex) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: output_index must be a number", value.Line)
	}

	switch value.ShortTag() {
	case "!!null":
		*o = 0
		return nil
	case "!!int":
		var i int
		if err := value.Decode(&i); err != nil {
			return fmt.Errorf("line %d: invalid output_index %q: %w", value.Line, value.Value, err)
		}
		*o = outputIndex(i)
		return nil
	case "!!float", "!!str":
		num, err := cty.ParseNumberVal(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: cannot convert output_index %q to number: %w", value.Line, value.Value, err)
		}
		var i int
		if err := gocty.FromCtyValue(num, &i); err != nil {
			return fmt.Errorf("line %d: invalid output_index %q: %w", value.Line, value.Value, err)
		}
		*o = outputIndex(i)
		return nil
	default:
		return fmt.Errorf("line %d: output_index must be a number, got %s", value.Line, value.ShortTag())
	}
}

type tensorDoc struct {
	Name string       `yaml:"name,omitempty"`
	ID   *tensorIDDoc `yaml:"id,omitempty"`
}

type nodeDoc struct {
	Name   string   `yaml:"name"`
	Op     string   `yaml:"op,omitempty"`
	Device string   `yaml:"device,omitempty"`
	Inputs []string `yaml:"inputs,flow"`
}

type fileDoc struct {
	Feeds   []tensorDoc `yaml:"feeds,omitempty"`
	Fetches []tensorDoc `yaml:"fetches,omitempty"`
	Nodes   []nodeDoc   `yaml:"nodes,omitempty"`
}
