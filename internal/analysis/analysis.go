package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Nutrient is one authored line of a product's guaranteed analysis. A nil
// Value means the figure is not disclosed.
type Nutrient struct {
	Label string
	Value *string
}

// Analysis keeps nutrients in the order they were authored.
type Analysis []Nutrient

// Disclosed reports whether the nutrient carries a value.
func (n Nutrient) Disclosed() bool {
	return n.Value != nil
}

// Of builds an Analysis from label/value pairs; a value of "" is stored as
// undisclosed. Handy for tests and the CLI.
func Of(pairs ...string) Analysis {
	if len(pairs)%2 != 0 {
		panic("analysis.Of: odd number of arguments")
	}
	out := make(Analysis, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		n := Nutrient{Label: pairs[i]}
		if pairs[i+1] != "" {
			v := pairs[i+1]
			n.Value = &v
		}
		out = append(out, n)
	}
	return out
}

func (a *Analysis) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("analysis: expected a mapping, got %s", kindName(node.Kind))
	}
	out := make(Analysis, 0, len(node.Content)/2)
	seen := make(map[string]struct{}, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("analysis: line %d: nutrient label must be a string", key.Line)
		}
		if _, dup := seen[key.Value]; dup {
			return fmt.Errorf("analysis: line %d: duplicate nutrient %q", key.Line, key.Value)
		}
		seen[key.Value] = struct{}{}

		n := Nutrient{Label: key.Value}
		switch {
		case val.Kind != yaml.ScalarNode:
			return fmt.Errorf("analysis: line %d: value for %q must be a scalar", val.Line, key.Value)
		case val.Tag == "!!null":
		default:
			v := val.Value
			n.Value = &v
		}
		out = append(out, n)
	}
	*a = out
	return nil
}

// MarshalJSON writes the analysis as an object in authored order.
func (a Analysis) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(n.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		if n.Value == nil {
			buf.WriteString("null")
			continue
		}
		v, err := json.Marshal(*n.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
