package ingestion

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLToJSON converts a YAML document to JSON. Booleans and nulls keep their
// type; every other scalar becomes a string, because all non-boolean document
// fields are text and YAML would otherwise turn "2021-03-01" into a timestamp.
func YAMLToJSON(content []byte) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		return []byte("null"), nil
	}

	c := &yamlConverter{expanding: make(map[*yaml.Node]bool)}
	value, err := c.value(&root)
	if err != nil {
		return nil, err
	}
	return json.Marshal(value)
}

// maxYAMLNodes bounds alias expansion. A resume is a few hundred nodes.
const maxYAMLNodes = 100000

// ErrYAMLTooLarge is returned when alias expansion exceeds maxYAMLNodes.
var ErrYAMLTooLarge = errors.New("document expands to too many nodes")

// yamlConverter walks a node tree. Unmarshaling into yaml.Node does not apply
// the decoder's alias guards, so cycles and expansion size are checked here.
type yamlConverter struct {
	expanding map[*yaml.Node]bool
	visited   int
}

func (c *yamlConverter) value(node *yaml.Node) (any, error) {
	c.visited++
	if c.visited > maxYAMLNodes {
		return nil, ErrYAMLTooLarge
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return c.value(node.Content[0])
	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, fmt.Errorf("line %d: unknown alias %q", node.Line, node.Value)
		}
		if c.expanding[node.Alias] {
			return nil, fmt.Errorf("line %d: alias %q refers to itself", node.Line, node.Value)
		}
		c.expanding[node.Alias] = true
		defer delete(c.expanding, node.Alias)
		return c.value(node.Alias)
	case yaml.MappingNode:
		out := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			value, err := c.value(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[key.Value] = value
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := c.value(item)
			if err != nil {
				return nil, err
			}
			out = append(out, value)
		}
		return out, nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return nil, err
			}
			return b, nil
		default:
			return node.Value, nil
		}
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", node.Line)
	}
}
