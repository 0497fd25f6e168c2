package almanac

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for RuleSpec.
// Accepts:
//   - Sequence in document order: [50, 98, 2]
//   - Mapping with named fields: {dest: 50, src: 98, len: 2}
func (r *RuleSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var values []uint64
		if err := node.Decode(&values); err != nil {
			return err
		}

		if len(values) != 3 {
			return fmt.Errorf("line %d: rule needs 3 values (dest, src, len), got %d", node.Line, len(values))
		}

		*r = RuleSpec{Dest: values[0], Src: values[1], Length: values[2]}

		return nil

	case yaml.MappingNode:
		// ruleFields drops the custom unmarshaler to avoid recursion.
		type ruleFields RuleSpec

		var fields ruleFields
		if err := node.Decode(&fields); err != nil {
			return err
		}

		*r = RuleSpec(fields)

		return nil

	default:
		return fmt.Errorf("line %d: expected rule sequence or mapping", node.Line)
	}
}

// MarshalYAML emits a rule as a flow sequence: [dest, src, len].
func (r RuleSpec) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}

	for _, v := range []uint64{r.Dest, r.Src, r.Length} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.FormatUint(v, 10),
		})
	}

	return node, nil
}

func parseYAML(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse almanac YAML: %w", err)
	}

	return &f, nil
}

func marshalYAML(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
