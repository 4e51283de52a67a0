package ruleset

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// ParseYAML decodes a rule set document. The top level maps list names to
// either a sequence of rule records or an expression string:
//
//	code:
//	  - required: true
//	    message: Code is required
//	  - pattern: '^\d+$'
//	email: required | email | length(max=64)
func ParseYAML(data []byte) (*Set, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	set := NewSet()
	if len(doc.Content) == 0 {
		return set, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping of list names", ErrParse)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		rules, err := yamlRules(root.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("list %q: %w", name, err)
		}
		if err := set.Add(name, rules); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func yamlRules(node *yaml.Node) ([]validator.Rule, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return ParseExpr(node.Value)
	case yaml.SequenceNode:
		recs := make([]map[string]any, 0, len(node.Content))
		for i, item := range node.Content {
			if item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("rule %d: %w: expected a mapping", i, validator.ErrInvalidRule)
			}
			var rec map[string]any
			if err := item.Decode(&rec); err != nil {
				return nil, fmt.Errorf("rule %d: %w", i, errors.Join(ErrParse, err))
			}
			recs = append(recs, rec)
		}
		return validator.FromMaps(recs)
	default:
		return nil, fmt.Errorf("%w: expected a list of rules or an expression (line %d)", ErrParse, node.Line)
	}
}
