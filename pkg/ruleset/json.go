package ruleset

import (
	"errors"
	"fmt"

	"github.com/valyala/fastjson"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

var parserPool fastjson.ParserPool

// ParseJSON decodes a rule set document with the same layout as ParseYAML:
//
//	{"code": [{"required": true}, {"pattern": "^\\d+$"}], "email": "email"}
func ParseJSON(data []byte) (*Set, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	root, err := p.ParseBytes(data)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	obj, err := root.Object()
	if err != nil {
		return nil, fmt.Errorf("%w: top level must be an object of list names", ErrParse)
	}

	set := NewSet()
	var visitErr error
	obj.Visit(func(key []byte, v *fastjson.Value) {
		if visitErr != nil {
			return
		}
		name := string(key)
		rules, err := jsonRules(v)
		if err != nil {
			visitErr = fmt.Errorf("list %q: %w", name, err)
			return
		}
		visitErr = set.Add(name, rules)
	})
	if visitErr != nil {
		return nil, visitErr
	}
	return set, nil
}

func jsonRules(v *fastjson.Value) ([]validator.Rule, error) {
	switch v.Type() {
	case fastjson.TypeString:
		return ParseExpr(string(v.GetStringBytes()))
	case fastjson.TypeArray:
		items, _ := v.Array()
		recs := make([]map[string]any, 0, len(items))
		for i, item := range items {
			if item.Type() != fastjson.TypeObject {
				return nil, fmt.Errorf("rule %d: %w: expected an object", i, validator.ErrInvalidRule)
			}
			rec, _ := jsonValue(item).(map[string]any)
			recs = append(recs, rec)
		}
		return validator.FromMaps(recs)
	default:
		return nil, fmt.Errorf("%w: expected a list of rules or an expression, got %s", ErrParse, v.Type())
	}
}

// jsonValue copies a fastjson value into plain Go values. Integral numbers
// become int64, other numbers float64.
func jsonValue(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		if n, err := v.Int64(); err == nil {
			return n
		}
		return v.GetFloat64()
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	case fastjson.TypeArray:
		items, _ := v.Array()
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, jsonValue(item))
		}
		return out
	case fastjson.TypeObject:
		obj, _ := v.Object()
		out := make(map[string]any, obj.Len())
		obj.Visit(func(key []byte, item *fastjson.Value) {
			out[string(key)] = jsonValue(item)
		})
		return out
	default:
		return nil
	}
}
