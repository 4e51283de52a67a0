package ruleset

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// exprAST is a pipe-separated list of rule calls:
//
//	required("Code is required") | pattern(`^\d+$`) | length(min=2, max=8)
type exprAST struct {
	Calls []*callAST `parser:"@@ ( '|' @@ )*"`
}

type callAST struct {
	Pos  lexer.Position
	Name string    `parser:"@Name"`
	Args []*argAST `parser:"( '(' ( @@ ( ',' @@ )* )? ')' )?"`
}

type argAST struct {
	Key   *string  `parser:"( @Name '=' )?"`
	Value valueAST `parser:"@@"`
}

type valueAST struct {
	String *string    `parser:"  @(String | Raw)"`
	Float  *float64   `parser:"| @Float"`
	Int    *int64     `parser:"| @Int"`
	Ident  *string    `parser:"| @Name"`
	List   []valueAST `parser:"| '[' ( @@ ( ',' @@ )* )? ']'"`
}

var (
	exprLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Name", Pattern: `[a-zA-Z_][\w-]*`},
		{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
		{Name: "Raw", Pattern: "`[^`]*`"},
		{Name: "Float", Pattern: `[-+]?\d+\.\d+`},
		{Name: "Int", Pattern: `[-+]?\d+`},
		{Name: "Punct", Pattern: `[|(),=\[\]]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})
	exprParser = participle.MustBuild[exprAST](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
		participle.Map(trimRaw, "Raw"),
		participle.UseLookahead(2),
	)
)

// trimRaw strips backticks and keeps the content verbatim, so regular
// expressions need no escaping.
func trimRaw(t lexer.Token) (lexer.Token, error) {
	t.Value = t.Value[1 : len(t.Value)-1]
	return t, nil
}

// ParseExpr parses a rule expression into rules, in order.
//
// required and pattern map to the built-in kinds; pattern takes the regular
// expression as its first argument. Any other name becomes a named rule
// whose first positional string is its message and whose key=value
// arguments become params. An empty expression yields no rules.
func ParseExpr(expr string) ([]validator.Rule, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}

	ast, err := exprParser.ParseString("", expr)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	rules := make([]validator.Rule, 0, len(ast.Calls))
	for i, call := range ast.Calls {
		rule, err := call.rule()
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s) at %s: %w", i, call.Name, call.Pos, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (c *callAST) rule() (validator.Rule, error) {
	var positional []any
	params := map[string]any{}
	for _, arg := range c.Args {
		if arg.Key != nil {
			params[*arg.Key] = arg.Value.value()
			continue
		}
		positional = append(positional, arg.Value.value())
	}

	message, err := popMessage(params)
	if err != nil {
		return validator.Rule{}, err
	}

	switch validator.Kind(c.Name) {
	case validator.KindRequired:
		if err := noParams(params); err != nil {
			return validator.Rule{}, err
		}
		if len(positional) > 1 {
			return validator.Rule{}, fmt.Errorf("%w: required takes at most a message", validator.ErrInvalidRule)
		}
		if len(positional) == 1 {
			if message, err = asMessage(positional[0]); err != nil {
				return validator.Rule{}, err
			}
		}
		return validator.Required(message), nil

	case validator.KindPattern, "reg":
		if err := noParams(params); err != nil {
			return validator.Rule{}, err
		}
		if len(positional) == 0 || len(positional) > 2 {
			return validator.Rule{}, fmt.Errorf("%w: pattern takes a regular expression and an optional message", validator.ErrInvalidRule)
		}
		expr, ok := positional[0].(string)
		if !ok {
			return validator.Rule{}, fmt.Errorf("%w: pattern must be a string", validator.ErrInvalidRule)
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return validator.Rule{}, errors.Join(validator.ErrInvalidRule, err)
		}
		if len(positional) == 2 {
			if message, err = asMessage(positional[1]); err != nil {
				return validator.Rule{}, err
			}
		}
		return validator.Pattern(re, message), nil

	case validator.KindCustom, "validator":
		return validator.Rule{}, fmt.Errorf("%w: custom rules need a function and cannot be written as expressions", validator.ErrInvalidRule)

	default:
		if len(positional) > 1 {
			return validator.Rule{}, fmt.Errorf("%w: named rules take at most one positional message", validator.ErrInvalidRule)
		}
		if len(positional) == 1 {
			if message, err = asMessage(positional[0]); err != nil {
				return validator.Rule{}, err
			}
		}
		if len(params) == 0 {
			params = nil
		}
		return validator.Named(validator.Kind(c.Name), message, params), nil
	}
}

func (v valueAST) value() any {
	switch {
	case v.String != nil:
		return *v.String
	case v.Float != nil:
		return *v.Float
	case v.Int != nil:
		return int(*v.Int)
	case v.Ident != nil:
		switch *v.Ident {
		case "true":
			return true
		case "false":
			return false
		}
		return *v.Ident
	default:
		list := make([]any, 0, len(v.List))
		for _, item := range v.List {
			list = append(list, item.value())
		}
		return list
	}
}

func popMessage(params map[string]any) (string, error) {
	raw, ok := params[validator.KeyMessage]
	if !ok {
		return "", nil
	}
	delete(params, validator.KeyMessage)
	return asMessage(raw)
}

func asMessage(raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: message must be a string, got %T", validator.ErrInvalidRule, raw)
	}
	return s, nil
}

func noParams(params map[string]any) error {
	for k := range params {
		return fmt.Errorf("%w: unexpected argument %q", validator.ErrInvalidRule, k)
	}
	return nil
}
