package logger

import (
	"log/slog"
	"strconv"
)

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Kind records a rule kind under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// RuleIndex records the position of a rule in its list under the key "rule_index".
func RuleIndex(i int) slog.Attr {
	return slog.Int("rule_index", i)
}

// List records a rule list name under the key "list".
func List(name string) slog.Attr {
	return slog.String("list", name)
}

// Value records the validated value under the key "value".
func Value(v any) slog.Attr {
	return slog.Any("value", v)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
