// Package logger builds *slog.Logger instances from functional options and
// provides attribute constructors with consistent key names.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and applies static attributes. Discard returns a logger
// that drops everything; libraries use it as their default so logging stays
// opt-in.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("valcheck"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("rule rejected", logger.RuleIndex(2), logger.Error(err))
//
// # Configuration
//
//   - WithDevelopment / WithProduction – defaults per environment.
//   - WithFormat – text or json; ParseFormat converts config strings.
//   - WithLevel – minimum level; ParseLevel converts config strings.
//   - WithAttr – attach static attributes.
//
// Error and Errors return an empty Attr for nil errors, so they can be passed
// unconditionally.
package logger
