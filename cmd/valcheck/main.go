// Command valcheck validates values against a named rule list from a YAML or
// JSON rule-set file.
//
//	VALCHECK_RULES=rules.yaml VALCHECK_LIST=email valcheck a@b.co nope
//
// With no arguments values are read from stdin, one per line. Failures are
// printed as "value: message". The exit status is 1 when any value fails and
// 2 when the configuration or rule set is invalid.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/easyvalidator/pkg/config"
	"github.com/dmitrymomot/easyvalidator/pkg/logger"
	"github.com/dmitrymomot/easyvalidator/pkg/ruleset"
	"github.com/dmitrymomot/easyvalidator/pkg/strategies"
	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

var errListRequired = errors.New("VALCHECK_LIST is required when the rule set defines several lists")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "valcheck: %v\n", err)
		return exitConfig
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "valcheck: %v\n", err)
		return exitConfig
	}

	v, list, err := buildValidator(cfg, log)
	if err != nil {
		log.Error("invalid configuration", logger.Error(err))
		fmt.Fprintf(stderr, "valcheck: %v\n", err)
		return exitConfig
	}

	values := args
	if len(values) == 0 {
		values, err = readLines(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "valcheck: reading stdin: %v\n", err)
			return exitConfig
		}
	}

	failed := 0
	for _, value := range values {
		if msg := v.Check(value); msg != "" {
			failed++
			log.Debug("value rejected", logger.List(list), logger.Value(value), logger.Error(errors.New(msg)))
			fmt.Fprintf(stdout, "%s: %s\n", value, msg)
		}
	}

	log.Info("validation finished",
		logger.List(list),
		logger.Count(len(values)),
		slog.Int("failed", failed),
	)

	if failed > 0 {
		return exitFailed
	}
	return exitOK
}

func newLogger(cfg Config, out io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(out),
		logger.WithAttr(logger.Component("valcheck")),
	), nil
}

func buildValidator(cfg Config, log *slog.Logger) (*validator.Validator, string, error) {
	reg := validator.NewRegistry(validator.WithRegistryLogger(log))
	if err := strategies.Register(reg, strategies.WithPhoneRegion(cfg.PhoneRegion)); err != nil {
		return nil, "", err
	}

	set, err := ruleset.Load(cfg.Rules)
	if err != nil {
		return nil, "", err
	}

	list := cfg.List
	if list == "" {
		names := set.Names()
		if len(names) != 1 {
			return nil, "", errListRequired
		}
		list = names[0]
	}

	v, err := set.Validator(list, validator.WithRegistry(reg), validator.WithLogger(log))
	if err != nil {
		return nil, "", err
	}
	log.Debug("rule list loaded", logger.List(list), logger.Count(v.Len()))
	return v, list, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
