package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultEnvFile is read when Load is called without explicit files.
const defaultEnvFile = ".env"

// loader keeps parsed configs keyed by type and the set of env files that
// have already been applied to the process environment.
type loader struct {
	mu      sync.Mutex
	configs map[reflect.Type]any
	files   map[string]struct{}
}

var global = newLoader()

func newLoader() *loader {
	return &loader{
		configs: make(map[reflect.Type]any),
		files:   make(map[string]struct{}),
	}
}

// Load populates v from the process environment using `env` struct tags.
//
// Each env file is applied at most once per process; a missing file is
// skipped. Variables already present in the environment are never
// overwritten by file values. When no files are given, ".env" in the working
// directory is tried.
//
// The first successful parse of a type is cached and later calls for the
// same type copy the cached value into v.
//
// Example:
//
//	type Config struct {
//		Rules string `env:"VALCHECK_RULES,required"`
//		List  string `env:"VALCHECK_LIST"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T, envFiles ...string) error {
	if v == nil {
		return ErrNilPointer
	}
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", ErrInvalidConfigType, typ)
	}

	global.mu.Lock()
	defer global.mu.Unlock()

	if cached, ok := global.configs[typ]; ok {
		*v = cached.(T)
		return nil
	}

	if len(envFiles) == 0 {
		envFiles = []string{defaultEnvFile}
	}
	if err := global.applyFiles(envFiles); err != nil {
		return err
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	global.configs[typ] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics on error.
func MustLoad[T any](v *T, envFiles ...string) {
	if err := Load(v, envFiles...); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Reset drops cached configs and forgets which env files were applied.
// Values already written to the environment stay there.
func Reset() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.configs = make(map[reflect.Type]any)
	global.files = make(map[string]struct{})
}

// applyFiles must be called with l.mu held.
func (l *loader) applyFiles(files []string) error {
	for _, name := range files {
		if _, done := l.files[name]; done {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				l.files[name] = struct{}{}
				continue
			}
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", name, err))
		}
		l.files[name] = struct{}{}
	}
	return nil
}
