package ruleset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a rule set file, choosing the decoder by extension:
// .yaml, .yml or .json.
func Load(path string) (*Set, error) {
	var parse func([]byte) (*Set, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".json":
		parse = ParseJSON
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule set: %w", err)
	}
	return parse(data)
}
