package strongcheck

import (
	"errors"
	"fmt"
	"strings"
)

// Problem codes reported in a ConfigError.
const (
	ProblemRequired       = "required"
	ProblemInvalidPattern = "invalid_pattern"
	ProblemEmpty          = "empty"
)

// ErrUnsupportedFormat is returned for config files whose format cannot be
// inferred from the extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// ConfigError aggregates the problems found in a config file.
type ConfigError struct {
	Path     string // config file
	Problems []Problem
}

// Error formats the problems as a multi-line message.
func (e *ConfigError) Error() string {
	if len(e.Problems) == 0 {
		return fmt.Sprintf("strongcheck config %s: no problems", e.Path)
	}

	var b strings.Builder
	if len(e.Problems) == 1 {
		fmt.Fprintf(&b, "strongcheck config %s: 1 problem\n", e.Path)
	} else {
		fmt.Fprintf(&b, "strongcheck config %s: %d problems\n", e.Path, len(e.Problems))
	}

	for _, p := range e.Problems {
		fmt.Fprintf(&b, "  - %s: %s (%s)\n", p.Path, p.Code, p.Message)
	}

	return strings.TrimRight(b.String(), "\n")
}

// Problem is a single invalid config entry.
type Problem struct {
	Path    string // e.g. "allow[2].from"
	Code    string // e.g. "required"
	Message string
}
